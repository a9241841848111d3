package patient

import "encoding/json"

// Vitals holds the subset of a clinical encounter that protect/recover
// demos exercise; it is deliberately flat rather than a full FHIR model.
type Vitals struct {
	BloodPressure string  `json:"bloodPressure,omitempty"`
	HeartRate     int     `json:"heartRate,omitempty"`
	Temperature   float64 `json:"temperature,omitempty"`
	WeightLbs     float64 `json:"weightLbs,omitempty"`
	HeightIn      string  `json:"heightIn,omitempty"`
}

// Insurance holds the coverage details attached to a record.
type Insurance struct {
	Provider     string `json:"provider,omitempty"`
	PolicyNumber string `json:"policyNumber,omitempty"`
	GroupNumber  string `json:"groupNumber,omitempty"`
}

// Record is the plaintext payload protect encrypts before erasure-coding
// it; recover hands back exactly these bytes after decryption.
type Record struct {
	PatientID           string     `json:"patientId"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	DateOfBirth         string     `json:"dateOfBirth,omitempty"`
	SSN                 string     `json:"ssn,omitempty"`
	Address             string     `json:"address,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Email               string     `json:"email,omitempty"`
	EmergencyContact    string     `json:"emergencyContact,omitempty"`
	BloodType           string     `json:"bloodType,omitempty"`
	Allergies           []string   `json:"allergies,omitempty"`
	CurrentMedications  []string   `json:"currentMedications,omitempty"`
	MedicalHistory      []string   `json:"medicalHistory,omitempty"`
	LastVisit           string     `json:"lastVisit,omitempty"`
	Vitals              *Vitals    `json:"vitals,omitempty"`
	Diagnosis           string     `json:"diagnosis,omitempty"`
	Treatment           string     `json:"treatment,omitempty"`
	Physician           string     `json:"physician,omitempty"`
	Insurance           *Insurance `json:"insurance,omitempty"`
}

// Marshal serializes the record to the JSON bytes protect encrypts.
func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal parses the plaintext bytes recover produces back into a Record.
func Unmarshal(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
