package patient

// Metadata indexes a patient ID to the record ID its fragments and shares
// are filed under, plus the bookkeeping fields needed to show a protect
// history without touching the encrypted payload itself.
type Metadata struct {
	PatientID   string `json:"patientId"`
	RecordID    string `json:"recordId"`
	PatientName string `json:"patientName"`
	Timestamp   int64  `json:"timestamp"`
	CreatedBy   string `json:"createdBy"`

	// LastAccessed is the Unix time of the most recent successful
	// recover-patient lookup for this entry, or zero if it has never been
	// recovered since it was indexed.
	LastAccessed int64 `json:"lastAccessed,omitempty"`
}
