// Package patient models the structured payloads protect/recover operate
// on and the index that maps a patient ID to the record ID its fragments
// and shares are filed under.
package patient
