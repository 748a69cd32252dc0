// Package models defines the registry's storage rows and the transient
// plaintext view assembled for a GET response. Encrypted fields hold AEAD
// blobs produced under the owning patient's key; readings carry no PII and
// are stored in clear.
package models

// Timestamp layouts used throughout the store. Values are stored as text in
// these fixed-width layouts, so lexicographic ordering in SQL equals
// chronological ordering.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

// Credential is one stored (username, password) pair, both fields encrypted
// under the key derived from this row's own password. Because of that,
// lookup is a linear scan-and-attempt-decrypt, never an indexed equality.
type Credential struct {
	ID       int64
	Username []byte
	Password []byte
}

// Patient holds a registered patient's identity fields, encrypted under the
// patient's key. Exactly one Patient exists per Credential (1:1).
type Patient struct {
	ID            int64
	LastName      []byte
	FirstName     []byte
	DateOfBirth   []byte
	RegisteredAt  string // TimeLayout, server-assigned
	CredentialsID int64
}

// PressureReading is one blood-pressure measurement (1:N per patient).
type PressureReading struct {
	ID          int64
	Systolic    float64
	Diastolic   float64
	Acquisition string // TimeLayout, caller-supplied
	EnteredAt   string // TimeLayout, server-assigned
	PatientID   int64
}

// TemperatureReading is one body-temperature measurement (1:N per patient).
type TemperatureReading struct {
	ID          int64
	Value       float64
	Acquisition string
	EnteredAt   string
	PatientID   int64
}
