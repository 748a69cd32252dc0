package models

// PressureEntry is the plaintext view of one pressure reading in a GET
// response.
type PressureEntry struct {
	Acquisition string  `json:"acquisition"`
	Systolic    float64 `json:"systolic"`
	Diastolic   float64 `json:"diastolic"`
	EnteredAt   string  `json:"entry_timestamp"`
}

// TemperatureEntry is the plaintext view of one temperature reading in a
// GET response.
type TemperatureEntry struct {
	Acquisition string  `json:"acquisition"`
	Value       float64 `json:"value"`
	EnteredAt   string  `json:"entry_timestamp"`
}

// PatientRecord is the decrypted view of a patient and their readings.
// It exists only while a single request is being processed and is never
// persisted or cached.
type PatientRecord struct {
	LastName     string             `json:"last_name"`
	FirstName    string             `json:"first_name"`
	DateOfBirth  string             `json:"date_of_birth"`
	RegisteredAt string             `json:"registration_timestamp"`
	Pressure     []PressureEntry    `json:"Pressure"`
	Temperature  []TemperatureEntry `json:"Temperature"`
}

// RecordEnvelope wraps a PatientRecord in the top-level JSON object the
// protocol's GET response uses.
type RecordEnvelope struct {
	Patient PatientRecord `json:"Patient"`
}
