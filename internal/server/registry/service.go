// Package registry implements the medical-records domain service:
// registration, scan-and-decrypt authentication, validated reading inserts,
// and decrypted record retrieval. All business invariants live here; the
// transport layer only maps outcomes to responses.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/medregistry/internal/cryptox"
	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/logging"
	"github.com/dmitrijs2005/medregistry/internal/server/models"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/patients"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/repomanager"
)

// Service serializes all store access behind one mutex: the credential scan,
// the multi-statement registration transaction, and the ciphertext
// uniqueness check are not safe for concurrent use.
type Service struct {
	mu     sync.Mutex
	mgr    repomanager.Manager
	logger logging.Logger
	now    func() time.Time
}

func NewService(mgr repomanager.Manager, logger logging.Logger) *Service {
	return &Service{
		mgr:    mgr,
		logger: logger.With("module", "registry"),
		now:    time.Now,
	}
}

// Authenticate scans every credential row, attempting to decrypt both
// fields under the key derived from the submitted password. The first row
// where both decrypt and match wins. A matched credential without a linked
// patient is an internal-consistency fault, not a client error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (int64, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := s.mgr.Bind(s.mgr.DB())

	key := cryptox.DeriveKey(password)

	creds, err := repos.Credentials.All(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("credential scan failed: %w", err)
	}

	var credID int64
	found := false
	for _, c := range creds {
		u, ok := cryptox.Decrypt(key, c.Username)
		if !ok || string(u) != username {
			continue
		}
		p, ok := cryptox.Decrypt(key, c.Password)
		if !ok || string(p) != password {
			continue
		}
		credID = c.ID
		found = true
		break
	}
	if !found {
		return 0, nil, ErrInvalidCredentials
	}

	patient, err := repos.Patients.GetByCredentialsID(ctx, credID)
	if err != nil {
		if errors.Is(err, patients.ErrNotFound) {
			return 0, nil, fmt.Errorf("credential %d has no linked patient: %w", credID, err)
		}
		return 0, nil, fmt.Errorf("patient lookup failed: %w", err)
	}

	return patient.ID, key, nil
}

// RegisterPatient creates a credential and its linked patient in one
// transaction (the protocol's implicit registration). Any failure after the
// credential insert rolls back the whole sequence.
func (s *Service) RegisterPatient(ctx context.Context, username, password, lastName, firstName string, dateOfBirth time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var patientID int64
	err := dbx.WithTx(ctx, s.mgr.DB(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repos := s.mgr.Bind(tx)

		credID, key, err := s.register(ctx, repos, username, password)
		if err != nil {
			return err
		}

		patientID, err = s.insertPatient(ctx, repos, lastName, firstName, dateOfBirth, credID, key)
		return err
	})
	if err != nil {
		return 0, err
	}

	return patientID, nil
}

// register inserts a new credential. The duplicate check can only detect a
// re-registration under the same password: another row's ciphertext will
// not decrypt under this key at all.
func (s *Service) register(ctx context.Context, repos *repomanager.Repos, username, password string) (int64, []byte, error) {
	key := cryptox.DeriveKey(password)

	creds, err := repos.Credentials.All(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("credential scan failed: %w", err)
	}
	for _, c := range creds {
		if u, ok := cryptox.Decrypt(key, c.Username); ok && string(u) == username {
			return 0, nil, ErrAlreadyRegistered
		}
	}

	encUsername, err := cryptox.Encrypt(key, []byte(username))
	if err != nil {
		return 0, nil, fmt.Errorf("username encryption failed: %w", err)
	}
	encPassword, err := cryptox.Encrypt(key, []byte(password))
	if err != nil {
		return 0, nil, fmt.Errorf("password encryption failed: %w", err)
	}

	id, err := repos.Credentials.Insert(ctx, &models.Credential{
		Username: encUsername,
		Password: encPassword,
	})
	if err != nil {
		return 0, nil, err
	}

	return id, key, nil
}

func (s *Service) insertPatient(ctx context.Context, repos *repomanager.Repos, lastName, firstName string, dateOfBirth time.Time, credID int64, key []byte) (int64, error) {
	if dateOfBirth.Format(models.DateLayout) > s.now().Format(models.DateLayout) {
		return 0, fmt.Errorf("date of birth is from the future: %w", ErrBadEntryValue)
	}

	encLast, err := cryptox.Encrypt(key, []byte(lastName))
	if err != nil {
		return 0, fmt.Errorf("last name encryption failed: %w", err)
	}
	encFirst, err := cryptox.Encrypt(key, []byte(firstName))
	if err != nil {
		return 0, fmt.Errorf("first name encryption failed: %w", err)
	}
	encDob, err := cryptox.Encrypt(key, []byte(dateOfBirth.Format(models.DateLayout)))
	if err != nil {
		return 0, fmt.Errorf("date of birth encryption failed: %w", err)
	}

	return repos.Patients.Insert(ctx, &models.Patient{
		LastName:      encLast,
		FirstName:     encFirst,
		DateOfBirth:   encDob,
		RegisteredAt:  s.now().Format(models.TimeLayout),
		CredentialsID: credID,
	})
}

// AddPressure validates and stores one blood-pressure reading.
func (s *Service) AddPressure(ctx context.Context, patientID int64, key []byte, systolic, diastolic float64, acquisition time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := s.mgr.Bind(s.mgr.DB())
	return s.addPressure(ctx, repos, patientID, key, systolic, diastolic, acquisition)
}

func (s *Service) addPressure(ctx context.Context, repos *repomanager.Repos, patientID int64, key []byte, systolic, diastolic float64, acquisition time.Time) error {
	if err := s.validateAcquisition(ctx, repos, patientID, key, acquisition); err != nil {
		return err
	}

	_, err := repos.Readings.InsertPressure(ctx, &models.PressureReading{
		Systolic:    systolic,
		Diastolic:   diastolic,
		Acquisition: acquisition.Format(models.TimeLayout),
		EnteredAt:   s.now().Format(models.TimeLayout),
		PatientID:   patientID,
	})
	return err
}

// AddTemperature validates and stores one temperature reading.
func (s *Service) AddTemperature(ctx context.Context, patientID int64, key []byte, value float64, acquisition time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := s.mgr.Bind(s.mgr.DB())
	return s.addTemperature(ctx, repos, patientID, key, value, acquisition)
}

func (s *Service) addTemperature(ctx context.Context, repos *repomanager.Repos, patientID int64, key []byte, value float64, acquisition time.Time) error {
	if err := s.validateAcquisition(ctx, repos, patientID, key, acquisition); err != nil {
		return err
	}

	_, err := repos.Readings.InsertTemperature(ctx, &models.TemperatureReading{
		Value:       value,
		Acquisition: acquisition.Format(models.TimeLayout),
		EnteredAt:   s.now().Format(models.TimeLayout),
		PatientID:   patientID,
	})
	return err
}

// validateAcquisition rejects timestamps from the future and timestamps
// from before the patient's day of birth. The birth date comparison needs
// the stored ciphertext decrypted under the session key.
func (s *Service) validateAcquisition(ctx context.Context, repos *repomanager.Repos, patientID int64, key []byte, acquisition time.Time) error {
	if acquisition.After(s.now()) {
		return fmt.Errorf("acquisition timestamp is from the future: %w", ErrBadEntryValue)
	}

	patient, err := repos.Patients.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, patients.ErrNotFound) {
			return fmt.Errorf("patient %d: %w", patientID, ErrNotFound)
		}
		return fmt.Errorf("patient lookup failed: %w", err)
	}

	dobPlain, ok := cryptox.Decrypt(key, patient.DateOfBirth)
	if !ok {
		return fmt.Errorf("cannot decrypt date of birth for patient %d", patientID)
	}
	dob, err := time.ParseInLocation(models.DateLayout, string(dobPlain), time.Local)
	if err != nil {
		return fmt.Errorf("stored date of birth is corrupt: %w", err)
	}

	if acquisition.Format(models.DateLayout) < dob.Format(models.DateLayout) {
		return fmt.Errorf("acquisition timestamp is from before the day of birth: %w", ErrBadEntryValue)
	}

	return nil
}

// Get assembles the decrypted patient record with readings ordered most
// recent first. The plaintext view lives only for the duration of the
// request.
func (s *Service) Get(ctx context.Context, patientID int64, key []byte) (*models.RecordEnvelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := s.mgr.Bind(s.mgr.DB())

	patient, err := repos.Patients.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, patients.ErrNotFound) {
			return nil, fmt.Errorf("patient %d: %w", patientID, ErrNotFound)
		}
		return nil, fmt.Errorf("patient lookup failed: %w", err)
	}

	lastName, ok := cryptox.Decrypt(key, patient.LastName)
	if !ok {
		return nil, fmt.Errorf("cannot decrypt last name for patient %d", patientID)
	}
	firstName, ok := cryptox.Decrypt(key, patient.FirstName)
	if !ok {
		return nil, fmt.Errorf("cannot decrypt first name for patient %d", patientID)
	}
	dob, ok := cryptox.Decrypt(key, patient.DateOfBirth)
	if !ok {
		return nil, fmt.Errorf("cannot decrypt date of birth for patient %d", patientID)
	}

	record := models.PatientRecord{
		LastName:     string(lastName),
		FirstName:    string(firstName),
		DateOfBirth:  string(dob),
		RegisteredAt: patient.RegisteredAt,
		Pressure:     []models.PressureEntry{},
		Temperature:  []models.TemperatureEntry{},
	}

	pressure, err := repos.Readings.PressureByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for _, p := range pressure {
		record.Pressure = append(record.Pressure, models.PressureEntry{
			Acquisition: p.Acquisition,
			Systolic:    p.Systolic,
			Diastolic:   p.Diastolic,
			EnteredAt:   p.EnteredAt,
		})
	}

	temperature, err := repos.Readings.TemperatureByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for _, t := range temperature {
		record.Temperature = append(record.Temperature, models.TemperatureEntry{
			Acquisition: t.Acquisition,
			Value:       t.Value,
			EnteredAt:   t.EnteredAt,
		})
	}

	return &models.RecordEnvelope{Patient: record}, nil
}
