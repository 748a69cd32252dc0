// Package patients stores patient rows. Identity fields are ciphertext
// under the owning patient's key; the credentials_id uniqueness constraint
// enforces the 1:1 credential-patient link.
package patients

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

// ErrNotFound is returned when no patient row matches the lookup.
var ErrNotFound = errors.New("patient not in register")

type Repository interface {
	// Insert stores a new patient and returns its id. If the credential
	// already owns a patient (unique violation on credentials_id), the
	// pre-existing patient's id is returned instead of an error, so the
	// registration retry path stays idempotent.
	Insert(ctx context.Context, p *models.Patient) (int64, error)

	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	GetByCredentialsID(ctx context.Context, credentialsID int64) (*models.Patient, error)
}
