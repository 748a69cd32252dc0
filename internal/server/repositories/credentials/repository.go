// Package credentials stores encrypted (username, password) pairs. Both
// fields are ciphertext under a key derived from the row's own password, so
// the only possible lookup is a full scan with attempted decryption — All
// returns every row in storage order for exactly that purpose.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

type Repository interface {
	// Insert stores a new credential and returns its id.
	Insert(ctx context.Context, c *models.Credential) (int64, error)

	// All returns every credential in storage order (the authentication
	// scan's tie-break order).
	All(ctx context.Context) ([]models.Credential, error)

	// Count returns the number of stored credentials.
	Count(ctx context.Context) (int64, error)
}
