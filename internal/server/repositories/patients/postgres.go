package patients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

// PostgresRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
//
// Unlike sqlite, postgres aborts the surrounding transaction on a unique
// violation, so Insert resolves the duplicate case with ON CONFLICT instead
// of a retry lookup.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, p *models.Patient) (int64, error) {
	query := `INSERT INTO patients (last_name, first_name, date_of_birth, registration_timestamp, credentials_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (credentials_id) DO NOTHING
			RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		p.LastName, p.FirstName, p.DateOfBirth, p.RegisteredAt, p.CredentialsID).Scan(&id)
	if err != nil {
		// no row returned means the conflict fired: the credential already
		// owns a patient
		if errors.Is(err, sql.ErrNoRows) {
			existing, lookupErr := r.GetByCredentialsID(ctx, p.CredentialsID)
			if lookupErr != nil {
				return 0, fmt.Errorf("failed to resolve duplicate patient: %w", lookupErr)
			}
			return existing.ID, nil
		}
		return 0, fmt.Errorf("failed to insert patient: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	query := `SELECT id, last_name, first_name, date_of_birth, registration_timestamp, credentials_id
			FROM patients WHERE id = $1`

	return scanPatient(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByCredentialsID(ctx context.Context, credentialsID int64) (*models.Patient, error) {
	query := `SELECT id, last_name, first_name, date_of_birth, registration_timestamp, credentials_id
			FROM patients WHERE credentials_id = $1`

	return scanPatient(r.db.QueryRowContext(ctx, query, credentialsID))
}
