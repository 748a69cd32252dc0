package patients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.Patient) (int64, error) {
	query := `INSERT INTO patients (last_name, first_name, date_of_birth, registration_timestamp, credentials_id)
			VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		p.LastName, p.FirstName, p.DateOfBirth, p.RegisteredAt, p.CredentialsID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			existing, lookupErr := r.GetByCredentialsID(ctx, p.CredentialsID)
			if lookupErr != nil {
				return 0, fmt.Errorf("failed to resolve duplicate patient: %w", lookupErr)
			}
			return existing.ID, nil
		}
		return 0, fmt.Errorf("failed to insert patient: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get patient id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	query := `SELECT id, last_name, first_name, date_of_birth, registration_timestamp, credentials_id
			FROM patients WHERE id = ?`

	return scanPatient(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) GetByCredentialsID(ctx context.Context, credentialsID int64) (*models.Patient, error) {
	query := `SELECT id, last_name, first_name, date_of_birth, registration_timestamp, credentials_id
			FROM patients WHERE credentials_id = ?`

	return scanPatient(r.db.QueryRowContext(ctx, query, credentialsID))
}

func scanPatient(row *sql.Row) (*models.Patient, error) {
	p := &models.Patient{}
	err := row.Scan(&p.ID, &p.LastName, &p.FirstName, &p.DateOfBirth, &p.RegisteredAt, &p.CredentialsID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return p, nil
}
