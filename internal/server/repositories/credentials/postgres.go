package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

// PostgresRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, c *models.Credential) (int64, error) {
	query := `INSERT INTO credentials (username, password) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, c.Username, c.Password).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert credential: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) All(ctx context.Context) ([]models.Credential, error) {
	query := `SELECT id, username, password FROM credentials ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select credentials: %w", err)
	}
	defer rows.Close()

	var result []models.Credential
	for rows.Next() {
		var item models.Credential
		if err := rows.Scan(&item.ID, &item.Username, &item.Password); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count credentials: %w", err)
	}
	return n, nil
}
