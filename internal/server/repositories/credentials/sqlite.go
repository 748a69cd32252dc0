package credentials

import (
	"context"
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

func (r *SQLiteRepository) Insert(ctx context.Context, c *models.Credential) (int64, error) {
	query := `INSERT INTO credentials (username, password) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, c.Username, c.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to insert credential: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get credential id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) All(ctx context.Context) ([]models.Credential, error) {
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

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count credentials: %w", err)
	}
	return n, nil
}
