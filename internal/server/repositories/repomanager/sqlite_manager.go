package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	sqlitemigrations "github.com/dmitrijs2005/medregistry/internal/server/migrations/sqlite"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/patients"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/readings"
)

type SQLiteManager struct {
	db *sql.DB
}

func NewSQLiteManager(dsn string) (*SQLiteManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &SQLiteManager{db: db}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *SQLiteManager) DB() *sql.DB {
	return m.db
}

func (m *SQLiteManager) Bind(db dbx.DBTX) *Repos {
	return &Repos{
		Credentials: credentials.NewSQLiteRepository(db),
		Patients:    patients.NewSQLiteRepository(db),
		Readings:    readings.NewSQLiteRepository(db),
	}
}

func (m *SQLiteManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(sqlitemigrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *SQLiteManager) Close() error {
	return m.db.Close()
}
