package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	pgmigrations "github.com/dmitrijs2005/medregistry/internal/server/migrations/postgres"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/patients"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/readings"
)

type PostgresManager struct {
	db *sql.DB
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{db: db}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) DB() *sql.DB {
	return m.db
}

func (m *PostgresManager) Bind(db dbx.DBTX) *Repos {
	return &Repos{
		Credentials: credentials.NewPostgresRepository(db),
		Patients:    patients.NewPostgresRepository(db),
		Readings:    readings.NewPostgresRepository(db),
	}
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(pgmigrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
