// Package repomanager selects and owns the storage backend. The default
// backend is a local sqlite file (matching the original registry); a
// postgres DSN switches to the pgx driver. Bind produces repositories bound
// to either the pooled handle or an open transaction.
package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/patients"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/readings"
)

// Repos bundles the three registry repositories bound to one DBTX.
type Repos struct {
	Credentials credentials.Repository
	Patients    patients.Repository
	Readings    readings.Repository
}

type Manager interface {
	// DB returns the pooled database handle (for dbx.WithTx).
	DB() *sql.DB

	// Bind returns repositories bound to db, which may be the pooled
	// handle or a transaction started on it.
	Bind(db dbx.DBTX) *Repos

	RunMigrations(ctx context.Context) error
	Close() error
}

// New picks the backend from the DSN: postgres URLs go to pgx, anything
// else is treated as a sqlite file path.
func New(dsn string) (Manager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresManager(dsn)
	}
	return NewSQLiteManager(dsn)
}
