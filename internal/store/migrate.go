package store

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/matheus3301/wppmock/internal/store/migrations"
)

// MigrateResult is logged by the daemon once the schema is current.
type MigrateResult struct {
	Version uint
	Dirty   bool
	Changed bool
}

// Migrate brings the chats and entries tables to the latest embedded
// schema. A database left dirty by a crashed migration is reported with
// its path so the session can be reset by hand.
func (db *DB) Migrate() (*MigrateResult, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}

	changed := true
	err = m.Up()
	var dirty migrate.ErrDirty
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		changed = false
	case errors.As(err, &dirty):
		return nil, fmt.Errorf("%s is dirty at migration %d, remove it to reseed the session: %w", db.Path, dirty.Version, err)
	case err != nil:
		return nil, fmt.Errorf("migration up: %w", err)
	}

	version, isDirty, err := m.Version()
	if err != nil {
		return nil, fmt.Errorf("migration version: %w", err)
	}
	return &MigrateResult{
		Version: version,
		Dirty:   isDirty,
		Changed: changed,
	}, nil
}
