// sudoku - a logic-based Sudoku solver and rating service.
// Copyright (C) 2026 James Cheung.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package dbprep

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// figure out the migration parameters.  The migration files live
// next to this package in dbprep/migrations; DBPREP_PATH
// overrides the location for callers running from elsewhere.
func getMigrateParams() (url string, path string) {
	url = os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}
	path = os.Getenv("DBPREP_PATH")
	if path == "" {
		if fi, err := os.Stat(filepath.Join("dbprep", "migrations")); err == nil && fi.IsDir() {
			// running from root directory
			path = filepath.Join("dbprep", "migrations")
		} else {
			path = "migrations"
		}
	}
	return
}

// openMigrate builds the migrator for the configured source and
// database.  Callers must close it.
func openMigrate() (*migrate.Migrate, error) {
	url, path := getMigrateParams()
	m, err := migrate.New("file://"+path, url)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open migrations at %q for %q: %v", path, url, err)
	}
	return m, nil
}

// SchemaUp creates the database with the right schema
func SchemaUp() error {
	m, err := openMigrate()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table creation had errors: %v", err)
	}
	return nil
}

// SchemaDown tears down the database
func SchemaDown() error {
	m, err := openMigrate()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the version of the database, 0 when no
// migration has been applied yet.
func SchemaVersion() (uint, error) {
	m, err := openMigrate()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("Database is mid-migration at version %d", version)
	}
	return version, nil
}
