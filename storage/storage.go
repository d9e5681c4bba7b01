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

package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"

	"github.com/jamesecheung/sudoku/dbprep"
)

/*

Storage layout

The service keeps two stores: a Redis cache holding computed
puzzle ratings (cheap to lose, keyed by the 81-digit input
string), and a Postgres database holding the puzzle library.
Connect brings up both and makes sure the database schema and
sample data are in place; every accessor then runs through
rdExecute or pgExecute, which own reconnection and transaction
handling.

*/

// Connect initializes the database if needed and opens both the
// cache and database connections.  It returns identifiers for
// the two connections (their URLs).
func Connect() (cacheId, databaseId string, err error) {
	// make sure the database is initialized
	if err = dbprep.EnsureData(); err != nil {
		err = fmt.Errorf("Couldn't initialize database: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	if err != nil {
		return
	}
	return
}

// Close closes both connections.  Safe to call when Connect
// failed partway.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDISTOGO_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		err = fmt.Errorf("Couldn't connect to cache at %q: %v", rdUrl, err)
		return "", err
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the given Redis connection.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis mutex and
// connection held.  Because Redis connections can go away
// without warning, we ping to make sure the connection is alive,
// and try to reconnect if not.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("Cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("Failed to reconnect to cache at %q: %v", rdUrl, err)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/sudoku?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: Open the Postgres database.  Returns any error
// encountered during the open.
func pgConnect() (string, error) {
	cfg, err := pgx.ParseURI(pgUrl)
	if err != nil {
		err = fmt.Errorf("Parse failure on Postgres URI %q: %v", pgUrl, err)
		return "", err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		err = fmt.Errorf("Couldn't connect to db at %q: %v", pgUrl, err)
		return "", err
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the given Postgres connection.
func pgClose() {
	if pgConn != nil {
		pgConn.Close()
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out, the transaction is rolled back, otherwise
// it's committed.
func pgExecute(body func(tx *pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("Database is not connected")
	}
	tx, err := pgConn.Begin()
	if err != nil {
		return fmt.Errorf("Can't open a transaction against database: %v", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
