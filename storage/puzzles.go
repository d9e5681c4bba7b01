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
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"
)

/*

puzzle library

Named puzzles live in the database, with a cache entry in front
of each so repeat lookups don't touch Postgres.  The rounds and
score columns are the stored difficulty diagnosis, computed when
the puzzle was added.

*/

// A PuzzleRecord is the stored form of a library puzzle.  It is
// JSON serializable so it can go into the cache as well as the
// database.
type PuzzleRecord struct {
	Name    string    `json:"name"`
	Values  string    `json:"values"` // 81-digit puzzle string
	Rounds  int       `json:"rounds"`
	Score   int       `json:"score"`
	Created time.Time `json:"created"`
}

// key: compute the cache key for a PuzzleRecord.
func (pr *PuzzleRecord) key() string {
	return "puzzle:" + pr.Name
}

// PuzzleByName first checks the cache, then the database, for
// the named puzzle.  If it loads from the database, it caches
// the result.  Returns nil if there is no such puzzle.
func PuzzleByName(name string) (*PuzzleRecord, error) {
	pr := &PuzzleRecord{Name: name}
	found, err := pr.cacheLoad()
	if err != nil {
		return nil, err
	}
	if found {
		return pr, nil
	}
	// cache miss, load from database and save to cache
	found, err = pr.databaseLoad()
	if err != nil || !found {
		return nil, err
	}
	if err := pr.cacheInsert(); err != nil {
		return nil, err
	}
	return pr, nil
}

// PuzzleNames returns the names of all library puzzles, in
// alphabetical order.
func PuzzleNames() ([]string, error) {
	var names []string
	err := pgExecute(func(tx *pgx.Tx) error {
		rows, err := tx.Query("SELECT name FROM puzzles ORDER BY name")
		if err != nil {
			return fmt.Errorf("Failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("Failure reading puzzle name: %v", err)
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// InsertPuzzle adds a puzzle to the library and caches it.  The
// Created timestamp is filled in if unset.  Fails if the name is
// already taken.
func InsertPuzzle(pr *PuzzleRecord) error {
	if pr.Created.IsZero() {
		pr.Created = time.Now()
	}
	if err := pr.databaseInsert(); err != nil {
		return err
	}
	return pr.cacheInsert()
}

// cacheLoad: load an already cached puzzle record.  Returns
// whether the record was found in the cache.
func (pr *PuzzleRecord) cacheLoad() (bool, error) {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", pr.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzle %q: %v", pr.Name, err)
		}
		return
	})
	if err != nil || len(bytes) == 0 {
		return false, err
	}
	var spr *PuzzleRecord
	if err := json.Unmarshal(bytes, &spr); err != nil {
		return false, fmt.Errorf("Failed to unmarshal puzzle %q: %v", pr.Name, err)
	}
	if spr.Name != pr.Name {
		return false, fmt.Errorf("Cached puzzle (name %q) found for puzzle %q!", spr.Name, pr.Name)
	}
	*pr = *spr
	return true, nil
}

// cacheInsert: insert a puzzle record into the cache.  Replaces
// any existing record with the same name.
func (pr *PuzzleRecord) cacheInsert() error {
	bytes, err := json.Marshal(pr)
	if err != nil {
		return fmt.Errorf("Failed to marshal puzzle %q: %v", pr.Name, err)
	}
	return rdExecute(func(conn redis.Conn) error {
		if _, err := conn.Do("SET", pr.key(), bytes); err != nil {
			return fmt.Errorf("Cache failure saving puzzle %q: %v", pr.Name, err)
		}
		return nil
	})
}

// databaseLoad: load a puzzle record from the database.  Returns
// whether a record with the given name exists.
func (pr *PuzzleRecord) databaseLoad() (bool, error) {
	found := true
	err := pgExecute(func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT valueString, rounds, score, created FROM puzzles "+
				"WHERE name = $1", pr.Name)
		err := row.Scan(&pr.Values, &pr.Rounds, &pr.Score, &pr.Created)
		if err == pgx.ErrNoRows {
			found = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pr.Name, err)
		}
		return nil
	})
	return found && err == nil, err
}

// databaseInsert: insert a new puzzle record into the database.
// Fails if there is already a record with the given name.
func (pr *PuzzleRecord) databaseInsert() error {
	return pgExecute(func(tx *pgx.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO puzzles (name, valueString, rounds, score, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			pr.Name, pr.Values, pr.Rounds, pr.Score, pr.Created)
		if err != nil {
			return fmt.Errorf("Database error saving puzzle %q: %v", pr.Name, err)
		}
		return nil
	})
}

// DeletePuzzle removes a puzzle from the library and the cache.
func DeletePuzzle(name string) error {
	err := pgExecute(func(tx *pgx.Tx) error {
		if _, err := tx.Exec("DELETE FROM puzzles WHERE name = $1", name); err != nil {
			return fmt.Errorf("Database error deleting puzzle %q: %v", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return rdExecute(func(conn redis.Conn) error {
		if _, err := conn.Do("DEL", "puzzle:"+name); err != nil {
			return fmt.Errorf("Cache failure deleting puzzle %q: %v", name, err)
		}
		return nil
	})
}
