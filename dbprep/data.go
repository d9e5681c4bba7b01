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
	"time"

	"github.com/jackc/pgx"

	"github.com/jamesecheung/sudoku/puzzle"
)

/*

entries

*/

type dataFunction func(*pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}

	// open the database, defer the close
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		return err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin()
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("Data load step failed: %v", err)
		}
	}
	return nil
}

/*

sample puzzles

The samples span the solver's range: the first three fall to the
rule set at increasing cost, the last is a famously hard puzzle
that stalls it, so the library always has a "beyond rating"
exhibit.

*/

// A SamplePuzzle names one of the built-in library puzzles.
type SamplePuzzle struct {
	Name   string
	Values string
}

// SamplePuzzles are loaded by DataUp and relied on by tests.
var SamplePuzzles = []SamplePuzzle{
	{"standard-1", "" +
		"010506020" + "000003018" + "000070006" +
		"005000030" + "008090700" + "060000400" +
		"500040000" + "640200000" + "030901080"},
	{"standard-2", "" +
		"900450008" + "020000000" + "000172400" +
		"079000680" + "200000005" + "043000270" +
		"008325000" + "000000060" + "400016003"},
	{"standard-3", "" +
		"530070000" + "600195000" + "098000060" +
		"800060003" + "400803001" + "700020006" +
		"060000280" + "000419005" + "000080079"},
	{"standard-4", "" +
		"800000000" + "003600000" + "070090200" +
		"050007000" + "000045700" + "000100030" +
		"001000068" + "008500010" + "090000400"},
}

// insertSamples rates each sample on the way in, so the stored
// rounds and score columns are ready to serve.
func insertSamples(tx *pgx.Tx) error {
	for _, sample := range SamplePuzzles {
		resp, err := puzzle.SolveString(sample.Values, puzzle.Options{})
		if err != nil {
			return fmt.Errorf("Sample %q won't parse: %v", sample.Name, err)
		}
		_, err = tx.Exec(
			"INSERT INTO puzzles (name, valueString, rounds, score, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			sample.Name, sample.Values, resp.Rounds, resp.Score, time.Now())
		if err != nil {
			return fmt.Errorf("Couldn't insert sample %q: %v", sample.Name, err)
		}
	}
	return nil
}

func deleteSamples(tx *pgx.Tx) error {
	for _, sample := range SamplePuzzles {
		if _, err := tx.Exec("DELETE FROM puzzles WHERE name = $1", sample.Name); err != nil {
			return fmt.Errorf("Couldn't delete sample %q: %v", sample.Name, err)
		}
	}
	return nil
}
