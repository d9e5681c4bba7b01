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
	"os"
	"testing"

	"github.com/jamesecheung/sudoku/puzzle"
)

func TestSamplePuzzlesAreWellFormed(t *testing.T) {
	expected := map[string]string{
		"standard-1": "solved",
		"standard-2": "solved",
		"standard-3": "solved",
		"standard-4": "stalled",
	}
	if len(SamplePuzzles) != len(expected) {
		t.Fatalf("%d samples, expected %d", len(SamplePuzzles), len(expected))
	}
	for _, sample := range SamplePuzzles {
		if len(sample.Values) != puzzle.CellCount {
			t.Errorf("sample %q has %d characters", sample.Name, len(sample.Values))
			continue
		}
		resp, err := puzzle.SolveString(sample.Values, puzzle.Options{})
		if err != nil {
			t.Errorf("sample %q won't solve: %v", sample.Name, err)
			continue
		}
		if resp.Status != expected[sample.Name] {
			t.Errorf("sample %q finished %q, expected %q",
				sample.Name, resp.Status, expected[sample.Name])
		}
	}
}

func TestSchemaRoundTrip(t *testing.T) {
	os.Setenv("DBPREP_PATH", "migrations")
	if _, err := SchemaVersion(); err != nil {
		t.Skipf("no database available: %v", err)
	}
	if err := ReinitializeAll(); err != nil {
		t.Fatalf("ReinitializeAll failed: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version == 0 {
		t.Errorf("schema version still 0 after reinitialization")
	}
	if err := RemoveData(); err != nil {
		t.Fatalf("RemoveData failed: %v", err)
	}
	version, err = SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed after teardown: %v", err)
	}
	if version != 0 {
		t.Errorf("schema version %d after teardown", version)
	}
	// leave the schema in place for whoever runs next
	if err := EnsureData(); err != nil {
		t.Fatalf("EnsureData failed: %v", err)
	}
}
