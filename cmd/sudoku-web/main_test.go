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

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jamesecheung/sudoku/puzzle"
)

const (
	easyPuzzle   = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	easySolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	hardPuzzle   = "800000000003600000070090200050007000000045700000100030001000068008500010090000400"
)

func TestListenAddr(t *testing.T) {
	saved, had := os.LookupEnv("PORT")
	defer func() {
		if had {
			os.Setenv("PORT", saved)
		} else {
			os.Unsetenv("PORT")
		}
	}()

	os.Unsetenv("PORT")
	if addr := listenAddr(""); addr != "localhost:8080" {
		t.Errorf("default address was %q", addr)
	}
	if addr := listenAddr("8111"); addr != ":8111" {
		t.Errorf("flag address was %q", addr)
	}
	os.Setenv("PORT", "9321")
	if addr := listenAddr(""); addr != ":9321" {
		t.Errorf("PORT address was %q", addr)
	}
	if addr := listenAddr("8111"); addr != ":8111" {
		t.Errorf("flag should win over PORT, got %q", addr)
	}
}

// post sends a solve-style request to the storage-free server.
func post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := &server{}
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.mux().ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	w := post(t, "/api/solve", `{"values": "`+easyPuzzle+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("solve status %d: %s", w.Code, w.Body.String())
	}
	var resp puzzle.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Couldn't decode solve response: %v", err)
	}
	if resp.Status != "solved" || resp.Values != easySolution {
		t.Errorf("solve produced %s / %s", resp.Status, resp.Values)
	}
}

func TestRateEndpoint(t *testing.T) {
	w := post(t, "/api/rate", `{"values": "`+hardPuzzle+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("rate status %d: %s", w.Code, w.Body.String())
	}
	var resp puzzle.RateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Couldn't decode rate response: %v", err)
	}
	if resp.Status != "stalled" || resp.Input != hardPuzzle {
		t.Errorf("rate produced %+v", resp)
	}
}

func TestRateBadRequests(t *testing.T) {
	for i, body := range []string{
		"not json at all",
		`{"values": "123"}`,
	} {
		w := post(t, "/api/rate", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status %d", i, w.Code)
		}
		var e puzzle.Error
		if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
			t.Errorf("case %d: Couldn't decode error body: %v", i, err)
		} else if e.Message == "" {
			t.Errorf("case %d: error has no message", i)
		}
	}
}

func TestPuzzlesWithoutStorage(t *testing.T) {
	srv := &server{}
	req := httptest.NewRequest("GET", "/api/puzzles", nil)
	w := httptest.NewRecorder()
	srv.mux().ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("library status without storage: %d", w.Code)
	}
}

func TestMethodChecks(t *testing.T) {
	srv := &server{}
	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/solve"},
		{"GET", "/api/rate"},
		{"POST", "/api/puzzles"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		srv.mux().ServeHTTP(w, req)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s got status %d", tc.method, tc.path, w.Code)
		}
	}
}
