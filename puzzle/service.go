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

package puzzle

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Web service wrappers

The solver's two operations are exposed as JSON POST handlers so
it's easy to build web services over them.  Handlers return the
response object to the golang caller as well as to the client,
so servers can layer caching over them.

*/

// A SolveRequest carries the puzzle string to solve or rate.
type SolveRequest struct {
	Values string `json:"values"`
}

// A SolveResponse reports one finished solve.
type SolveResponse struct {
	Input     string         `json:"input"`
	Status    string         `json:"status"`
	Values    string         `json:"values"`
	Solved    int            `json:"solved"`
	Remaining int            `json:"remaining"`
	Rounds    int            `json:"rounds"`
	Score     int            `json:"score"`
	Removed   map[string]int `json:"removed,omitempty"`
}

// A RateResponse reports just the difficulty diagnosis of a
// puzzle, without the grid content.
type RateResponse struct {
	Input  string `json:"input"`
	Status string `json:"status"`
	Rounds int    `json:"rounds"`
	Score  int    `json:"score"`
}

// SolveString runs one complete solve of a puzzle string with
// the given options, producing the response form shared by the
// handlers, the shell, and the rating cache.
func SolveString(values string, opts Options) (*SolveResponse, error) {
	parsed, err := Parse(values)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(parsed)
	if err != nil {
		return nil, err
	}
	result := Solve(g, opts)
	return &SolveResponse{
		Input:     values[:CellCount],
		Status:    result.Status.String(),
		Values:    g.DigitsString(),
		Solved:    g.SolvedCount(),
		Remaining: g.RemainingCount(),
		Rounds:    result.Rounds,
		Score:     result.Report.Score(),
		Removed:   result.Report.Removed,
	}, nil
}

// SolveHandler is a POST handler that reads a JSON-encoded
// SolveRequest from the request body, solves the puzzle, and
// sends the SolveResponse as a 200 response.  Malformed bodies
// and malformed puzzle strings get a 400 response.  The response
// object is also returned to the golang caller.
func SolveHandler(w http.ResponseWriter, r *http.Request) (*SolveResponse, error) {
	req, err := decodeRequest(w, r)
	if err != nil {
		return nil, err
	}
	resp, e := SolveString(req.Values, Options{})
	if e != nil {
		return nil, writeArgumentError(e, w, r)
	}
	return resp, writeJSON(resp, http.StatusOK, w, r)
}

// RateHandler is a POST handler like SolveHandler, but the
// response carries only the difficulty diagnosis.
func RateHandler(w http.ResponseWriter, r *http.Request) (*RateResponse, error) {
	req, err := decodeRequest(w, r)
	if err != nil {
		return nil, err
	}
	full, e := SolveString(req.Values, Options{})
	if e != nil {
		return nil, writeArgumentError(e, w, r)
	}
	resp := &RateResponse{
		Input:  full.Input,
		Status: full.Status,
		Rounds: full.Rounds,
		Score:  full.Score,
	}
	return resp, writeJSON(resp, http.StatusOK, w, r)
}

/*

Utilities

*/

// decodeRequest reads the posted SolveRequest, sending a 400 on
// failure.
func decodeRequest(w http.ResponseWriter, r *http.Request) (*SolveRequest, error) {
	dec := json.NewDecoder(r.Body)
	var req SolveRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	return &req, nil
}

// writeArgumentError sends a puzzle-validation failure as a 400
// with the Error's JSON form.
func writeArgumentError(e error, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		return writeError(errorFormatError, ErrorData{"SolveString", e.Error()}, w, r)
	}
	err.Message = err.Error() // verbalize for the client
	return writeJSON(err, http.StatusBadRequest, w, r)
}

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller: the encoding Error if
// encoding failed, the sent Error if the response was an Error,
// nil otherwise.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an encoding error, so the
			// JSON encoder is unusable; pseudo-encode the error
			// by hand as a quoted string.
			status = http.StatusInternalServerError
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
