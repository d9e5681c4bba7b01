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
)

/*

cached ratings

Rating a puzzle is deterministic, so once one client has paid for
a solve the diagnosis is cached under the puzzle's input string
and every later request is a cache hit.

*/

// A Rating is the cached difficulty diagnosis of one puzzle.
type Rating struct {
	Input  string    `json:"input"`
	Status string    `json:"status"`
	Rounds int       `json:"rounds"`
	Score  int       `json:"score"`
	Rated  time.Time `json:"rated"`
}

// key: compute the cache key for a Rating.
func (r *Rating) key() string {
	return "rating:" + r.Input
}

// SaveRating caches a rating, replacing any earlier rating of
// the same puzzle.  The Rated timestamp is filled in if unset.
func SaveRating(r *Rating) error {
	if r.Rated.IsZero() {
		r.Rated = time.Now()
	}
	bytes, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("Failed to marshal rating %q: %v", r.Input, err)
	}
	return rdExecute(func(conn redis.Conn) error {
		if _, err := conn.Do("SET", r.key(), bytes); err != nil {
			return fmt.Errorf("Cache failure saving rating %q: %v", r.Input, err)
		}
		return nil
	})
}

// LookupRating returns the cached rating for a puzzle string, or
// nil if the puzzle hasn't been rated yet.
func LookupRating(input string) (*Rating, error) {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", "rating:"+input))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading rating %q: %v", input, err)
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if len(bytes) == 0 {
		return nil, nil
	}
	var r *Rating
	if err := json.Unmarshal(bytes, &r); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal rating %q: %v", input, err)
	}
	if r.Input != input {
		return nil, fmt.Errorf("Cached rating (input %q) found for puzzle %q!", r.Input, input)
	}
	return r, nil
}

// DropRating removes a puzzle's cached rating, if any.
func DropRating(input string) error {
	return rdExecute(func(conn redis.Conn) error {
		if _, err := conn.Do("DEL", "rating:"+input); err != nil {
			return fmt.Errorf("Cache failure dropping rating %q: %v", input, err)
		}
		return nil
	})
}
