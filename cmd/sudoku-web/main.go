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

// Web service for the sudoku solver: JSON solve and rate
// endpoints plus the stored puzzle library.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jamesecheung/sudoku/puzzle"
	"github.com/jamesecheung/sudoku/storage"
)

var log = logrus.New()

func main() {
	var port, redisUrl, databaseUrl string
	var noStorage bool

	root := &cobra.Command{
		Use:   "sudoku-web",
		Short: "Serve the sudoku solver over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			// flags override the storage environment
			if redisUrl != "" {
				os.Setenv("REDISTOGO_URL", redisUrl)
			}
			if databaseUrl != "" {
				os.Setenv("DATABASE_URL", databaseUrl)
			}
			return serve(listenAddr(port), !noStorage)
		},
	}
	root.Flags().StringVar(&port, "port", "", "listen port (default $PORT, or localhost:8080)")
	root.Flags().StringVar(&redisUrl, "redis-url", "", "rating cache URL (default $REDISTOGO_URL)")
	root.Flags().StringVar(&databaseUrl, "database-url", "", "puzzle library URL (default $DATABASE_URL)")
	root.Flags().BoolVar(&noStorage, "no-storage", false,
		"run without the rating cache and puzzle library")

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}

// listenAddr resolves the listen address from the port flag or
// the environment port, the way platform deployments pass it.
func listenAddr(port string) string {
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port != "" {
		return ":" + port
	}
	return "localhost:8080"
}

func serve(addr string, withStorage bool) error {
	srv := &server{}
	if withStorage {
		cacheId, databaseId, err := storage.Connect()
		if err != nil {
			return err
		}
		defer storage.Close()
		srv.storage = true
		log.WithField("cache", cacheId).Info("connected to cache")
		log.WithField("database", databaseId).Info("connected to database")
	} else {
		log.Info("running without storage")
	}

	log.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, srv.mux())
}

// A server carries the handler state: just whether storage came
// up, since the solver itself is stateless.
type server struct {
	storage bool
}

func (srv *server) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/solve", srv.logged(srv.solve))
	mux.HandleFunc("/api/rate", srv.logged(srv.rate))
	mux.HandleFunc("/api/puzzles", srv.logged(srv.puzzles))
	mux.HandleFunc("/api/puzzles/", srv.logged(srv.puzzles))
	return mux
}

// logged wraps a handler with request logging.
func (srv *server) logged(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		log.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start),
		}).Info("request")
	}
}

/*

endpoints

*/

// solve delegates entirely to the puzzle handler; there is
// nothing to cache because the response carries the whole grid.
func (srv *server) solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	resp, err := puzzle.SolveHandler(w, r)
	if err != nil {
		log.WithError(err).Warn("solve rejected")
		return
	}
	log.WithFields(logrus.Fields{
		"status": resp.Status,
		"rounds": resp.Rounds,
		"score":  resp.Score,
	}).Info("solved puzzle")
}

// rate checks the rating cache before solving, and caches the
// diagnosis afterward, so each puzzle is only ever rated once.
func (srv *server) rate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	var req puzzle.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		srv.clientError(w, "Bad request body: "+err.Error())
		return
	}
	if srv.storage && len(req.Values) >= puzzle.CellCount {
		cached, err := storage.LookupRating(req.Values[:puzzle.CellCount])
		if err != nil {
			log.WithError(err).Warn("rating cache lookup failed")
		} else if cached != nil {
			log.WithField("input", cached.Input).Info("rating cache hit")
			respond(w, http.StatusOK, &puzzle.RateResponse{
				Input:  cached.Input,
				Status: cached.Status,
				Rounds: cached.Rounds,
				Score:  cached.Score,
			})
			return
		}
	}
	full, err := puzzle.SolveString(req.Values, puzzle.Options{})
	if err != nil {
		srv.clientError(w, err.Error())
		return
	}
	resp := &puzzle.RateResponse{
		Input:  full.Input,
		Status: full.Status,
		Rounds: full.Rounds,
		Score:  full.Score,
	}
	if srv.storage {
		rating := &storage.Rating{
			Input:  resp.Input,
			Status: resp.Status,
			Rounds: resp.Rounds,
			Score:  resp.Score,
		}
		if err := storage.SaveRating(rating); err != nil {
			log.WithError(err).Warn("rating cache save failed")
		}
	}
	log.WithFields(logrus.Fields{"status": resp.Status, "score": resp.Score}).Info("rated puzzle")
	respond(w, http.StatusOK, resp)
}

// puzzles serves the library: the name list at /api/puzzles, one
// record at /api/puzzles/<name>.
func (srv *server) puzzles(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "GET required", http.StatusMethodNotAllowed)
		return
	}
	if !srv.storage {
		http.Error(w, "puzzle library is not available", http.StatusServiceUnavailable)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/puzzles")
	name = strings.Trim(name, "/")
	if name == "" {
		names, err := storage.PuzzleNames()
		if err != nil {
			log.WithError(err).Error("library listing failed")
			http.Error(w, "library listing failed", http.StatusInternalServerError)
			return
		}
		respond(w, http.StatusOK, names)
		return
	}
	pr, err := storage.PuzzleByName(name)
	if err != nil {
		log.WithError(err).WithField("name", name).Error("library lookup failed")
		http.Error(w, "library lookup failed", http.StatusInternalServerError)
		return
	}
	if pr == nil {
		http.Error(w, "no such puzzle", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, pr)
}

/*

response helpers

*/

func respond(w http.ResponseWriter, status int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.WithError(err).Error("response encoding failed")
	}
}

// clientError sends a 400 in the same JSON error shape the
// puzzle handlers use.
func (srv *server) clientError(w http.ResponseWriter, msg string) {
	respond(w, http.StatusBadRequest, puzzle.Error{
		Scope:     puzzle.RequestScope,
		Condition: puzzle.GeneralCondition,
		Message:   msg,
	})
}
