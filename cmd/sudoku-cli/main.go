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

// Command-line client for the sudoku solver.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jamesecheung/sudoku/puzzle"
)

func main() {
	if err := listener(os.Stdout, os.Stdin); err != nil {
		log.Fatalf("CLI failure: %v", err)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// parseRequest splits one input line into command and arguments.
func parseRequest(line string) *request {
	r := &request{inline: strings.Trim(line, " \t\r\n")}
	args := strings.Split(r.inline, " ")
	r.command = strings.ToLower(args[0])
	for _, arg := range args[1:] {
		if len(arg) > 0 {
			r.args = append(r.args, strings.ToLower(arg))
		}
	}
	return r
}

// listener reads lines and dispatches them to handlers
func listener(out io.Writer, in io.Reader) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if f, ok := out.(*os.File); ok {
		if stat, _ := f.Stat(); stat != nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			prompt = true
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(out, "sudoku> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				if prompt {
					fmt.Fprintf(out, " (read error)\n")
				}
				return err
			}
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		}
		r := parseRequest(scanner.Text())
		switch r.command {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		dispatchCommand(out, r)
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(io.Writer, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"help", "", "show this usage summary", helpHandler},
		{"rate", "puzzle", "rate a puzzle without showing its solution", rateHandler},
		{"show", "", "show the last solved grid again", showHandler},
		{"solve", "puzzle", "solve an 81-digit puzzle string", solveHandler},
		{"verbose", "on|off", "trace the solving rounds", verboseHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w io.Writer, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w)
	} else {
		ci.handler(w, r)
	}
}

/*

request handlers

*/

// client state
var (
	verbose  = false
	lastGrid *puzzle.Grid
)

func solveHandler(w io.Writer, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one puzzle string", r.command), w)
		return
	}
	values, err := puzzle.Parse(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	g, err := puzzle.NewGrid(values)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	opts := puzzle.Options{}
	if verbose {
		opts.Trace = w
	}
	result := puzzle.Solve(g, opts)
	lastGrid = g
	fmt.Fprintf(w, "%v in %d rounds, score %d\n",
		result.Status, result.Rounds, result.Report.Score())
	fmt.Fprint(w, g.String())
}

func rateHandler(w io.Writer, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one puzzle string", r.command), w)
		return
	}
	resp, err := puzzle.SolveString(r.args[0], puzzle.Options{})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s in %d rounds, score %d\n", resp.Status, resp.Rounds, resp.Score)
}

func showHandler(w io.Writer, r *request) {
	if lastGrid == nil {
		fmt.Fprintf(w, "Nothing solved yet.\n")
		return
	}
	fmt.Fprint(w, lastGrid.String())
}

func verboseHandler(w io.Writer, r *request) {
	if len(r.args) > 0 {
		switch r.args[0] {
		case "on":
			verbose = true
		case "off":
			verbose = false
		default:
			usageHandler(fmt.Sprintf("argument to %s must be 'on' or 'off'", r.command), w)
			return
		}
	}
	if verbose {
		fmt.Fprintf(w, "Verbose is on\n")
	} else {
		fmt.Fprintf(w, "Verbose is off\n")
	}
}

func helpHandler(w io.Writer, r *request) {
	usageHandler("", w)
}

func usageHandler(msg string, w io.Writer) {
	if msg != "" {
		fmt.Fprintf(w, "Error: %s\n", msg)
	}
	fmt.Fprintf(w, "Usage:\n")
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-8s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w io.Writer, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Printf("Error executing %q: %v", r.inline, err)
}
