package puzzle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSolveString(t *testing.T) {
	resp, err := SolveString(easyPuzzle, Options{})
	if err != nil {
		t.Fatalf("SolveString failed: %v", err)
	}
	if resp.Status != "solved" || resp.Values != easySolution {
		t.Errorf("got status %q values %q", resp.Status, resp.Values)
	}
	if resp.Input != easyPuzzle {
		t.Errorf("input echoed as %q", resp.Input)
	}
	if resp.Solved != CellCount || resp.Remaining != 0 {
		t.Errorf("counts: %d solved, %d remaining", resp.Solved, resp.Remaining)
	}
	if resp.Score <= 0 || resp.Rounds <= 0 {
		t.Errorf("score %d, rounds %d", resp.Score, resp.Rounds)
	}
	// trailing annotations are dropped from the echoed input
	resp, err = SolveString(easyPuzzle+"\n", Options{})
	if err != nil {
		t.Fatalf("SolveString failed on trailing newline: %v", err)
	}
	if resp.Input != easyPuzzle {
		t.Errorf("annotated input echoed as %q", resp.Input)
	}
}

func TestSolveStringErrors(t *testing.T) {
	if _, err := SolveString("12345", Options{}); err == nil {
		t.Errorf("short string accepted")
	} else if _, ok := err.(Error); !ok {
		t.Errorf("error has type %T", err)
	}
	if _, err := SolveString(strings.Repeat("x", CellCount), Options{}); err == nil {
		t.Errorf("non-digit string accepted")
	}
}

func TestSolveHandler(t *testing.T) {
	body, _ := json.Marshal(SolveRequest{Values: easyPuzzle})
	r := httptest.NewRequest("POST", "/api/solve", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	resp, err := SolveHandler(w, r)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status %d, expected 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type %q", ct)
	}
	if resp.Values != easySolution {
		t.Errorf("returned values %q", resp.Values)
	}
	var sent SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &sent); err != nil {
		t.Fatalf("response body won't decode: %v", err)
	}
	if sent.Values != resp.Values || sent.Status != resp.Status {
		t.Errorf("body %+v differs from returned %+v", sent, resp)
	}
	if sent.Removed["simple-elimination"] == 0 {
		t.Errorf("no technique counts in the response body")
	}
}

func TestRateHandler(t *testing.T) {
	body, _ := json.Marshal(SolveRequest{Values: easyPuzzle})
	r := httptest.NewRequest("POST", "/api/rate", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	resp, err := RateHandler(w, r)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status %d, expected 200", w.Code)
	}
	if resp.Status != "solved" || resp.Score <= 0 {
		t.Errorf("rating came back %+v", resp)
	}
	// the rating body must not leak the solution
	if strings.Contains(w.Body.String(), easySolution) {
		t.Errorf("rating response carries the solved grid")
	}
}

type badRequestTestcase struct {
	body string
}

func TestHandlerBadRequests(t *testing.T) {
	tcs := []badRequestTestcase{
		{"not json at all"},
		{`{"values": "12345"}`},
		{`{"values": ""}`},
	}
	for i, tc := range tcs {
		r := httptest.NewRequest("POST", "/api/solve", strings.NewReader(tc.body))
		w := httptest.NewRecorder()
		resp, err := SolveHandler(w, r)
		if err == nil || resp != nil {
			t.Errorf("case %d: bad request accepted", i+1)
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status %d, expected 400", i+1, w.Code)
		}
		var sent Error
		if e := json.Unmarshal(w.Body.Bytes(), &sent); e != nil {
			t.Errorf("case %d: error body won't decode: %v", i+1, e)
		} else if sent.Message == "" {
			t.Errorf("case %d: error body has no message", i+1)
		}
	}
}
