package puzzle

import (
	"encoding/json"
	"strings"
	"testing"
)

type errorMessageTestcase struct {
	err      Error
	expected string
}

func TestErrorMessages(t *testing.T) {
	tcs := []errorMessageTestcase{
		{
			lengthError(50),
			"Invalid argument: Puzzle (50): Must be at least 81",
		},
		{
			countError(3),
			"Invalid argument: Puzzle (3): Need exactly 81 cell values",
		},
		{
			digitError(3, 'x'),
			"Invalid argument: Index (3): Character x is not a decimal digit",
		},
		{
			rangeError(ValueAttribute, 12, 1, 9),
			"Invalid argument: Value (12): Must be at most 9",
		},
		{
			rangeError(ValueAttribute, -1, 1, 9),
			"Invalid argument: Value (-1): Must be at least 1",
		},
		{
			Error{
				Scope:     RequestScope,
				Structure: AttributeStructure,
				Attribute: DecodeAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{"unexpected EOF"},
			},
			"Invalid request: JSON Decode error: unexpected EOF",
		},
		{
			Error{Message: "canned message"},
			"canned message",
		},
	}
	for i, tc := range tcs {
		if got := tc.err.Error(); got != tc.expected {
			t.Errorf("case %d: got %q, expected %q", i+1, got, tc.expected)
		}
	}
}

func TestErrorJSON(t *testing.T) {
	e := countError(3)
	bytes, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Error won't marshal: %v", err)
	}
	var back Error
	if err := json.Unmarshal(bytes, &back); err != nil {
		t.Fatalf("Error won't unmarshal: %v", err)
	}
	if back.Scope != ArgumentScope || back.Condition != WrongCountCondition {
		t.Errorf("round trip lost codes: %+v", back)
	}
	if !strings.Contains(string(bytes), `"scope"`) {
		t.Errorf("marshaled error lacks its scope: %s", bytes)
	}
}
