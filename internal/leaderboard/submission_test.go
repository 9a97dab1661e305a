package leaderboard

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeSubmission(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  string
		wantScore int
		wantField string // Empty when the body is valid
	}{
		{"valid", `{"name":"Alice","score":42}`, "Alice", 42, ""},
		{"trimmed name", `{"name":"  Bob ","score":7}`, "Bob", 7, ""},
		{"integral float", `{"name":"Eve","score":42.0}`, "Eve", 42, ""},
		{"zero score", `{"name":"Zed","score":0}`, "Zed", 0, ""},
		{"string score", `{"name":"Alice","score":"abc"}`, "", 0, "score"},
		{"fractional score", `{"name":"Alice","score":4.5}`, "", 0, "score"},
		{"missing score", `{"name":"Alice"}`, "", 0, "score"},
		{"negative score", `{"name":"Alice","score":-3}`, "", 0, "score"},
		{"missing name", `{"score":"abc"}`, "", 0, "name"},
		{"blank name", `{"name":"   ","score":1}`, "", 0, "name"},
		{"number name", `{"name":12,"score":1}`, "", 0, "name"},
		{"long name", `{"name":"` + strings.Repeat("x", MaxNameLength+1) + `","score":1}`, "", 0, "name"},
		{"not json", `name=Alice&score=42`, "", 0, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := DecodeSubmission(strings.NewReader(tt.body))
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if sub.Name != tt.wantName || sub.Score != tt.wantScore {
					t.Errorf("Got %+v, want name %q score %d", sub, tt.wantName, tt.wantScore)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestNameOrAnonymous(t *testing.T) {
	tests := map[string]string{
		"":        Anonymous,
		"   ":     Anonymous,
		" Alice ": "Alice",
	}
	for in, want := range tests {
		if got := NameOrAnonymous(in); got != want {
			t.Errorf("NameOrAnonymous(%q) = %q, want %q", in, got, want)
		}
	}
}
