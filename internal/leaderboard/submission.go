package leaderboard

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// MaxNameLength bounds the stored player name, in runes.
const MaxNameLength = 32

// Submission is a validated score submission.
type Submission struct {
	Name  string
	Score int
}

// DecodeSubmission parses a `{"name": string, "score": number}` body.
// name must be a non-empty string after trimming and score a non-negative
// number with an integral value. Anything else is a *ValidationError.
func DecodeSubmission(r io.Reader) (Submission, error) {
	var raw struct {
		Name  json.RawMessage `json:"name"`
		Score json.RawMessage `json:"score"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Submission{}, &ValidationError{Field: "body", Message: "expected a JSON object"}
	}

	var name string
	if len(raw.Name) == 0 || json.Unmarshal(raw.Name, &name) != nil {
		return Submission{}, &ValidationError{Field: "name", Message: "must be a string"}
	}

	score, err := decodeScore(raw.Score)
	if err != nil {
		return Submission{}, err
	}

	sub := Submission{Name: name, Score: score}
	if err := sub.Validate(); err != nil {
		return Submission{}, err
	}
	sub.Name = strings.TrimSpace(sub.Name)
	return sub, nil
}

func decodeScore(raw json.RawMessage) (int, error) {
	invalid := &ValidationError{Field: "score", Message: "must be an integer"}
	if len(raw) == 0 {
		return 0, invalid
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, invalid
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, invalid
	}
	f, err := num.Float64()
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, invalid
	}
	return int(f), nil
}

// Validate checks the submission invariants.
func (s Submission) Validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: "is too long"}
	}
	if s.Score < 0 {
		return &ValidationError{Field: "score", Message: "must not be negative"}
	}
	return nil
}

// Anonymous is the name used when a player leaves the name field blank.
const Anonymous = "anonymous"

// NameOrAnonymous trims name and substitutes Anonymous when it is blank.
func NameOrAnonymous(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return Anonymous
	}
	return name
}
