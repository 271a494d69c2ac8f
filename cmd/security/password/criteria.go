package password

import (
	"fmt"
	"strings"
)

// Criterion is one independent rule a candidate password is checked against.
type Criterion uint8

const (
	LengthAndNoSpace Criterion = iota
	Uppercase
	Lowercase
	Digit
	SpecialCharacter

	criterionCount
)

// Wire-stable names.
var criterionNames = [criterionCount]string{
	LengthAndNoSpace: "length_and_no_space",
	Uppercase:        "uppercase",
	Lowercase:        "lowercase",
	Digit:            "digit",
	SpecialCharacter: "special_character",
}

// AllCriteria returns every criterion in display order.
func AllCriteria() []Criterion {
	out := make([]Criterion, 0, criterionCount)
	for c := Criterion(0); c < criterionCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the five known criteria.
func (c Criterion) Valid() bool { return c < criterionCount }

func (c Criterion) String() string {
	if !c.Valid() {
		return fmt.Sprintf("criterion(%d)", uint8(c))
	}
	return criterionNames[c]
}

// ParseCriterion maps a wire name back to its Criterion.
func ParseCriterion(s string) (Criterion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Criterion(0); c < criterionCount; c++ {
		if criterionNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// Verdict is the met/not-met result of every criterion for one input string.
// It is produced in a single Evaluate call and never mutated afterwards.
type Verdict struct {
	met [criterionCount]bool
}

// Met reports whether criterion c held for the evaluated input.
func (v Verdict) Met(c Criterion) bool {
	if !c.Valid() {
		return false
	}
	return v.met[c]
}

// Count returns how many criteria of pool were met.
func (v Verdict) Count(pool []Criterion) int {
	n := 0
	for _, c := range pool {
		if v.Met(c) {
			n++
		}
	}
	return n
}

// Map returns the verdict keyed by criterion wire name.
func (v Verdict) Map() map[string]bool {
	out := make(map[string]bool, criterionCount)
	for c := Criterion(0); c < criterionCount; c++ {
		out[c.String()] = v.met[c]
	}
	return out
}
