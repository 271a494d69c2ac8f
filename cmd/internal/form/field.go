package form

import (
	"fmt"
	"strings"
)

// FieldID identifies a form field. The zero value means "no field".
type FieldID uint8

const (
	NoField FieldID = iota
	NewPassword
	ConfirmPassword

	fieldCount
)

func (f FieldID) String() string {
	switch f {
	case NewPassword:
		return "new_password"
	case ConfirmPassword:
		return "confirm_password"
	default:
		return ""
	}
}

// Valid reports whether f names a real field.
func (f FieldID) Valid() bool { return f > NoField && f < fieldCount }

// ParseFieldID maps a wire name to a FieldID.
func ParseFieldID(s string) (FieldID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new_password":
		return NewPassword, nil
	case "confirm_password":
		return ConfirmPassword, nil
	default:
		return NoField, fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}
