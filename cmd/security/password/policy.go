package password

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMinLength = 8
	DefaultMaxLength = 32
	DefaultRequired  = 3

	// DefaultSpecialChars counts toward SpecialCharacter.
	DefaultSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?/~`'\"\\"

	// DefaultAllowedSymbols is the only punctuation CharsetValid lets through.
	// It is narrower than DefaultSpecialChars: "_", "%" or "&" count as special
	// characters but are rejected by the charset gate.
	DefaultAllowedSymbols = ".,@:?!()$\\/#"
)

// Policy controls criteria evaluation and the accept/reject threshold.
type Policy struct {
	MinLength int
	MaxLength int

	// Validate requires at least Required of Pool on top of LengthAndNoSpace.
	Required int
	Pool     []Criterion

	SpecialChars   string
	AllowedSymbols string
}

// DefaultPolicy returns the fixed rule set: 8..32 characters without spaces,
// and at least 3 of uppercase, lowercase, digit, special character.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:      DefaultMinLength,
		MaxLength:      DefaultMaxLength,
		Required:       DefaultRequired,
		Pool:           []Criterion{Uppercase, Lowercase, Digit, SpecialCharacter},
		SpecialChars:   DefaultSpecialChars,
		AllowedSymbols: DefaultAllowedSymbols,
	}
}

// Check reports whether the policy is internally consistent.
func (p Policy) Check() error {
	if p.MinLength < 0 || p.MaxLength <= 0 || p.MinLength > p.MaxLength {
		return fmt.Errorf("%w: min_len(%d) max_len(%d)", ErrInvalidLength, p.MinLength, p.MaxLength)
	}

	seen := make(map[Criterion]struct{}, len(p.Pool))
	for _, c := range p.Pool {
		if !c.Valid() || c == LengthAndNoSpace {
			return fmt.Errorf("%w: %s not allowed in pool", ErrInvalidPool, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidPool, c)
		}
		seen[c] = struct{}{}
	}

	if p.Required < 1 || p.Required > len(p.Pool) {
		return fmt.Errorf("%w: required(%d) pool(%d)", ErrInvalidThreshold, p.Required, len(p.Pool))
	}

	if p.SpecialChars == "" {
		return ErrInvalidCharset
	}
	return nil
}

// LengthMet reports whether the character count (runes, not bytes) is within bounds.
func (p Policy) LengthMet(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= p.MinLength && n <= p.MaxLength
}

// LengthAndNoSpaceMet combines the length and no-space rules.
func (p Policy) LengthAndNoSpaceMet(s string) bool {
	return p.LengthMet(s) && NoSpaceMet(s)
}

// SpecialCharacterMet reports whether s has at least one rune from SpecialChars.
func (p Policy) SpecialCharacterMet(s string) bool {
	return strings.ContainsAny(s, p.SpecialChars)
}

// CharsetValid reports whether every rune is an ASCII letter, an ASCII digit or
// one of AllowedSymbols. Spaces are never allowed.
func (p Policy) CharsetValid(s string) bool {
	for _, r := range s {
		if isASCIIUpper(r) || isASCIILower(r) || isASCIIDigit(r) {
			continue
		}
		if r == ' ' || !strings.ContainsRune(p.AllowedSymbols, r) {
			return false
		}
	}
	return true
}

// Evaluate classifies s against all five criteria at once.
func (p Policy) Evaluate(s string) Verdict {
	var v Verdict
	v.met[LengthAndNoSpace] = p.LengthAndNoSpaceMet(s)
	v.met[Uppercase] = UppercaseMet(s)
	v.met[Lowercase] = LowercaseMet(s)
	v.met[Digit] = DigitMet(s)
	v.met[SpecialCharacter] = p.SpecialCharacterMet(s)
	return v
}

// Validate accepts s when LengthAndNoSpace holds and at least Required criteria of Pool hold.
func (p Policy) Validate(s string) bool {
	v := p.Evaluate(s)
	return v.Met(LengthAndNoSpace) && v.Count(p.Pool) >= p.Required
}

// Label is the checklist copy shown next to criterion c.
func (p Policy) Label(c Criterion) string {
	switch c {
	case LengthAndNoSpace:
		return fmt.Sprintf("%d-%d characters (no spaces)", p.MinLength, p.MaxLength)
	case Uppercase:
		return "uppercase letter (A-Z)"
	case Lowercase:
		return "lowercase (a-z)"
	case Digit:
		return "digit (0-9)"
	case SpecialCharacter:
		return "special character (e.g !@#$^)"
	default:
		return c.String()
	}
}

// Summary is the checklist heading describing the threshold.
func (p Policy) Summary() string {
	return fmt.Sprintf("Use at least %d of these %d criteria when setting your password:", p.Required, len(p.Pool))
}

// ---- default policy shortcuts ----

var std = DefaultPolicy()

// LengthMet reports whether s has 8..32 characters.
func LengthMet(s string) bool { return std.LengthMet(s) }

// NoSpaceMet reports whether s contains no U+0020. Tabs and newlines are not checked.
func NoSpaceMet(s string) bool { return !strings.ContainsRune(s, ' ') }

// LengthAndNoSpaceMet reports LengthMet(s) && NoSpaceMet(s).
func LengthAndNoSpaceMet(s string) bool { return std.LengthAndNoSpaceMet(s) }

// UppercaseMet reports whether s has an ASCII uppercase letter.
func UppercaseMet(s string) bool { return containsFunc(s, isASCIIUpper) }

// LowercaseMet reports whether s has an ASCII lowercase letter.
func LowercaseMet(s string) bool { return containsFunc(s, isASCIILower) }

// DigitMet reports whether s has an ASCII digit.
func DigitMet(s string) bool { return containsFunc(s, isASCIIDigit) }

// SpecialCharacterMet reports whether s has a character from DefaultSpecialChars.
func SpecialCharacterMet(s string) bool { return std.SpecialCharacterMet(s) }

// CharsetValid applies the default charset whitelist.
func CharsetValid(s string) bool { return std.CharsetValid(s) }

// Evaluate classifies s under the default policy.
func Evaluate(s string) Verdict { return std.Evaluate(s) }

// Validate applies the default 3-of-4 policy.
func Validate(s string) bool { return std.Validate(s) }

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
