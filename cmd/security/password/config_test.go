package password

import (
	"errors"
	"os"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	// Ensure env is clean for this test.
	clearEnv := []string{
		"PWGATE_PASSWORD_MIN_LEN",
		"PWGATE_PASSWORD_MAX_LEN",
		"PWGATE_PASSWORD_REQUIRED",
		"PWGATE_PASSWORD_POOL",
	}
	for _, k := range clearEnv {
		_ = os.Unsetenv(k)
	}

	p, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}

	def := DefaultPolicy()
	if p.MinLength != def.MinLength || p.MaxLength != def.MaxLength {
		t.Fatalf("length mismatch: %+v", p)
	}
	if p.Required != def.Required || len(p.Pool) != len(def.Pool) {
		t.Fatalf("threshold mismatch: %+v", p)
	}
}

func TestFromEnv_Override(t *testing.T) {
	t.Setenv("PWGATE_PASSWORD_MIN_LEN", "10")
	t.Setenv("PWGATE_PASSWORD_MAX_LEN", "64")
	t.Setenv("PWGATE_PASSWORD_POOL", "uppercase, digit")
	t.Setenv("PWGATE_PASSWORD_REQUIRED", "2")

	p, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}

	if p.MinLength != 10 || p.MaxLength != 64 {
		t.Fatalf("length override failed: %+v", p)
	}
	if p.Required != 2 || len(p.Pool) != 2 || p.Pool[0] != Uppercase || p.Pool[1] != Digit {
		t.Fatalf("pool override failed: %+v", p)
	}
	if !p.Validate("ABCDEFGH12") {
		t.Fatalf("expected upper+digit to pass overridden policy")
	}
}

func TestFromEnv_InvalidMinMax(t *testing.T) {
	t.Setenv("PWGATE_PASSWORD_MIN_LEN", "20")
	t.Setenv("PWGATE_PASSWORD_MAX_LEN", "10")

	_, err := FromEnv()
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestFromEnv_RequiredExceedsPool(t *testing.T) {
	t.Setenv("PWGATE_PASSWORD_POOL", "uppercase")
	t.Setenv("PWGATE_PASSWORD_REQUIRED", "3")

	_, err := FromEnv()
	if !errors.Is(err, ErrInvalidThreshold) {
		t.Fatalf("expected ErrInvalidThreshold, got %v", err)
	}
}

func TestFromEnv_BadValues(t *testing.T) {
	t.Setenv("PWGATE_PASSWORD_MIN_LEN", "eight")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for non-integer")
	}

	t.Setenv("PWGATE_PASSWORD_MIN_LEN", "8")
	t.Setenv("PWGATE_PASSWORD_POOL", "uppercase,emoji")
	if _, err := FromEnv(); !errors.Is(err, ErrUnknownCriterion) {
		t.Fatalf("expected ErrUnknownCriterion, got %v", err)
	}
}

func TestApplyEnv_DoesNotAliasBasePool(t *testing.T) {
	t.Setenv("PWGATE_PASSWORD_MIN_LEN", "9")

	base := DefaultPolicy()
	p, err := ApplyEnv(base)
	if err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	p.Pool[0] = Digit
	if base.Pool[0] != Uppercase {
		t.Fatalf("base pool mutated")
	}
}
