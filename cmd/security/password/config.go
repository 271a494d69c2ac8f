package password

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FromEnv loads the default policy with environment overrides applied.
func FromEnv() (Policy, error) {
	return ApplyEnv(DefaultPolicy())
}

// ApplyEnv overrides fields of base from environment variables.
//
// Env surface:
// - PWGATE_PASSWORD_MIN_LEN
// - PWGATE_PASSWORD_MAX_LEN
// - PWGATE_PASSWORD_REQUIRED
// - PWGATE_PASSWORD_POOL (CSV of criterion names, e.g. "uppercase,digit")
func ApplyEnv(base Policy) (Policy, error) {
	p := base
	p.Pool = append([]Criterion(nil), base.Pool...)

	if v, ok := os.LookupEnv("PWGATE_PASSWORD_MIN_LEN"); ok {
		n, err := atoiPositiveInt(v, 1, 1024)
		if err != nil {
			return Policy{}, fmt.Errorf("PWGATE_PASSWORD_MIN_LEN: %w", err)
		}
		p.MinLength = n
	}

	if v, ok := os.LookupEnv("PWGATE_PASSWORD_MAX_LEN"); ok {
		n, err := atoiPositiveInt(v, 1, 4096)
		if err != nil {
			return Policy{}, fmt.Errorf("PWGATE_PASSWORD_MAX_LEN: %w", err)
		}
		p.MaxLength = n
	}

	if v, ok := os.LookupEnv("PWGATE_PASSWORD_POOL"); ok {
		pool, err := parsePool(strings.Split(v, ","))
		if err != nil {
			return Policy{}, fmt.Errorf("PWGATE_PASSWORD_POOL: %w", err)
		}
		p.Pool = pool
	}

	if v, ok := os.LookupEnv("PWGATE_PASSWORD_REQUIRED"); ok {
		n, err := atoiPositiveInt(v, 1, int(criterionCount))
		if err != nil {
			return Policy{}, fmt.Errorf("PWGATE_PASSWORD_REQUIRED: %w", err)
		}
		p.Required = n
	}

	// Final sanity.
	if err := p.Check(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func parsePool(names []string) ([]Criterion, error) {
	out := make([]Criterion, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseCriterion(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func atoiPositiveInt(s string, minVal, maxVal int) (int, error) {
	s = strings.TrimSpace(s)
	i64, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an integer")
	}

	i := int(i64)
	if i < minVal || i > maxVal {
		return 0, fmt.Errorf("out of range [%d..%d]", minVal, maxVal)
	}
	return i, nil
}
