package app

import (
	"fmt"

	"pwgate/cmd/security/password"
)

// loadPolicy builds the active policy: defaults, then the optional YAML file,
// then PWGATE_PASSWORD_* overrides.
func loadPolicy(cfg Config, log Logger) (password.Policy, error) {
	base := password.DefaultPolicy()

	if cfg.PolicyFile != "" {
		p, err := password.LoadPolicyFile(cfg.PolicyFile)
		if err != nil {
			return password.Policy{}, err
		}
		base = p
		log.Info("policy.file.loaded", "path", cfg.PolicyFile)
	}

	p, err := password.ApplyEnv(base)
	if err != nil {
		return password.Policy{}, fmt.Errorf("policy env: %w", err)
	}
	return p, nil
}
