package form

import (
	"pwgate/cmd/security/password"

	v1 "pwgate/shared/contracts/form/v1"
)

// PolicyPayload describes p as the checklist a client renders before any input.
func PolicyPayload(p password.Policy) v1.PolicyPayload {
	pool := make([]string, 0, len(p.Pool))
	for _, c := range p.Pool {
		pool = append(pool, c.String())
	}

	criteria := make([]v1.CriterionPayload, 0, len(password.AllCriteria()))
	for _, c := range password.AllCriteria() {
		criteria = append(criteria, v1.CriterionPayload{Name: c.String(), Label: p.Label(c)})
	}

	return v1.PolicyPayload{
		MinLength: p.MinLength,
		MaxLength: p.MaxLength,
		Required:  p.Required,
		Pool:      pool,
		Summary:   p.Summary(),
		Criteria:  criteria,
	}
}

// CriteriaPayload renders criterion states with their labels and icons.
func CriteriaPayload(p password.Policy, states []password.CriterionState) []v1.CriterionPayload {
	out := make([]v1.CriterionPayload, 0, len(states))
	for _, cs := range states {
		out = append(out, v1.CriterionPayload{
			Name:  cs.Criterion.String(),
			Label: p.Label(cs.Criterion),
			State: cs.State.String(),
			Icon:  cs.State.Icon(),
		})
	}
	return out
}

// StatePayload renders a snapshot for the wire.
func StatePayload(p password.Policy, kind EventKind, s Snapshot) v1.FormStatePayload {
	return v1.FormStatePayload{
		Event:   kind.String(),
		Strict:  s.Strict,
		Focused: s.Focused.String(),
		NewPassword: v1.FieldStatePayload{
			Length: s.NewPassword.Length,
			Error:  s.NewPassword.Error,
		},
		ConfirmPassword: v1.FieldStatePayload{
			Length: s.ConfirmPassword.Length,
			Error:  s.ConfirmPassword.Error,
		},
		Criteria: CriteriaPayload(p, s.Criteria),
	}
}

// ResultPayload renders one field result for the wire.
func ResultPayload(r Result) v1.ResultPayload {
	return v1.ResultPayload{Accepted: r.Accepted, Reason: r.Reason}
}

// SubmissionPayload renders a submit outcome for the wire.
func SubmissionPayload(s Submission) v1.FormResultPayload {
	return v1.FormResultPayload{
		Accepted:        s.Accepted,
		NewPassword:     ResultPayload(s.NewPassword),
		ConfirmPassword: ResultPayload(s.ConfirmPassword),
	}
}
