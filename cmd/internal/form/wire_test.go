package form

import (
	"testing"

	"pwgate/cmd/security/password"
)

func TestPolicyPayload(t *testing.T) {
	t.Parallel()

	p := PolicyPayload(password.DefaultPolicy())
	if p.Required != 3 || len(p.Pool) != 4 || len(p.Criteria) != 5 {
		t.Fatalf("unexpected policy payload: %+v", p)
	}
	if p.Criteria[0].Label != "8-32 characters (no spaces)" {
		t.Fatalf("label=%q", p.Criteria[0].Label)
	}
}

func TestStatePayload(t *testing.T) {
	t.Parallel()

	f := New(password.DefaultPolicy())
	_ = f.Edit(NewPassword, "abc")
	_, _ = f.Blur(NewPassword)

	s := StatePayload(f.Policy(), EventBlurred, f.Snapshot())
	if s.Event != "blurred" || !s.Strict || s.Focused != "" {
		t.Fatalf("unexpected state payload: %+v", s)
	}
	if s.NewPassword.Error != MsgCriteriaNotMet || s.NewPassword.Length != 3 {
		t.Fatalf("field state: %+v", s.NewPassword)
	}
	for _, c := range s.Criteria {
		want := "xmark.circle"
		if c.Name == "lowercase" {
			want = "checkmark.circle"
		}
		if c.Icon != want {
			t.Fatalf("%s icon=%q want=%q", c.Name, c.Icon, want)
		}
	}
}

func TestReasonCode(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                "ok",
		MsgEnterPassword:  "empty",
		MsgEnterConfirm:   "empty",
		MsgInvalidChars:   "invalid_chars",
		MsgCriteriaNotMet: "criteria_not_met",
		MsgMismatch:       "mismatch",
		"custom":          "rejected",
	}
	for in, want := range cases {
		if got := ReasonCode(in); got != want {
			t.Fatalf("ReasonCode(%q)=%q want=%q", in, got, want)
		}
	}
}
