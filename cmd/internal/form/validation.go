package form

import "pwgate/cmd/security/password"

// Result is the outcome of validating one field.
// Reason is empty when Accepted is true.
type Result struct {
	Accepted bool
	Reason   string
}

func accept() Result { return Result{Accepted: true} }

func reject(reason string) Result { return Result{Reason: reason} }

// ValidationFunc is the per-field validation strategy injected into a Form.
type ValidationFunc func(text string) Result

// NewPasswordValidation checks, in order: non-empty, charset, criteria threshold.
// The first failing check decides the reason.
func NewPasswordValidation(p password.Policy) ValidationFunc {
	return func(text string) Result {
		switch {
		case text == "":
			return reject(MsgEnterPassword)
		case !p.CharsetValid(text):
			return reject(MsgInvalidChars)
		case !p.Validate(text):
			return reject(MsgCriteriaNotMet)
		default:
			return accept()
		}
	}
}

// ConfirmPasswordValidation checks the text is non-empty and equals source().
// source is read at validation time, not at construction.
func ConfirmPasswordValidation(source func() string) ValidationFunc {
	return func(text string) Result {
		switch {
		case text == "":
			return reject(MsgEnterConfirm)
		case source == nil || text != source():
			return reject(MsgMismatch)
		default:
			return accept()
		}
	}
}
