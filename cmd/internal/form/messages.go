package form

// User-facing messages. These strings are matched verbatim by UI copy.
const (
	MsgEnterPassword  = "Enter your password"
	MsgInvalidChars   = `Enter valid special chars (.,@:?!()$\/#) with no spaces`
	MsgCriteriaNotMet = "Your password must meet the requirements below"
	MsgEnterConfirm   = "Enter your password."
	MsgMismatch       = "Passwords do not match."
)

// ReasonCode maps a validation message to a stable machine-readable code.
func ReasonCode(reason string) string {
	switch reason {
	case "":
		return "ok"
	case MsgEnterPassword, MsgEnterConfirm:
		return "empty"
	case MsgInvalidChars:
		return "invalid_chars"
	case MsgCriteriaNotMet:
		return "criteria_not_met"
	case MsgMismatch:
		return "mismatch"
	default:
		return "rejected"
	}
}
