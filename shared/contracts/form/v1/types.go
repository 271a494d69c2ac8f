package v1

// ---- Payloads ----

// HelloPayload is sent by the client to initiate a session.
type HelloPayload struct{}

// HelloAckPayload carries the session id and the checklist the client should render.
type HelloAckPayload struct {
	SessionID string        `json:"session_id"`
	Policy    PolicyPayload `json:"policy"`
}

// PolicyPayload describes the active password policy.
type PolicyPayload struct {
	MinLength int                `json:"min_length"`
	MaxLength int                `json:"max_length"`
	Required  int                `json:"required"`
	Pool      []string           `json:"pool"`
	Summary   string             `json:"summary"`
	Criteria  []CriterionPayload `json:"criteria"`
}

// CriterionPayload is one checklist row.
type CriterionPayload struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	State string `json:"state,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// FieldEditPayload carries the full text of a field after an edit.
type FieldEditPayload struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// FieldFocusPayload names the field gaining or losing focus.
type FieldFocusPayload struct {
	Field string `json:"field"`
}

// FormSubmitPayload requests a submit. It carries no data.
type FormSubmitPayload struct{}

// FieldStatePayload is the render model of one field. Text is never echoed.
type FieldStatePayload struct {
	Length int    `json:"length"`
	Error  string `json:"error"`
}

// FormStatePayload is the render model of the whole form.
type FormStatePayload struct {
	Event           string             `json:"event"`
	Strict          bool               `json:"strict"`
	Focused         string             `json:"focused,omitempty"`
	NewPassword     FieldStatePayload  `json:"new_password"`
	ConfirmPassword FieldStatePayload  `json:"confirm_password"`
	Criteria        []CriterionPayload `json:"criteria"`
}

// ResultPayload is the validation outcome of one field.
type ResultPayload struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

// FormResultPayload answers a submit.
type FormResultPayload struct {
	Accepted        bool          `json:"accepted"`
	NewPassword     ResultPayload `json:"new_password"`
	ConfirmPassword ResultPayload `json:"confirm_password"`
}

// ErrorPayload is a generic error response payload.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
