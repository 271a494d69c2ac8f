package api

import v1 "pwgate/shared/contracts/form/v1"

type evaluateRequest struct {
	Password string `json:"password"`
	Strict   bool   `json:"strict"`
}

type evaluateResponse struct {
	Verdict      map[string]bool       `json:"verdict"`
	MetCount     int                   `json:"met_count"`
	Required     int                   `json:"required"`
	Accepted     bool                  `json:"accepted"`
	CharsetValid bool                  `json:"charset_valid"`
	Criteria     []v1.CriterionPayload `json:"criteria"`
}

type validateRequest struct {
	Password string `json:"password"`
}

type submitRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
