package api

import (
	"log/slog"
	"net/http"

	"pwgate/cmd/internal/form"
	"pwgate/cmd/internal/metrics"
	"pwgate/cmd/security/password"
)

// Handler serves stateless password evaluation endpoints.
// Password values are never logged.
type Handler struct {
	log     *slog.Logger
	cfg     Config
	policy  password.Policy
	metrics *metrics.Metrics
}

// NewHandler constructs a Handler. A nil metrics disables instrumentation.
func NewHandler(log *slog.Logger, policy password.Policy, m *metrics.Metrics, cfg Config) *Handler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{log: log, cfg: cfg, policy: policy, metrics: m}
}

// Register wires password routes onto the provided mux.
func (h *Handler) Register(mux *http.ServeMux) {
	if h == nil || mux == nil {
		return
	}
	mux.HandleFunc("/v1/password/policy", h.handlePolicy)
	mux.HandleFunc("/v1/password/evaluate", h.handleEvaluate)
	mux.HandleFunc("/v1/password/validate", h.handleValidate)
	mux.HandleFunc("/v1/password/submit", h.handleSubmit)
}

// ---- handlers ----

func (h *Handler) handlePolicy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, form.PolicyPayload(h.policy))
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req evaluateRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	h.metrics.ObserveEvaluation(metrics.SourceHTTP)

	v := h.policy.Evaluate(req.Password)
	charsetValid := h.policy.CharsetValid(req.Password)

	var d password.Display
	if charsetValid {
		d.Apply(v, req.Strict)
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Verdict:      v.Map(),
		MetCount:     v.Count(h.policy.Pool),
		Required:     h.policy.Required,
		Accepted:     h.policy.Validate(req.Password),
		CharsetValid: charsetValid,
		Criteria:     form.CriteriaPayload(h.policy, d.Snapshot()),
	})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req validateRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	res := form.NewPasswordValidation(h.policy)(req.Password)
	h.metrics.ObserveValidation(form.NewPassword.String(), form.ReasonCode(res.Reason))

	writeJSON(w, http.StatusOK, form.ResultPayload(res))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req submitRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	f := form.New(h.policy)
	if err := f.Edit(form.NewPassword, req.NewPassword); err != nil {
		h.log.Error("api.submit.edit.fail", "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	if err := f.Edit(form.ConfirmPassword, req.ConfirmPassword); err != nil {
		h.log.Error("api.submit.edit.fail", "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	sub := f.Submit()

	h.metrics.ObserveValidation(form.NewPassword.String(), form.ReasonCode(sub.NewPassword.Reason))
	h.metrics.ObserveValidation(form.ConfirmPassword.String(), form.ReasonCode(sub.ConfirmPassword.Reason))
	h.metrics.ObserveSubmission(sub.Accepted)

	h.log.Info("api.password.submit",
		"accepted", sub.Accepted,
		"new_password", form.ReasonCode(sub.NewPassword.Reason),
		"confirm_password", form.ReasonCode(sub.ConfirmPassword.Reason),
	)

	writeJSON(w, http.StatusOK, form.SubmissionPayload(sub))
}
