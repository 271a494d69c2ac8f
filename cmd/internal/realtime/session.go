package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pwgate/cmd/internal/form"
	"pwgate/cmd/internal/ids"
	"pwgate/cmd/internal/metrics"

	v1 "pwgate/shared/contracts/form/v1"
)

var errBackpressure = errors.New("backpressure: send queue full")

// protocolError is reported to the peer without closing the session.
type protocolError struct {
	code string
	msg  string
}

func (e *protocolError) Error() string { return e.code + ": " + e.msg }

func badRequest(code, format string, args ...any) error {
	return &protocolError{code: code, msg: fmt.Sprintf(format, args...)}
}

// session binds one websocket connection to one form.
// All methods run on the connection's reader loop goroutine.
type session struct {
	g      *Gateway
	client *Client
	form   *form.Form
	seq    *ids.Sequence

	// set by the form observer when a state envelope could not be queued.
	overflow bool
}

func newSession(g *Gateway, sessionID string) *session {
	s := &session{
		g:      g,
		client: NewClient(sessionID, g.cfg.SendQueueSize),
		form:   form.New(g.policy),
		seq:    ids.NewSequence(),
	}

	s.form.Subscribe(func(ev form.Event) {
		payload := form.StatePayload(g.policy, ev.Kind, ev.Snapshot)
		if !s.send(context.Background(), v1.TypeFormState, payload) {
			s.overflow = true
		}
	})
	return s
}

func (s *session) dispatch(ctx context.Context, env v1.Envelope) error {
	s.overflow = false

	var err error
	switch env.Type {
	case v1.TypeHello:
		err = s.onHello(ctx)
	case v1.TypeFieldEdit:
		err = s.onEdit(env)
	case v1.TypeFieldFocus:
		err = s.onFocus(env)
	case v1.TypeFieldBlur:
		err = s.onBlur(env)
	case v1.TypeFormSubmit:
		err = s.onSubmit(ctx)
	case v1.TypeFormReset:
		s.form.Reset()
	default:
		err = badRequest("unsupported", "unsupported type: %s", env.Type)
	}

	if err != nil {
		return err
	}
	if s.overflow {
		return errBackpressure
	}
	return nil
}

// ---- handlers ----

func (s *session) onHello(ctx context.Context) error {
	ack := v1.HelloAckPayload{
		SessionID: s.client.SessionID,
		Policy:    form.PolicyPayload(s.g.policy),
	}
	if !s.send(ctx, v1.TypeHelloAck, ack) {
		return errBackpressure
	}
	return nil
}

func (s *session) onEdit(env v1.Envelope) error {
	var p v1.FieldEditPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return badRequest("bad_payload", "invalid payload")
	}
	id, err := form.ParseFieldID(p.Field)
	if err != nil {
		return badRequest("unknown_field", "unknown field: %q", p.Field)
	}

	if id == form.NewPassword {
		s.g.metrics.ObserveEvaluation(metrics.SourceWS)
	}
	if err := s.form.Edit(id, p.Text); err != nil {
		return badRequest("unknown_field", "%v", err)
	}
	return nil
}

func (s *session) onFocus(env v1.Envelope) error {
	id, err := parseFocusPayload(env)
	if err != nil {
		return err
	}
	if err := s.form.Focus(id); err != nil {
		return badRequest("unknown_field", "%v", err)
	}
	return nil
}

func (s *session) onBlur(env v1.Envelope) error {
	id, err := parseFocusPayload(env)
	if err != nil {
		return err
	}
	res, err := s.form.Blur(id)
	if err != nil {
		return badRequest("unknown_field", "%v", err)
	}
	s.g.metrics.ObserveValidation(id.String(), form.ReasonCode(res.Reason))
	return nil
}

func (s *session) onSubmit(ctx context.Context) error {
	sub := s.form.Submit()

	s.g.metrics.ObserveValidation(form.NewPassword.String(), form.ReasonCode(sub.NewPassword.Reason))
	s.g.metrics.ObserveValidation(form.ConfirmPassword.String(), form.ReasonCode(sub.ConfirmPassword.Reason))
	s.g.metrics.ObserveSubmission(sub.Accepted)

	s.g.log.Info("ws.form.submit",
		"session_id", s.client.SessionID,
		"accepted", sub.Accepted,
		"new_password", form.ReasonCode(sub.NewPassword.Reason),
		"confirm_password", form.ReasonCode(sub.ConfirmPassword.Reason),
	)

	if !s.send(ctx, v1.TypeFormResult, form.SubmissionPayload(sub)) {
		return errBackpressure
	}
	return nil
}

func parseFocusPayload(env v1.Envelope) (form.FieldID, error) {
	var p v1.FieldFocusPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return form.NoField, badRequest("bad_payload", "invalid payload")
	}
	id, err := form.ParseFieldID(p.Field)
	if err != nil {
		return form.NoField, badRequest("unknown_field", "unknown field: %q", p.Field)
	}
	return id, nil
}

// ---- send helpers ----

// sendError queues an error envelope. A false return means the queue is full
// and the session must be closed like any other backpressure.
func (s *session) sendError(ctx context.Context, code, msg string) bool {
	return s.send(ctx, v1.TypeError, v1.ErrorPayload{Code: code, Message: msg})
}

// send marshals payload into a new envelope and queues it without blocking.
func (s *session) send(ctx context.Context, typ string, payload any) bool {
	env, ok := s.envelope(typ, payload)
	if !ok {
		return false
	}
	return s.enqueue(ctx, env)
}

func (s *session) envelope(typ string, payload any) (v1.Envelope, bool) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.g.log.Error("ws.marshal.fail", "session_id", s.client.SessionID, "type", typ, "err", err)
		return v1.Envelope{}, false
	}

	now := time.Now().UTC()
	id, err := s.seq.Next(now)
	if err != nil {
		s.g.log.Error("ws.envelope_id.fail", "session_id", s.client.SessionID, "err", err)
		return v1.Envelope{}, false
	}

	return v1.Envelope{V: v1.Version, Type: typ, ID: id, TS: now, Payload: raw}, true
}

func (s *session) enqueue(ctx context.Context, env v1.Envelope) bool {
	select {
	case <-ctx.Done():
		return false
	case <-s.client.Done():
		return false
	case s.client.Send <- env:
		return true
	default:
		return false
	}
}
