// Package v1 defines the live password form protocol v1 contract.
//
// This package is intentionally stable and dependency-light.
// It is shared between server and clients to keep the wire protocol authoritative.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Version is the protocol version identifier embedded into every envelope.
const Version = "v1"

// Subprotocol is the websocket subprotocol negotiated for this contract.
const Subprotocol = "pwgate.form.v1"

// Type constants (wire-stable).
const (
	// TypeHello starts a session handshake (client -> server).
	TypeHello = "hello"
	// TypeHelloAck acknowledges the handshake and describes the policy (server -> client).
	TypeHelloAck = "hello_ack"

	// TypeFieldEdit reports the full current text of a field (client -> server).
	TypeFieldEdit = "field_edit"
	// TypeFieldFocus reports that a field gained focus (client -> server).
	TypeFieldFocus = "field_focus"
	// TypeFieldBlur reports that a field lost focus (client -> server).
	TypeFieldBlur = "field_blur"
	// TypeFormSubmit requests final validation of both fields (client -> server).
	TypeFormSubmit = "form_submit"
	// TypeFormReset clears the form (client -> server).
	TypeFormReset = "form_reset"

	// TypeFormState carries the render model after every applied event (server -> client).
	TypeFormState = "form_state"
	// TypeFormResult answers a submit (server -> client).
	TypeFormResult = "form_result"

	// TypeError is a generic error envelope (server -> client).
	TypeError = "error"
)

// Field names (wire-stable).
const (
	FieldNewPassword     = "new_password"
	FieldConfirmPassword = "confirm_password"
)

// Envelope is the canonical wire wrapper.
type Envelope struct {
	V       string          `json:"v"`
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	TS      time.Time       `json:"ts,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate performs strict structural validation for an Envelope.
func (e Envelope) Validate() error {
	if strings.TrimSpace(e.V) == "" {
		return errors.New("missing field: v")
	}
	if e.V != Version {
		return fmt.Errorf("unsupported protocol version: %q", e.V)
	}
	if strings.TrimSpace(e.Type) == "" {
		return errors.New("missing field: type")
	}

	switch e.Type {
	case TypeHello,
		TypeHelloAck,
		TypeFieldEdit,
		TypeFieldFocus,
		TypeFieldBlur,
		TypeFormSubmit,
		TypeFormReset,
		TypeFormState,
		TypeFormResult,
		TypeError:
		return nil
	default:
		return fmt.Errorf("unknown type: %q", e.Type)
	}
}
