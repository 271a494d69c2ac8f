// Package main provides a CI-friendly WebSocket smoke test for the pwgate live form.
//
// It validates:
//   - handshake + subprotocol selection
//   - hello/ack with the active policy
//   - lenient criteria while typing, strict after the first blur
//   - invalid characters reset the checklist
//   - submit with matching valid passwords is accepted
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	v1 "pwgate/shared/contracts/form/v1"

	"github.com/coder/websocket"
)

const maxReadBytes = 1 << 20 // 1MiB

type smokeClient struct {
	conn      *websocket.Conn
	sessionID string

	inbox chan v1.Envelope
	errCh chan error
}

func main() {
	var (
		wsURL    = flag.String("url", "ws://127.0.0.1:8080/ws", "WebSocket URL")
		origin   = flag.String("origin", "http://localhost", "Origin header to send (browser-like WS handshake)")
		password = flag.String("password", "12345678Aa!", "A password the server policy accepts")
		timeout  = flag.Duration("timeout", 7*time.Second, "Per-step timeout")
		verbose  = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if err := validateWSURL(*wsURL); err != nil {
		fatalf("invalid -url: %v", err)
	}
	if err := validateOrigin(*origin); err != nil {
		fatalf("invalid -origin: %v", err)
	}

	root := context.Background()

	c := mustConnect(root, *wsURL, *origin, *timeout)
	defer closeWS(c.conn)

	if *verbose {
		fmt.Printf("connected: session=%s origin=%q\n", c.sessionID, *origin)
	}

	// Lenient while typing: an unmet criterion is not shown as failed.
	st := c.mustSendState(root, v1.TypeFieldEdit, v1.FieldEditPayload{Field: v1.FieldNewPassword, Text: "abc"}, *timeout)
	if st.Strict || criterion(st, "digit") != "unknown" {
		fatalf("expected lenient state before blur, got strict=%v digit=%q", st.Strict, criterion(st, "digit"))
	}

	// First blur with content switches to strict mode.
	st = c.mustSendState(root, v1.TypeFieldBlur, v1.FieldFocusPayload{Field: v1.FieldNewPassword}, *timeout)
	if !st.Strict || criterion(st, "digit") != "not_met" {
		fatalf("expected strict state after blur, got strict=%v digit=%q", st.Strict, criterion(st, "digit"))
	}
	if st.NewPassword.Error == "" {
		fatalf("expected new_password error after blur")
	}

	// Characters outside the whitelist reset every criterion.
	st = c.mustSendState(root, v1.TypeFieldEdit, v1.FieldEditPayload{Field: v1.FieldNewPassword, Text: "re_"}, *timeout)
	for _, cr := range st.Criteria {
		if cr.State != "unknown" {
			fatalf("expected reset checklist, %s=%q", cr.Name, cr.State)
		}
	}

	_ = c.mustSendState(root, v1.TypeFieldEdit, v1.FieldEditPayload{Field: v1.FieldNewPassword, Text: *password}, *timeout)
	_ = c.mustSendState(root, v1.TypeFieldEdit, v1.FieldEditPayload{Field: v1.FieldConfirmPassword, Text: *password}, *timeout)

	mustWriteWithTimeout(root, c.conn, envelope(v1.TypeFormSubmit, v1.FormSubmitPayload{}), *timeout)
	res := c.mustReadUntilType(root, v1.TypeFormResult, *timeout, map[string]struct{}{v1.TypeFormState: {}})

	var p v1.FormResultPayload
	if err := json.Unmarshal(res.Payload, &p); err != nil {
		fatalf("unmarshal form_result: %v", err)
	}
	if !p.Accepted {
		fatalf("submit rejected: new_password=%q confirm_password=%q", p.NewPassword.Reason, p.ConfirmPassword.Reason)
	}

	fmt.Println("OK")
}

func validateWSURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}
	if strings.TrimSpace(u.Host) == "" {
		return errors.New("missing host")
	}
	if strings.TrimSpace(u.Path) == "" {
		return errors.New("missing path")
	}
	return nil
}

func validateOrigin(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must be http/https, got: %s", u.Scheme)
	}
	if strings.TrimSpace(u.Host) == "" {
		return errors.New("origin missing host")
	}
	return nil
}

func mustConnect(parent context.Context, wsURL, origin string, stepTimeout time.Duration) *smokeClient {
	ctx, cancel := context.WithTimeout(parent, stepTimeout)
	defer cancel()

	h := http.Header{}
	if strings.TrimSpace(origin) != "" {
		h.Set("Origin", origin)
	}

	conn, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		Subprotocols: []string{v1.Subprotocol},
		HTTPHeader:   h,
	})
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		fatalf("connect: %v", err)
	}
	if got := conn.Subprotocol(); got != v1.Subprotocol {
		fatalf("subprotocol mismatch: got=%q want=%q", got, v1.Subprotocol)
	}

	conn.SetReadLimit(maxReadBytes)

	c := &smokeClient{
		conn:  conn,
		inbox: make(chan v1.Envelope, 512),
		errCh: make(chan error, 1),
	}
	c.startReadLoop()

	mustWriteWithTimeout(parent, conn, envelope(v1.TypeHello, v1.HelloPayload{}), stepTimeout)
	ack := c.mustReadUntilType(parent, v1.TypeHelloAck, stepTimeout, nil)

	var p v1.HelloAckPayload
	if err := json.Unmarshal(ack.Payload, &p); err != nil {
		fatalf("unmarshal hello_ack payload: %v", err)
	}
	if strings.TrimSpace(p.SessionID) == "" {
		fatalf("hello_ack missing session_id")
	}
	if len(p.Policy.Criteria) == 0 {
		fatalf("hello_ack missing policy criteria")
	}
	c.sessionID = p.SessionID

	return c
}

func (c *smokeClient) startReadLoop() {
	go func() {
		defer close(c.inbox)

		for {
			_, data, err := c.conn.Read(context.Background())
			if err != nil {
				c.fail(err)
				return
			}

			var env v1.Envelope
			if err := json.Unmarshal(data, &env); err != nil {
				c.fail(fmt.Errorf("bad json: %w", err))
				return
			}
			if err := env.Validate(); err != nil {
				c.fail(fmt.Errorf("bad envelope: %w", err))
				return
			}

			select {
			case c.inbox <- env:
			default:
				c.fail(errors.New("inbox overflow: consumer too slow"))
				return
			}
		}
	}()
}

func (c *smokeClient) fail(err error) {
	select {
	case c.errCh <- err:
	default:
	}
}

func (c *smokeClient) mustSendState(parent context.Context, typ string, payload any, stepTimeout time.Duration) v1.FormStatePayload {
	mustWriteWithTimeout(parent, c.conn, envelope(typ, payload), stepTimeout)
	env := c.mustReadUntilType(parent, v1.TypeFormState, stepTimeout, nil)

	var st v1.FormStatePayload
	if err := json.Unmarshal(env.Payload, &st); err != nil {
		fatalf("unmarshal form_state: %v", err)
	}
	return st
}

func (c *smokeClient) mustReadUntilType(parent context.Context, wantType string, stepTimeout time.Duration, skipTypes map[string]struct{}) v1.Envelope {
	ctx, cancel := context.WithTimeout(parent, stepTimeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			fatalf("timeout waiting for %q: %v", wantType, ctx.Err())
		case err := <-c.errCh:
			fatalf("connection error while waiting for %q: %v", wantType, err)
		case env, ok := <-c.inbox:
			if !ok {
				fatalf("connection closed while waiting for %q", wantType)
			}
			if env.Type == wantType {
				return env
			}
			if env.Type == v1.TypeError {
				var ep v1.ErrorPayload
				_ = json.Unmarshal(env.Payload, &ep)
				fatalf("server error: code=%q msg=%q", ep.Code, ep.Message)
			}
			if _, ok := skipTypes[env.Type]; ok {
				continue
			}
			fatalf("unexpected envelope type: got=%q want=%q", env.Type, wantType)
		}
	}
}

func criterion(st v1.FormStatePayload, name string) string {
	for _, c := range st.Criteria {
		if c.Name == name {
			return c.State
		}
	}
	return ""
}

func envelope(typ string, payload any) v1.Envelope {
	return v1.Envelope{
		V:       v1.Version,
		Type:    typ,
		TS:      time.Now().UTC(),
		Payload: mustJSON(payload),
	}
}

func mustWriteWithTimeout(parent context.Context, conn *websocket.Conn, env v1.Envelope, stepTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(parent, stepTimeout)
	defer cancel()

	b, err := json.Marshal(env)
	if err != nil {
		fatalf("marshal envelope: %v", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
		fatalf("write failed: %v", err)
	}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		fatalf("marshal payload: %v", err)
	}
	return b
}

func closeWS(conn *websocket.Conn) {
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}
