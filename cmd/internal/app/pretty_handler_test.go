package app

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestStripANSI(t *testing.T) {
	t.Parallel()

	in := ansiBlue + "INFO" + ansiReset + " plain " + ansiRed + "ERR" + ansiReset
	if got, want := stripANSI(in), "INFO plain ERR"; got != want {
		t.Fatalf("stripANSI()=%q want=%q", got, want)
	}
}

func TestPrettyHandler_RequestLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, false))

	log.Info("http.request",
		"method", "post",
		"path", "/v1/password/evaluate",
		"status", 200,
		"status_class", "2xx",
		"result", "success",
		"bytes", int64(312),
		"duration_ms", int64(3),
		"remote", "127.0.0.1:5000",
		"user_agent", "curl 8.0",
	)
	log.Debug("hidden")

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", out)
	}
	want := " INFO  http.request POST /v1/password/evaluate 200 2xx success 312B 3ms remote=127.0.0.1:5000 user_agent=\"curl 8.0\"\n"
	if !strings.HasSuffix(out, want) {
		t.Fatalf("line=%q\nwant suffix %q", out, want)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected color codes in %q", out)
	}
}

func TestPrettyHandler_RequestLineErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		class  string
		result string
		bytes  int64
		want   string
	}{
		{"client error", 413, "4xx", "client_error", 0, "POST /v1/password/submit 413 4xx client_error 0B"},
		{"server error", 500, "5xx", "server_error", 2048, "POST /v1/password/submit 500 5xx server_error 2.0KiB"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			slog.New(newPrettyHandler(&buf, nil, true)).Warn("http.request",
				"method", "POST",
				"path", "/v1/password/submit",
				"status", tc.status,
				"status_class", tc.class,
				"result", tc.result,
				"bytes", tc.bytes,
			)

			out := stripANSI(buf.String())
			if !strings.Contains(out, "WARN  http.request "+tc.want+"\n") {
				t.Fatalf("line=%q want %q", out, tc.want)
			}
			if strings.Contains(out, "status_class=") || strings.Contains(out, "bytes=") {
				t.Fatalf("request attrs repeated as pairs: %q", out)
			}
		})
	}
}

func TestPrettyHandler_SessionEvents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, nil, false))

	log.Info("ws.form.submit", "session_id", "01J9ZQ", "accepted", false, "new_password", "weak")
	log.With("session_id", "01J9ZR").Warn("ws.ping.fail", "failures", 2)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines=%q", lines)
	}
	if !strings.HasSuffix(lines[0], " INFO  ws.form.submit [01J9ZQ] accepted=false new_password=weak") {
		t.Fatalf("line 0=%q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " WARN  ws.ping.fail [01J9ZR] failures=2") {
		t.Fatalf("line 1=%q", lines[1])
	}
	if strings.Contains(buf.String(), "session_id=") {
		t.Fatalf("session_id printed as a pair: %q", buf.String())
	}
}

func TestPrettyHandler_GroupsAndAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, nil, true)).With("component", "gateway").WithGroup("ws")

	log.Warn("ws.queue", "depth", 31, slog.Group("limit", "events", 20), "wait", 1500*time.Millisecond)

	out := stripANSI(buf.String())
	for _, want := range []string{
		"WARN  ws.queue",
		"component=gateway",
		"ws.depth=31",
		"ws.limit.events=20",
		"ws.wait=1.5s",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "ws.component") {
		t.Fatalf("attr added before the group was prefixed: %q", out)
	}
}
