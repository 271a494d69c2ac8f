package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// prettyHandler writes one human-readable line per record for local runs.
//
// Two record shapes get their own layout:
//
//	12:00:00.000 INFO  http.request POST /v1/password/evaluate 200 2xx success 312B 3ms remote=...
//	12:00:00.000 WARN  ws.ping.fail [01J9...] failures=2
//
// Everything else is printed as key=value pairs after the message.
type prettyHandler struct {
	w         io.Writer
	level     slog.Leveler
	addSource bool
	color     bool

	prefix string
	fields []prettyField

	mu *sync.Mutex
}

type prettyField struct {
	key string
	val slog.Value
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions, color bool) slog.Handler {
	h := &prettyHandler{w: w, level: slog.LevelInfo, color: color, mu: &sync.Mutex{}}
	if opts != nil {
		if opts.Level != nil {
			h.level = opts.Level
		}
		h.addSource = opts.AddSource
	}
	return h
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		c.fields = flattenAttr(c.fields, h.prefix, a)
	}
	return c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix = h.prefix + name + "."
	return c
}

func (h *prettyHandler) clone() *prettyHandler {
	c := *h
	c.fields = append([]prettyField(nil), h.fields...)
	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := append([]prettyField(nil), h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		fields = flattenAttr(fields, h.prefix, a)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(paint(ts.Format("15:04:05.000"), ansiDim, h.color))
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level, h.color))
	b.WriteByte(' ')
	b.WriteString(paint(r.Message, ansiBright, h.color))

	if id, ok := takeField(&fields, "session_id"); ok {
		b.WriteString(" ")
		b.WriteString(paint("["+id.String()+"]", ansiMagenta, h.color))
	}
	if r.Message == "http.request" {
		h.writeRequest(&b, &fields)
	}

	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(paint(f.key+"=", ansiDim, h.color))
		b.WriteString(quoteIfNeeded(valueToString(f.val)))
	}

	if h.addSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			b.WriteByte(' ')
			b.WriteString(paint(fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line), ansiDim, h.color))
		}
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// writeRequest prints the request attrs from WithRequestLogging as bare
// columns and removes them from fields.
func (h *prettyHandler) writeRequest(b *strings.Builder, fields *[]prettyField) {
	col := func(s string) {
		b.WriteByte(' ')
		b.WriteString(s)
	}

	if v, ok := takeField(fields, "method"); ok {
		col(colorizeHTTPMethod(strings.ToUpper(v.String()), h.color))
	}
	if v, ok := takeField(fields, "path"); ok {
		col(paint(v.String(), ansiCyan, h.color))
	}
	if v, ok := takeField(fields, "status"); ok {
		if n, ok := valueToInt64(v); ok {
			col(colorizeStatusCode(int(n), h.color))
		} else {
			col(v.String())
		}
	}
	if v, ok := takeField(fields, "status_class"); ok {
		col(colorizeStatusClass(v.String(), h.color))
	}
	if v, ok := takeField(fields, "result"); ok {
		col(colorizeResult(v.String(), h.color))
	}
	if v, ok := takeField(fields, "bytes"); ok {
		if n, ok := valueToInt64(v); ok {
			col(formatBytes(n))
		}
	}
	if v, ok := takeField(fields, "duration_ms"); ok {
		if n, ok := valueToInt64(v); ok {
			col(colorizeDurationMS(n, h.color))
		}
	}
}

func flattenAttr(dst []prettyField, prefix string, a slog.Attr) []prettyField {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = flattenAttr(dst, p, ga)
		}
		return dst
	}
	return append(dst, prettyField{key: prefix + a.Key, val: a.Value})
}

// takeField removes the first field named key and returns its value.
func takeField(fields *[]prettyField, key string) (slog.Value, bool) {
	for i, f := range *fields {
		if f.key == key {
			*fields = append((*fields)[:i], (*fields)[i+1:]...)
			return f.val, true
		}
	}
	return slog.Value{}, false
}

func formatBytes(n int64) string {
	switch {
	case n < 1024:
		return strconv.FormatInt(n, 10) + "B"
	case n < 1024*1024:
		return strconv.FormatFloat(float64(n)/1024, 'f', 1, 64) + "KiB"
	default:
		return strconv.FormatFloat(float64(n)/(1024*1024), 'f', 1, 64) + "MiB"
	}
}

func valueToString(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func levelTag(level slog.Level, color bool) string {
	switch {
	case level >= slog.LevelError:
		return paint("ERROR", ansiRed, color)
	case level >= slog.LevelWarn:
		return paint("WARN ", ansiYellow, color)
	case level >= slog.LevelInfo:
		return paint("INFO ", ansiBlue, color)
	default:
		return paint("DEBUG", ansiMagenta, color)
	}
}
