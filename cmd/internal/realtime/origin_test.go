package realtime

import (
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestOriginHostOnly(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                         "",
		"http://localhost":         "localhost",
		"https://App.Example:8443": "app.example",
		"127.0.0.1:3000":           "127.0.0.1",
		"example.com":              "example.com",
		"http://":                  "",
		"  http://LOCALHOST:80   ": "localhost",
	}
	for in, want := range cases {
		if got := originHostOnly(in); got != want {
			t.Fatalf("originHostOnly(%q)=%q want %q", in, got, want)
		}
	}
}

func TestOriginPatterns(t *testing.T) {
	t.Parallel()

	got := originPatterns([]string{"http://localhost:5173", "https://localhost", "*", "", "http://127.0.0.1"})
	want := []string{"127.0.0.1", "localhost"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patterns=%v want %v", got, want)
	}
}

func TestEnforceOrigin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cfg      GatewayConfig
		origin   string
		wantFail bool
	}{
		{name: "missing required", cfg: GatewayConfig{OriginRequired: true, AllowedOrigins: []string{"http://localhost"}}, wantFail: true},
		{name: "missing optional", cfg: GatewayConfig{AllowedOrigins: []string{"http://localhost"}}},
		{name: "exact", cfg: GatewayConfig{AllowedOrigins: []string{"http://localhost"}}, origin: "http://localhost"},
		{name: "host match other port", cfg: GatewayConfig{AllowedOrigins: []string{"http://localhost"}}, origin: "http://localhost:5173"},
		{name: "wildcard", cfg: GatewayConfig{AllowedOrigins: []string{"*"}}, origin: "https://anything.example"},
		{name: "foreign", cfg: GatewayConfig{AllowedOrigins: []string{"http://localhost"}}, origin: "https://evil.example", wantFail: true},
		{name: "empty allowlist", cfg: GatewayConfig{}, origin: "http://localhost", wantFail: true},
	}

	for _, tc := range cases {
		g := NewGateway(nil, testPolicy(), nil, tc.cfg)
		r := httptest.NewRequest("GET", "/ws", nil)
		if tc.origin != "" {
			r.Header.Set("Origin", tc.origin)
		}
		err := g.enforceOrigin(r)
		if (err != nil) != tc.wantFail {
			t.Fatalf("%s: err=%v wantFail=%v", tc.name, err, tc.wantFail)
		}
	}
}
