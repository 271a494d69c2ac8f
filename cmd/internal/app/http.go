package app

import (
	"net/http"

	"pwgate/cmd/internal/api"
	"pwgate/cmd/internal/metrics"
	"pwgate/cmd/internal/realtime"
)

func registerHTTP(
	mux *http.ServeMux,
	m *metrics.Metrics,
	ws *realtime.Gateway,
	pw *api.Handler,
) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	// Stateless: ready as soon as the policy loaded.
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready\n"))
	})

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}

	if pw != nil {
		pw.Register(mux)
	}

	mux.HandleFunc("/ws", ws.HandleWS)
}
