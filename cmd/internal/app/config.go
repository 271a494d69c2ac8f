package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr  string
	LogLevel  string
	LogFormat string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// PolicyFile is an optional YAML policy. PWGATE_PASSWORD_* env vars override it.
	PolicyFile string

	MetricsEnabled bool

	WSDevInsecure     bool
	WSOriginRequired  bool
	WSAllowedOrigins  []string
	WSSendQueueSize   int
	WSReadIdleTimeout time.Duration
	WSWriteTimeout    time.Duration
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr:  EnvString("PWGATE_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel:  EnvString("PWGATE_LOG_LEVEL", "info"),
		LogFormat: EnvString("PWGATE_LOG_FORMAT", "json"),

		ReadHeaderTimeout: EnvDuration("PWGATE_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("PWGATE_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("PWGATE_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("PWGATE_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("PWGATE_HTTP_MAX_HEADER_BYTES", 1<<20),

		PolicyFile: EnvString("PWGATE_POLICY_FILE", ""),

		MetricsEnabled: EnvBool("PWGATE_METRICS_ENABLED", true),

		WSDevInsecure:     EnvBool("PWGATE_WS_DEV_INSECURE", false),
		WSOriginRequired:  EnvBool("PWGATE_WS_ORIGIN_REQUIRED", true),
		WSAllowedOrigins:  EnvCSV("PWGATE_WS_ALLOWED_ORIGINS", []string{"http://localhost", "http://127.0.0.1"}),
		WSSendQueueSize:   EnvInt("PWGATE_WS_SEND_QUEUE", 256),
		WSReadIdleTimeout: EnvDuration("PWGATE_WS_READ_IDLE_TIMEOUT", 2*time.Minute),
		WSWriteTimeout:    EnvDuration("PWGATE_WS_WRITE_TIMEOUT", 5*time.Second),
	}
}
