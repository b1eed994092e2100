package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envMappings maps environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"PORT":                    "server.port",
	"SERVER_READ_TIMEOUT":     "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":    "server.write_timeout",
	"SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"CORS_ALLOWED_ORIGINS":    "server.cors_origins",

	"MONGODB_URI":        "database.uri",
	"DB_USER":            "database.user",
	"DB_PASS":            "database.password",
	"DB_HOST":            "database.host",
	"DB_NAME":            "database.name",
	"DB_STABLE_API":      "database.stable_api",
	"DB_CONNECT_TIMEOUT": "database.connect_timeout",

	"LOG_LEVEL":  "logging.level",
	"LOG_FORMAT": "logging.format",

	"RATE_LIMIT_REQUESTS": "ratelimit.requests",
	"RATE_LIMIT_WINDOW":   "ratelimit.window",

	"AUTH_JWT_SECRET": "auth.jwt_secret",

	"RESEND_API_KEY":        "notify.resend_api_key",
	"FEEDBACK_FROM_EMAIL":   "notify.from_email",
	"FEEDBACK_NOTIFY_EMAIL": "notify.to_email",
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

// Load reads .env (when present), applies defaults, overlays the environment and validates.
func Load() (*Config, error) {
	// Missing .env is normal in production where variables are set directly.
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransformFunc returns "" for unknown variables so koanf skips them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToUpper(key)]
}

// processSliceFields splits comma-separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
