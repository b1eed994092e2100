// Package config loads service settings from defaults, an optional .env file and
// the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"toyland-backend/internal/errs"
	"toyland-backend/internal/validation"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Auth      AuthConfig      `koanf:"auth"`
	Notify    NotifyConfig    `koanf:"notify"`
}

type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins" validate:"min=1"`
}

// DatabaseConfig describes the MongoDB deployment. URI wins over the
// user/password/host triple when both are present.
type DatabaseConfig struct {
	URI            string        `koanf:"uri"`
	User           string        `koanf:"user"`
	Password       string        `koanf:"password"`
	Host           string        `koanf:"host"`
	Name           string        `koanf:"name" validate:"required"`
	StableAPI      bool          `koanf:"stable_api"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// RateLimitConfig applies per client IP. Requests == 0 disables limiting.
type RateLimitConfig struct {
	Requests int           `koanf:"requests" validate:"gte=0"`
	Window   time.Duration `koanf:"window" validate:"gt=0"`
}

// AuthConfig enables the bearer-token guard on listing writes when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

// NotifyConfig selects the feedback notifier. Without an API key feedback is only logged.
type NotifyConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	FromEmail    string `koanf:"from_email"`
	ToEmail      string `koanf:"to_email"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Database: DatabaseConfig{
			Host:           "cluster0.ehabgxd.mongodb.net",
			Name:           "toyLandDB",
			StableAPI:      true,
			ConnectTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
		},
	}
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// ConnectionString returns URI, or builds an Atlas SRV string from the credentials.
func (d DatabaseConfig) ConnectionString() string {
	if d.URI != "" {
		return d.URI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) && len(httpErr.Errors) > 0 {
			problems := make([]string, len(httpErr.Errors))
			for i, fe := range httpErr.Errors {
				problems[i] = fe.Field + " " + fe.Error
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Database.URI == "" && (c.Database.User == "" || c.Database.Password == "" || c.Database.Host == "") {
		return errors.New("database: set MONGODB_URI or DB_USER, DB_PASS and DB_HOST")
	}
	if c.Notify.ResendAPIKey != "" && (c.Notify.FromEmail == "" || c.Notify.ToEmail == "") {
		return errors.New("notify: FEEDBACK_FROM_EMAIL and FEEDBACK_NOTIFY_EMAIL are required with RESEND_API_KEY")
	}
	return nil
}
