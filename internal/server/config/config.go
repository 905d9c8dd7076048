// Package config is responsible for:
// - reading server.yaml
// - expanding environment references like ${JWT_SIGNING_KEY}
// - filling defaults
// - validation (the server refuses to start on an unsafe config)
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root of the server configuration.
type Config struct {
	Env      string         `yaml:"env"` // dev|stage|prod
	Server   ServerConfig   `yaml:"server"`
	DB       DBConfig       `yaml:"db"`
	Auth     AuthConfig     `yaml:"auth"`
	Password PasswordConfig `yaml:"password"`
	CORS     CORSConfig     `yaml:"cors"`
	Security SecurityConfig `yaml:"security"`
	API      APIConfig      `yaml:"api"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // graceful shutdown budget
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`   // request body limit
}

// DBConfig holds the SQLite settings. DSN is a file path; the store is a
// single local file.
type DBConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MigrationsPath  string        `yaml:"migrations_path"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	Issuer    string        `yaml:"issuer"`
	Audience  string        `yaml:"audience"`
	AccessTTL time.Duration `yaml:"access_ttl"`
	JWT       JWTConfig     `yaml:"jwt"`
}

// JWTConfig describes how tokens are signed.
type JWTConfig struct {
	Algorithm  string `yaml:"algorithm"`   // only HS256 is supported
	SigningKey string `yaml:"signing_key"` // may contain ${JWT_SIGNING_KEY}
}

// PasswordConfig selects and tunes the password hasher.
type PasswordConfig struct {
	Hasher string       `yaml:"hasher"` // argon2id|bcrypt
	Argon2 Argon2Config `yaml:"argon2"`
	Bcrypt BcryptConfig `yaml:"bcrypt"`
}

// Argon2Config holds argon2id parameters.
type Argon2Config struct {
	Time      uint32 `yaml:"time"`
	MemoryKiB uint32 `yaml:"memory_kib"`
	Threads   uint8  `yaml:"threads"`
	KeyLen    uint32 `yaml:"key_len"`
	SaltLen   uint32 `yaml:"salt_len"`
}

// BcryptConfig holds bcrypt parameters.
type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

// CORSConfig holds the allowed browser origin. The dev origin is used
// whenever env != prod.
type CORSConfig struct {
	Origin    string `yaml:"origin"`
	DevOrigin string `yaml:"dev_origin"`
}

// SecurityConfig groups protective limits.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig is a simple per-IP token bucket over /api.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// APIConfig holds endpoint-level knobs.
type APIConfig struct {
	SpeedTestHistoryLimit int `yaml:"speed_test_history_limit"` // cap for /api/speedtest/history
	SessionHistoryLimit   int `yaml:"session_history_limit"`    // cap for /api/user/sessions
}

// LogConfig holds logging settings (zap).
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

// Load reads the YAML, expands ${VAR} references, parses the structure,
// fills defaults and validates.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment references inside the YAML text:
	// signing_key: "${JWT_SIGNING_KEY}" -> signing_key: "actual value"
	raw = []byte(ExpandEnvStrict(string(raw)))

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	ApplyDefaults(&cfg)
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict replaces ${VAR} with the environment value. Unset
// variables are left as ${VAR} so Validate fails with a clear error.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults fills values the YAML left unset.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = "fbiv_vpn.db"
	}
	if cfg.DB.MigrationsPath == "" {
		cfg.DB.MigrationsPath = "migrations/sqlite"
	}
	if cfg.Auth.AccessTTL == 0 {
		cfg.Auth.AccessTTL = 24 * time.Hour
	}
	if cfg.Auth.JWT.Algorithm == "" {
		cfg.Auth.JWT.Algorithm = "HS256"
	}
	if cfg.Password.Hasher == "" {
		cfg.Password.Hasher = "bcrypt"
	}
	if cfg.Password.Hasher == "bcrypt" && cfg.Password.Bcrypt.Cost == 0 {
		cfg.Password.Bcrypt.Cost = 10
	}
	if cfg.CORS.DevOrigin == "" {
		cfg.CORS.DevOrigin = "http://localhost:3000"
	}
	if cfg.API.SpeedTestHistoryLimit == 0 {
		cfg.API.SpeedTestHistoryLimit = 10
	}
	if cfg.API.SessionHistoryLimit == 0 {
		cfg.API.SessionHistoryLimit = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// ApplyEnvOverrides lets a few settings be overridden by plain
// environment variables without ${...} placeholders in the YAML.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		c.CORS.Origin = v
	}
}

// AllowedOrigin returns the browser origin for the current environment.
func (c *Config) AllowedOrigin() string {
	if c.Env == "prod" {
		return c.CORS.Origin
	}
	return c.CORS.DevOrigin
}

// Validate checks the config is complete and safe. On any problem the
// server does NOT start.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port is invalid: %d", c.Server.Port)
	}

	if c.DB.DSN == "" {
		return errors.New("db.dsn is required")
	}

	alg := strings.ToUpper(strings.TrimSpace(c.Auth.JWT.Algorithm))
	if alg != "HS256" {
		return fmt.Errorf("auth.jwt.algorithm must be HS256 (got %q)", c.Auth.JWT.Algorithm)
	}

	key := strings.TrimSpace(c.Auth.JWT.SigningKey)
	if key == "" {
		return errors.New("auth.jwt.signing_key is required (either ${JWT_SIGNING_KEY} or a literal)")
	}
	// If ${JWT_SIGNING_KEY} did not expand the variable is unset
	if strings.Contains(key, "${") && strings.Contains(key, "}") {
		return fmt.Errorf("auth.jwt.signing_key contains an unexpanded variable: %q (set JWT_SIGNING_KEY)", key)
	}
	// For HS256 the key must be long and random
	if len(key) < 32 {
		return fmt.Errorf("auth.jwt.signing_key is too short (%d chars); need >= 32", len(key))
	}

	if c.Env == "prod" && c.CORS.Origin == "" {
		return errors.New("cors.origin is required in prod")
	}

	if c.Security.RateLimit.Enabled {
		if c.Security.RateLimit.RPS <= 0 {
			return errors.New("security.rate_limit.rps must be > 0 when rate_limit is enabled")
		}
		if c.Security.RateLimit.Burst <= 0 {
			return errors.New("security.rate_limit.burst must be > 0 when rate_limit is enabled")
		}
	}

	switch strings.ToLower(c.Password.Hasher) {
	case "argon2id":
		if c.Password.Argon2.Time == 0 || c.Password.Argon2.MemoryKiB == 0 || c.Password.Argon2.Threads == 0 {
			return errors.New("password.argon2 must be configured for argon2id")
		}
	case "bcrypt":
		if c.Password.Bcrypt.Cost == 0 {
			return errors.New("password.bcrypt.cost must be set for bcrypt")
		}
	default:
		return fmt.Errorf("password.hasher must be argon2id|bcrypt (got %q)", c.Password.Hasher)
	}

	if c.API.SpeedTestHistoryLimit <= 0 {
		return errors.New("api.speed_test_history_limit must be > 0")
	}

	return nil
}
