// Package config loads the server configuration from the environment.
//
// Every variable is prefixed with PAYLASH_. A dotenv file, if present, is
// loaded first; variables already set in the process environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Prefix is prepended to every variable name.
const Prefix = "PAYLASH_"

// Config holds all runtime settings of the server.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080" validate:"required"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/paylash.db" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// JWTSecret signs the access tokens handed to the front end.
	JWTSecret string        `env:"JWT_SECRET,required" validate:"min=16"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h" validate:"gt=0"`

	// FrontendSecretHash is the bcrypt hash of the secret the chat front end
	// presents to obtain tokens. Generate it with cmd/hashsecret.
	FrontendSecretHash string `env:"FRONTEND_SECRET_HASH,required" validate:"startswith=$2"`

	ShareTolerance  decimal.Decimal `env:"SHARE_TOLERANCE" envDefault:"0.01"`
	DefaultCurrency string          `env:"DEFAULT_CURRENCY" envDefault:"USD" validate:"iso4217"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Load reads dotenvFiles (default ".env"; missing files are ignored) and then
// parses and validates the PAYLASH_ variables.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return parse(env.Options{Prefix: Prefix})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.DefaultCurrency = strings.ToUpper(cfg.DefaultCurrency)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.ShareTolerance.IsNegative() {
		return nil, fmt.Errorf("invalid config: %sSHARE_TOLERANCE must not be negative, got %s", Prefix, cfg.ShareTolerance)
	}
	return &cfg, nil
}
