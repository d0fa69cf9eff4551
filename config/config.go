package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/andyle182810/liquidplanner/validator"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

type Config struct {
	// Application
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`

	// LiquidPlanner account
	BaseURL     string `env:"LP_BASE_URL"     envDefault:"https://app.liquidplanner.com/api" validate:"required,url"`
	WorkspaceID int    `env:"LP_WORKSPACE_ID"                                                 validate:"gt=0"`
	Email       string `env:"LP_EMAIL"                                                        validate:"required"`
	Password    string `env:"LP_PASSWORD"                                                     validate:"required"`

	// Request executor
	Timeout            time.Duration `env:"LP_TIMEOUT"              envDefault:"30s"   validate:"gte=0"`
	InsecureSkipVerify bool          `env:"LP_INSECURE_SKIP_VERIFY" envDefault:"false"`
	MaxAttempts        int           `env:"LP_MAX_ATTEMPTS"         envDefault:"0"     validate:"gte=0"`
	MaxTotalWait       time.Duration `env:"LP_MAX_TOTAL_WAIT"       envDefault:"0s"    validate:"gte=0"`
	RateLimit          float64       `env:"LP_RATE_LIMIT"           envDefault:"0"     validate:"gte=0"`
	Debug              bool          `env:"LP_DEBUG"                envDefault:"false"`
}

// New reads the process environment after loading the given dotenv files.
// Missing dotenv files are skipped; variables already set win.
func New(dotenvFiles ...string) (*Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return parse(env.Options{}) //nolint:exhaustruct
}

// FromMap parses configuration from the given variables only.
func FromMap(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ}) //nolint:exhaustruct
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Credentials() httpclient.Credentials {
	return httpclient.Credentials{Username: c.Email, Password: c.Password}
}

// HTTPOptions converts the executor settings into httpclient options.
func (c *Config) HTTPOptions() []httpclient.Option {
	opts := []httpclient.Option{
		httpclient.WithTimeout(c.Timeout),
		httpclient.WithMaxAttempts(c.MaxAttempts),
		httpclient.WithMaxTotalWait(c.MaxTotalWait),
		httpclient.WithDebug(c.Debug),
	}

	if c.InsecureSkipVerify {
		opts = append(opts, httpclient.WithInsecureSkipVerify(true))
	}

	if c.RateLimit > 0 {
		opts = append(opts, httpclient.WithRateLimiter(rate.NewLimiter(rate.Limit(c.RateLimit), 1)))
	}

	return opts
}
