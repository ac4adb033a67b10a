package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration, read from the environment
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"social_auth.db"`
	UseHTTPS     bool   `env:"USE_HTTPS"`

	// BaseURL is the public URL of this service, used to build the provider login URL
	BaseURL string `env:"BASE_URL,required"`
	// FrontendURL is the base for all post-callback redirects
	FrontendURL string `env:"FRONTEND_URL,required"`
	// SecretKey is a hex string from which signing and encryption keys are derived
	SecretKey string `env:"SECRET_KEY,required"`

	Google    GoogleConfig    `envPrefix:"GOOGLE_"`
	Redirects RedirectConfig
	Tokens    TokenConfig
	Session   SessionConfig `envPrefix:"SESSION_"`
}

// GoogleConfig holds the OAuth client registered with Google
type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID,required"`
	ClientSecret string `env:"CLIENT_SECRET,required"`
	// CallbackURL is the redirect target registered with the provider
	CallbackURL string `env:"CALLBACK_URL,required"`
	Issuer      string `env:"ISSUER" envDefault:"https://accounts.google.com"`
}

// RedirectConfig holds the frontend paths the callback redirects to
type RedirectConfig struct {
	SuccessPath string `env:"SUCCESS_PATH" envDefault:"/Auth/login"`
	FailedPath  string `env:"FAILED_PATH" envDefault:"/login-failed"`
	ErrorPath   string `env:"ERROR_PATH" envDefault:"/login-error"`
}

// TokenConfig holds the lifetimes of issued credentials
type TokenConfig struct {
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"5m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`
}

// SessionConfig configures the browser session middleware
type SessionConfig struct {
	Provider       string `env:"PROVIDER" envDefault:"memory"`
	ProviderConfig string `env:"PROVIDER_CONFIG"`
	Lifetime       int64  `env:"LIFETIME" envDefault:"3600"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return LoadWithOptions(env.Options{})
}

// LoadWithOptions parses the environment described by opts
func LoadWithOptions(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"BASE_URL":            c.BaseURL,
		"FRONTEND_URL":        c.FrontendURL,
		"GOOGLE_CALLBACK_URL": c.Google.CallbackURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	if c.Tokens.AccessTTL <= 0 || c.Tokens.RefreshTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	if c.Tokens.RefreshTTL < c.Tokens.AccessTTL {
		return errors.New("REFRESH_TOKEN_TTL must not be shorter than ACCESS_TOKEN_TTL")
	}

	return nil
}

// LoginURL is where the browser starts the provider consent flow
func (c *Config) LoginURL() string {
	return c.BaseURL + "/accounts/google/login/"
}

// SuccessURL is the redirect target after an authenticated callback
func (c *Config) SuccessURL() string {
	return c.FrontendURL + c.Redirects.SuccessPath
}

// FailedURL is the redirect target when the callback did not authenticate
func (c *Config) FailedURL() string {
	return c.FrontendURL + c.Redirects.FailedPath
}

// ErrorURL is the redirect target when the callback failed unexpectedly
func (c *Config) ErrorURL() string {
	return c.FrontendURL + c.Redirects.ErrorPath
}
