// Package config loads the server configuration from an optional YAML file
// and the process environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the server.
const (
	EnvDeveloperID     = "DOORDASH_DEVELOPER_ID"
	EnvKeyID           = "DOORDASH_KEY_ID"
	EnvSigningSecret   = "DOORDASH_SIGNING_SECRET"
	EnvBaseURL         = "DOORDASH_BASE_URL"
	EnvTransport       = "MCP_TRANSPORT"
	EnvPort            = "PORT"
	EnvToken           = "MCP_TOKEN"
	EnvTLSCertFile     = "TLS_CERT_FILE"
	EnvTLSKeyFile      = "TLS_KEY_FILE"
	EnvStrictArguments = "MCP_STRICT_ARGUMENTS"
	EnvLogLevel        = "LOG_LEVEL"
)

// Supported transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// DoorDash holds the Drive API credentials.
type DoorDash struct {
	DeveloperID   string `yaml:"developer_id"`
	KeyID         string `yaml:"key_id"`
	SigningSecret string `yaml:"signing_secret"`
	BaseURL       string `yaml:"base_url" validate:"omitempty,url"`
}

// Missing returns the names of the environment variables whose values are
// absent, in a stable order.
func (d DoorDash) Missing() []string {
	var missing []string
	if d.DeveloperID == "" {
		missing = append(missing, EnvDeveloperID)
	}
	if d.KeyID == "" {
		missing = append(missing, EnvKeyID)
	}
	if d.SigningSecret == "" {
		missing = append(missing, EnvSigningSecret)
	}
	return missing
}

// Complete reports whether all three credentials are present.
func (d DoorDash) Complete() bool {
	return len(d.Missing()) == 0
}

// Config contains server configuration values such as transport, port, auth token, and credentials.
type Config struct {
	Transport       string   `yaml:"transport" validate:"oneof=stdio http"`
	Port            string   `yaml:"port" validate:"omitempty,numeric"`
	Token           string   `yaml:"token"`
	TLSCertFile     string   `yaml:"tls_cert_file" validate:"required_with=TLSKeyFile"`
	TLSKeyFile      string   `yaml:"tls_key_file" validate:"required_with=TLSCertFile"`
	StrictArguments bool     `yaml:"strict_arguments"`
	LogLevel        string   `yaml:"log_level" validate:"oneof=DEBUG INFO NOTICE WARNING ERROR"`
	DoorDash        DoorDash `yaml:"doordash"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Transport: TransportStdio,
		Port:      "3000",
		LogLevel:  "INFO",
	}
}

// Load reads the YAML file at path, if not empty, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read config %q", path)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "unable to parse config %q", path)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// Credentials returns the DoorDash credentials, re-reading the environment
// on every call so that values supplied after startup are picked up.
// Environment values take precedence over the file.
func (c *Config) Credentials() DoorDash {
	d := c.DoorDash
	d.DeveloperID = getEnv(EnvDeveloperID, d.DeveloperID)
	d.KeyID = getEnv(EnvKeyID, d.KeyID)
	d.SigningSecret = getEnv(EnvSigningSecret, d.SigningSecret)
	d.BaseURL = getEnv(EnvBaseURL, d.BaseURL)
	return d
}

func (c *Config) applyEnv() {
	c.Transport = strings.ToLower(getEnv(EnvTransport, c.Transport))
	c.Port = getEnv(EnvPort, c.Port)
	c.Token = getEnv(EnvToken, c.Token)
	c.TLSCertFile = getEnv(EnvTLSCertFile, c.TLSCertFile)
	c.TLSKeyFile = getEnv(EnvTLSKeyFile, c.TLSKeyFile)
	c.StrictArguments = getEnvBool(EnvStrictArguments, c.StrictArguments)
	c.LogLevel = strings.ToUpper(getEnv(EnvLogLevel, c.LogLevel))
	c.DoorDash = c.Credentials()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
