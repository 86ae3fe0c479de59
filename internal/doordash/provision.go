package doordash

import (
	"net/http"
	"strings"

	"github.com/effective-security/xlog"

	"doordash-mcp/internal/config"
)

// MissingCredentialsMessage is logged when provisioning finds incomplete
// credentials.
var MissingCredentialsMessage = "Missing required DoorDash environment variables: " +
	strings.Join([]string{config.EnvDeveloperID, config.EnvKeyID, config.EnvSigningSecret}, ", ")

// Option configures a provisioned Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.HTTP = httpClient
		}
	}
}

// Provision builds a client from creds. It returns nil, after logging the
// missing variables, when the credentials are incomplete; callers are
// expected to try again later.
func Provision(creds config.DoorDash, opts ...Option) *Client {
	if missing := creds.Missing(); len(missing) > 0 {
		logger.KV(xlog.ERROR,
			"reason", MissingCredentialsMessage,
			"missing", strings.Join(missing, ", "),
		)
		return nil
	}
	c := New(creds, nil)
	for _, opt := range opts {
		opt(c)
	}
	return c
}
