package doordash

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"
)

const (
	jwtVersion  = "DD-JWT-V1"
	jwtAudience = "doordash"
	jwtLifetime = 5 * time.Minute
)

// Signer issues the short-lived HS256 tokens the Drive API expects.
type Signer struct {
	developerID   string
	keyID         string
	signingSecret string
	now           func() time.Time
}

// NewSigner returns a Signer for the given credentials.
func NewSigner(developerID, keyID, signingSecret string) *Signer {
	return &Signer{
		developerID:   developerID,
		keyID:         keyID,
		signingSecret: signingSecret,
		now:           time.Now,
	}
}

// Token returns a signed JWT valid for five minutes.
func (s *Signer) Token() (string, error) {
	secret, err := decodeSecret(s.signingSecret)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := jwt.MapClaims{
		"aud": jwtAudience,
		"iss": s.developerID,
		"kid": s.keyID,
		"iat": now.Unix(),
		"exp": now.Add(jwtLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["dd-ver"] = jwtVersion

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "unable to sign token")
	}
	return signed, nil
}

// decodeSecret accepts the base64url secret from the developer portal,
// with or without padding.
func decodeSecret(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("signing secret is empty")
	}
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, errors.Wrap(err, "signing secret is not valid base64url")
	}
	return b, nil
}
