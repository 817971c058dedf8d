// Package sasl implements client-side SASL mechanisms for SMTP
// authentication (RFC 4954).
//
// Mechanisms work on decoded bytes; base64 framing on the wire is left to
// the caller.
package sasl

import (
	"errors"

	gosasl "github.com/emersion/go-sasl"
)

var (
	// ErrUnexpectedChallenge is returned when the server sends a challenge
	// the mechanism has no answer for.
	ErrUnexpectedChallenge = gosasl.ErrUnexpectedServerChallenge

	// ErrInvalidFormat is returned when the credentials cannot be encoded.
	ErrInvalidFormat = errors.New("sasl: invalid credentials format")
)

// Credentials holds the identities and secret used in an exchange.
type Credentials struct {
	AuthorizationID  string // Identity to act as (authzid)
	AuthenticationID string // Identity being authenticated (authcid)
	Password         string
}

// Identity returns the effective identity for authorization.
func (c *Credentials) Identity() string {
	if c.AuthorizationID != "" {
		return c.AuthorizationID
	}
	return c.AuthenticationID
}

// Mechanism is the client side of a SASL mechanism.
type Mechanism interface {
	// Name returns the mechanism name as sent after AUTH.
	Name() string

	// Start returns the initial response. A nil slice means the mechanism
	// sends none; a non-nil empty slice is an empty initial response.
	Start() (ir []byte, err error)

	// Next answers a decoded server challenge.
	Next(challenge []byte) (response []byte, err error)
}
