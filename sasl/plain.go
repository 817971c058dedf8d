package sasl

import (
	"strings"

	gosasl "github.com/emersion/go-sasl"
)

// Plain implements the PLAIN SASL mechanism (RFC 4616).
// Use only over TLS - passwords are transmitted in clear text.
type Plain struct {
	creds  Credentials
	client gosasl.Client
}

// NewPlain creates a PLAIN mechanism for the given identities.
// authzid may be empty.
func NewPlain(authzid, username, password string) *Plain {
	return &Plain{
		creds: Credentials{
			AuthorizationID:  authzid,
			AuthenticationID: username,
			Password:         password,
		},
		client: gosasl.NewPlainClient(authzid, username, password),
	}
}

// Name returns "PLAIN".
func (p *Plain) Name() string {
	return gosasl.Plain
}

// Start returns "authzid NUL authcid NUL passwd".
func (p *Plain) Start() ([]byte, error) {
	c := p.creds
	if c.AuthenticationID == "" {
		return nil, ErrInvalidFormat
	}
	if strings.ContainsRune(c.AuthorizationID, 0) ||
		strings.ContainsRune(c.AuthenticationID, 0) ||
		strings.ContainsRune(c.Password, 0) {
		return nil, ErrInvalidFormat
	}

	_, ir, err := p.client.Start()
	return ir, err
}

// Next always fails; PLAIN completes with the initial response.
func (p *Plain) Next(challenge []byte) ([]byte, error) {
	return p.client.Next(challenge)
}

// Credentials returns the credentials the mechanism sends.
func (p *Plain) Credentials() *Credentials {
	c := p.creds
	return &c
}
