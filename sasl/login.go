package sasl

import (
	gosasl "github.com/emersion/go-sasl"
)

// Login implements the LOGIN SASL mechanism.
// The username is sent as the initial response, so the server only
// prompts with "Password:".
// DEPRECATED: Use PLAIN instead. Only for legacy server compatibility.
type Login struct {
	username string
	password string
	client   gosasl.Client
}

// NewLogin creates a LOGIN mechanism.
func NewLogin(username, password string) *Login {
	return &Login{
		username: username,
		password: password,
		client:   gosasl.NewLoginClient(username, password),
	}
}

// Name returns "LOGIN".
func (l *Login) Name() string {
	return gosasl.Login
}

// Start returns the username as the initial response.
func (l *Login) Start() ([]byte, error) {
	if l.username == "" {
		return nil, ErrInvalidFormat
	}
	_, ir, err := l.client.Start()
	return ir, err
}

// Next answers the "Password:" prompt. Any other challenge fails with
// ErrUnexpectedChallenge.
func (l *Login) Next(challenge []byte) ([]byte, error) {
	return l.client.Next(challenge)
}

// Credentials returns the credentials the mechanism sends.
// LOGIN has no authorization identity.
func (l *Login) Credentials() *Credentials {
	return &Credentials{
		AuthenticationID: l.username,
		Password:         l.password,
	}
}
