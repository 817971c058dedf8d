package smtpcmd

import (
	"encoding/base64"
	"fmt"

	"github.com/synqronlabs/smtpcmd/sasl"
)

// AuthStart returns the AUTH command opening an exchange with m.
// An initial response is sent inline; an empty one is sent as "="
// (RFC 4954 Section 4).
func AuthStart(m sasl.Mechanism) (Auth, error) {
	ir, err := m.Start()
	if err != nil {
		return Auth{}, fmt.Errorf("smtp: %s: %w", m.Name(), err)
	}
	if ir == nil {
		return NewAuthMethod(m.Name())
	}
	if len(ir) == 0 {
		return NewAuth(m.Name(), "=")
	}
	return NewAuth(m.Name(), base64.StdEncoding.EncodeToString(ir))
}

// AuthContinue answers a base64-encoded 334 challenge with a continuation
// line.
func AuthContinue(m sasl.Mechanism, challenge string) (Auth, error) {
	decoded, err := base64.StdEncoding.DecodeString(challenge)
	if err != nil {
		return Auth{}, fmt.Errorf("smtp: malformed challenge: %w", err)
	}
	resp, err := m.Next(decoded)
	if err != nil {
		return Auth{}, fmt.Errorf("smtp: %s: %w", m.Name(), err)
	}
	return NewAuthResponse(base64.StdEncoding.EncodeToString(resp)), nil
}

// AuthCancel returns the "*" line aborting an exchange.
func AuthCancel() Auth {
	return NewAuthResponse("*")
}
