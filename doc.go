// Package smtpcmd renders the commands an SMTP client sends (RFC 5321).
//
// # Requests
//
// Every command is a Request value. Rendering is pure and deterministic:
//
//	id, err := smtpcmd.ParseClientID("client.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line := smtpcmd.Render(smtpcmd.Ehlo{ID: id})
//	// "EHLO client.example.com\r\n"
//
//	from := smtpcmd.MustParseMailbox("sender@example.com")
//	mail := smtpcmd.NewMail(from,
//	    smtpcmd.BodyParam{Kind: smtpcmd.Body8BitMIME},
//	    smtpcmd.SizeParam{Size: 1024},
//	)
//	// "MAIL FROM:<sender@example.com> BODY=8BITMIME SIZE=1024\r\n"
//
// An empty reverse-path is the zero Mailbox and renders as "<>".
//
// Parameter values that are not known keywords are xtext-encoded
// (RFC 3461 Section 4):
//
//	smtpcmd.NewValueParam("X-VALUE", "+")
//	// "X-VALUE=+2B"
//
// # Authentication
//
// AUTH lines are built from a sasl.Mechanism:
//
//	auth, err := smtpcmd.AuthStart(sasl.NewPlain("", "user", "pass"))
//	// "AUTH PLAIN AHVzZXIAcGFzcw==\r\n"
//
//	next, err := smtpcmd.AuthContinue(mech, challenge)
//	// base64 response line
//
// The zero Auth value is invalid and panics with ErrInvalidAuth when
// rendered. Use NewAuth, NewAuthMethod or NewAuthResponse.
//
// # Framing
//
// IsBodyBearing reports whether a raw message follows the command. Only DATA
// does. Writer applies it: after WriteRequest(Data{}) returns a frame with
// HasBody set, the body must be sent with WriteBody before any other command.
//
//	w := smtpcmd.NewWriter(conn, nil)
//	w.WriteRequest(smtpcmd.Data{})
//	// wait for 354
//	w.WriteBody(msg)
//
// Writer does not read replies.
//
// # Extensions
//
// Parameters are provided for:
//   - 8BITMIME (RFC 6152) - BodyParam
//   - SIZE (RFC 1870) - SizeParam
//   - SMTPUTF8 (RFC 6531) - SMTPUTF8Param
//   - REQUIRETLS (RFC 8689) - RequireTLSParam
//   - DSN (RFC 3461) - RetParam, EnvIDParam, NotifyParam, ORcptParam
//   - AUTH (RFC 4954) - AuthParam
//
// Anything else is sent with NewFlagParam or NewValueParam.
package smtpcmd
