package smtpcmd

import (
	"fmt"
	"slices"
)

// Command is an SMTP command verb.
type Command string

const (
	CmdEhlo     Command = "EHLO"
	CmdStartTLS Command = "STARTTLS"
	CmdAuth     Command = "AUTH"
	CmdMail     Command = "MAIL"
	CmdRcpt     Command = "RCPT"
	CmdData     Command = "DATA"
	CmdQuit     Command = "QUIT"
)

const crlf = "\r\n"

// Request is a single client command line. It is implemented only by Ehlo,
// StartTLS, Auth, Mail, Rcpt, Data and Quit.
type Request interface {
	// AppendTo appends the wire form of the command, including the
	// terminating CRLF, to dst.
	AppendTo(dst []byte) []byte

	// String returns the wire form of the command, including CRLF.
	String() string

	// Command returns the verb the line belongs to. AUTH continuation
	// lines report CmdAuth.
	Command() Command

	isRequest()
}

// Render returns the wire form of r.
func Render(r Request) []byte {
	return r.AppendTo(nil)
}

// Ehlo announces the client (RFC 5321 Section 4.1.1.1).
type Ehlo struct {
	ID ClientID
}

// StartTLS requests a TLS upgrade (RFC 3207).
type StartTLS struct{}

// Auth is an AUTH command or a continuation line of a SASL exchange
// (RFC 4954). Use NewAuth, NewAuthMethod or NewAuthResponse; the zero value
// carries neither a mechanism nor data and panics when rendered.
type Auth struct {
	method    string
	data      string
	hasMethod bool
	hasData   bool
}

// Mail starts a mail transaction.
type Mail struct {
	From   Mailbox
	Params []MailParam
}

// Rcpt adds a recipient to the current transaction.
type Rcpt struct {
	To     Mailbox
	Params []RcptParam
}

// Data announces the message content. It is the only body-bearing command.
type Data struct{}

// Quit ends the session.
type Quit struct{}

func (Ehlo) isRequest()     {}
func (StartTLS) isRequest() {}
func (Auth) isRequest()     {}
func (Mail) isRequest()     {}
func (Rcpt) isRequest()     {}
func (Data) isRequest()     {}
func (Quit) isRequest()     {}

// NewAuth returns "AUTH <method> <data>". Both must be non-empty.
func NewAuth(method, data string) (Auth, error) {
	if method == "" || data == "" {
		return Auth{}, ErrInvalidAuth
	}
	return Auth{method: method, data: data, hasMethod: true, hasData: true}, nil
}

// NewAuthMethod returns "AUTH <method>" without an initial response.
func NewAuthMethod(method string) (Auth, error) {
	if method == "" {
		return Auth{}, ErrInvalidAuth
	}
	return Auth{method: method, hasMethod: true}, nil
}

// NewAuthResponse returns a bare continuation line carrying data.
func NewAuthResponse(data string) Auth {
	return Auth{data: data, hasData: true}
}

// Method returns the SASL mechanism name, if any.
func (a Auth) Method() (string, bool) { return a.method, a.hasMethod }

// Data returns the response data, if any.
func (a Auth) Data() (string, bool) { return a.data, a.hasData }

// IsContinuation reports whether a is a bare response line.
func (a Auth) IsContinuation() bool { return !a.hasMethod && a.hasData }

// NewMail returns a MAIL command owning a copy of params.
func NewMail(from Mailbox, params ...MailParam) Mail {
	return Mail{From: from, Params: slices.Clone(params)}
}

// NewRcpt returns a RCPT command owning a copy of params.
func NewRcpt(to Mailbox, params ...RcptParam) Rcpt {
	return Rcpt{To: to, Params: slices.Clone(params)}
}

// RequiresSMTPUTF8 reports whether the reverse path needs SMTPUTF8.
func (m Mail) RequiresSMTPUTF8() bool {
	return m.From.RequiresSMTPUTF8()
}

func (r Ehlo) AppendTo(dst []byte) []byte {
	if r.ID == nil {
		panic("smtp: EHLO without client identifier")
	}
	dst = append(dst, "EHLO "...)
	dst = append(dst, r.ID.String()...)
	return append(dst, crlf...)
}

func (StartTLS) AppendTo(dst []byte) []byte {
	return append(dst, "STARTTLS\r\n"...)
}

func (a Auth) AppendTo(dst []byte) []byte {
	switch {
	case a.hasMethod && a.hasData:
		dst = append(dst, "AUTH "...)
		dst = append(dst, a.method...)
		dst = append(dst, ' ')
		dst = append(dst, a.data...)
	case a.hasMethod:
		dst = append(dst, "AUTH "...)
		dst = append(dst, a.method...)
	case a.hasData:
		dst = append(dst, a.data...)
	default:
		panic(ErrInvalidAuth)
	}
	return append(dst, crlf...)
}

func (r Mail) AppendTo(dst []byte) []byte {
	dst = append(dst, "MAIL FROM:"...)
	dst = r.From.appendTo(dst)
	for _, p := range r.Params {
		dst = append(dst, ' ')
		dst = p.appendParam(dst)
	}
	return append(dst, crlf...)
}

func (r Rcpt) AppendTo(dst []byte) []byte {
	dst = append(dst, "RCPT TO:"...)
	dst = r.To.appendTo(dst)
	for _, p := range r.Params {
		dst = append(dst, ' ')
		dst = p.appendParam(dst)
	}
	return append(dst, crlf...)
}

func (Data) AppendTo(dst []byte) []byte {
	return append(dst, "DATA\r\n"...)
}

func (Quit) AppendTo(dst []byte) []byte {
	return append(dst, "QUIT\r\n"...)
}

func (r Ehlo) String() string     { return string(r.AppendTo(nil)) }
func (r StartTLS) String() string { return string(r.AppendTo(nil)) }
func (a Auth) String() string     { return string(a.AppendTo(nil)) }
func (r Mail) String() string     { return string(r.AppendTo(nil)) }
func (r Rcpt) String() string     { return string(r.AppendTo(nil)) }
func (r Data) String() string     { return string(r.AppendTo(nil)) }
func (r Quit) String() string     { return string(r.AppendTo(nil)) }

func (Ehlo) Command() Command     { return CmdEhlo }
func (StartTLS) Command() Command { return CmdStartTLS }
func (Auth) Command() Command     { return CmdAuth }
func (Mail) Command() Command     { return CmdMail }
func (Rcpt) Command() Command     { return CmdRcpt }
func (Data) Command() Command     { return CmdData }
func (Quit) Command() Command     { return CmdQuit }

// redacted returns the line as it may appear in logs. AUTH payloads are
// replaced so credentials never reach a log sink.
func redacted(r Request) string {
	switch req := r.(type) {
	case Auth:
		if req.hasMethod {
			if req.hasData {
				return "AUTH " + req.method + " [redacted]"
			}
			return "AUTH " + req.method
		}
		return "[redacted]"
	case Ehlo, StartTLS, Mail, Rcpt, Data, Quit:
		line := r.String()
		return line[:len(line)-len(crlf)]
	default:
		panic(fmt.Sprintf("smtp: unknown request type %T", r))
	}
}
