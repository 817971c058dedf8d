package smtpcmd

import (
	"net/mail"
	"strings"

	"github.com/synqronlabs/smtpcmd/utils"
)

// MailboxAddress represents an email address as per RFC 5321 Section 4.1.2.
type MailboxAddress struct {
	// LocalPart is the portion before the @ sign.
	// May contain UTF-8 characters if SMTPUTF8 is used.
	LocalPart string

	// Domain is the portion after the @ sign.
	Domain string
}

// String returns the address in the standard "local-part@domain" format.
// A local part that is not a dot-atom is written as a quoted string
// (RFC 5321 Section 4.1.2).
func (m MailboxAddress) String() string {
	if m.LocalPart == "" && m.Domain == "" {
		return ""
	}
	if isDotAtom(m.LocalPart) {
		return m.LocalPart + "@" + m.Domain
	}
	return quoteLocalPart(m.LocalPart) + "@" + m.Domain
}

// isDotAtom reports whether s is one or more atoms joined by single dots.
// Bytes >= 0x80 are accepted as UTF-8 atext (RFC 6531).
func isDotAtom(s string) bool {
	if s == "" || s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.':
			if s[i-1] == '.' {
				return false
			}
		case isAtext(c):
		default:
			return false
		}
	}
	return true
}

func isAtext(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c >= 0x80:
		return true
	}
	return strings.IndexByte("!#$%&'*+-/=?^_`{|}~", c) >= 0
}

func quoteLocalPart(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// AddressParser turns mailbox text into a validated address.
type AddressParser func(s string) (MailboxAddress, error)

// ParseAddress parses an email address string into a MailboxAddress.
// Supports both simple "user@domain" and RFC 5322 formatted addresses; any
// display name is discarded.
func ParseAddress(addr string) (MailboxAddress, error) {
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return MailboxAddress{}, err
	}

	local, domain := parsed.Address, ""
	if i := strings.LastIndexByte(parsed.Address, '@'); i >= 0 {
		local, domain = parsed.Address[:i], parsed.Address[i+1:]
	}

	return MailboxAddress{
		LocalPart: local,
		Domain:    domain,
	}, nil
}

// Mailbox is a reverse-path or forward-path. The zero value is the null
// path "<>".
type Mailbox struct {
	addr  MailboxAddress
	valid bool
}

// NullMailbox returns the null path.
func NullMailbox() Mailbox {
	return Mailbox{}
}

// MailboxOf wraps an already validated address.
// The zero MailboxAddress yields the null path.
func MailboxOf(addr MailboxAddress) Mailbox {
	if addr == (MailboxAddress{}) {
		return Mailbox{}
	}
	return Mailbox{addr: addr, valid: true}
}

// ParseMailbox parses mailbox text with ParseAddress.
// The empty string yields the null path.
func ParseMailbox(s string) (Mailbox, error) {
	return ParseMailboxWith(ParseAddress, s)
}

// ParseMailboxWith is like ParseMailbox but delegates validation to parse.
// A parser failure is returned as *AddressFormatError wrapping the parser's
// error unchanged.
func ParseMailboxWith(parse AddressParser, s string) (Mailbox, error) {
	if s == "" {
		return Mailbox{}, nil
	}
	addr, err := parse(s)
	if err != nil {
		return Mailbox{}, &AddressFormatError{Input: s, Err: err}
	}
	return MailboxOf(addr), nil
}

// MustParseMailbox is like ParseMailbox but panics on error.
// It is intended for tests and package-level variables.
func MustParseMailbox(s string) Mailbox {
	m, err := ParseMailbox(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsNull reports whether m is the null path.
func (m Mailbox) IsNull() bool {
	return !m.valid
}

// Address returns the wrapped address, if any.
func (m Mailbox) Address() (MailboxAddress, bool) {
	return m.addr, m.valid
}

// String returns the path in angle bracket format as used in SMTP commands.
func (m Mailbox) String() string {
	if !m.valid {
		return "<>"
	}
	return "<" + m.addr.String() + ">"
}

// RequiresSMTPUTF8 reports whether the address contains non-ASCII text.
func (m Mailbox) RequiresSMTPUTF8() bool {
	return m.valid && (utils.ContainsNonASCII(m.addr.LocalPart) || utils.ContainsNonASCII(m.addr.Domain))
}

func (m Mailbox) appendTo(dst []byte) []byte {
	if !m.valid {
		return append(dst, "<>"...)
	}
	dst = append(dst, '<')
	dst = append(dst, m.addr.String()...)
	return append(dst, '>')
}
