package smtpcmd

import (
	"fmt"
	"strconv"

	"github.com/synqronlabs/smtpcmd/xtext"
)

// BodyKind is the value of the BODY parameter (RFC 6152).
type BodyKind int

const (
	// Body7Bit indicates a 7-bit ASCII message body.
	Body7Bit BodyKind = iota
	// Body8BitMIME indicates an 8-bit MIME message body.
	Body8BitMIME
)

func (k BodyKind) String() string {
	switch k {
	case Body7Bit:
		return "7BIT"
	case Body8BitMIME:
		return "8BITMIME"
	default:
		return "BodyKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DSNReturn is the value of the RET parameter (RFC 3461 Section 4.3).
type DSNReturn string

const (
	DSNReturnFull    DSNReturn = "FULL"
	DSNReturnHeaders DSNReturn = "HDRS"
)

// DSNNotify is one of the values of the NOTIFY parameter (RFC 3461 Section 4.1).
type DSNNotify string

const (
	DSNNotifyNever   DSNNotify = "NEVER"
	DSNNotifySuccess DSNNotify = "SUCCESS"
	DSNNotifyFailure DSNNotify = "FAILURE"
	DSNNotifyDelay   DSNNotify = "DELAY"
)

// MailParam is a MAIL FROM extension parameter.
type MailParam interface {
	String() string
	appendParam(dst []byte) []byte
	isMailParam()
}

// RcptParam is a RCPT TO extension parameter.
type RcptParam interface {
	String() string
	appendParam(dst []byte) []byte
	isRcptParam()
}

// BodyParam renders as "BODY=7BIT" or "BODY=8BITMIME".
type BodyParam struct {
	Kind BodyKind
}

// SizeParam declares the message size in octets (RFC 1870).
type SizeParam struct {
	Size uint64
}

// SMTPUTF8Param renders as "SMTPUTF8" (RFC 6531).
type SMTPUTF8Param struct{}

// RequireTLSParam renders as "REQUIRETLS" (RFC 8689).
type RequireTLSParam struct{}

// RetParam renders as "RET=FULL" or "RET=HDRS". Any other Return,
// including the zero value, panics when rendered.
type RetParam struct {
	Return DSNReturn
}

// EnvIDParam carries the DSN envelope identifier, xtext-encoded.
type EnvIDParam struct {
	ID string
}

// AuthParam carries the authorization identity of the submitter
// (RFC 4954 Section 5). A null mailbox renders as "AUTH=<>".
type AuthParam struct {
	Identity Mailbox
}

// NotifyParam renders the comma-separated NOTIFY list. The list must be
// non-empty, hold only known values, and use NEVER alone; anything else,
// including the zero value, panics when rendered.
type NotifyParam struct {
	Notify []DSNNotify
}

// ORcptParam carries the original recipient. AddrType defaults to "rfc822".
type ORcptParam struct {
	AddrType string
	Addr     string
}

// OtherParam is a generic keyword parameter with an optional value.
// It is valid for both MAIL FROM and RCPT TO.
type OtherParam struct {
	keyword  string
	value    string
	hasValue bool
}

// NewFlagParam returns a keyword parameter without a value.
func NewFlagParam(keyword string) OtherParam {
	return OtherParam{keyword: keyword}
}

// NewValueParam returns a keyword parameter whose value is xtext-encoded
// on the wire.
func NewValueParam(keyword, value string) OtherParam {
	return OtherParam{keyword: keyword, value: value, hasValue: true}
}

// Keyword returns the parameter keyword.
func (p OtherParam) Keyword() string { return p.keyword }

// Value returns the unencoded value, if any.
func (p OtherParam) Value() (string, bool) { return p.value, p.hasValue }

func (BodyParam) isMailParam()       {}
func (SizeParam) isMailParam()       {}
func (SMTPUTF8Param) isMailParam()   {}
func (RequireTLSParam) isMailParam() {}
func (RetParam) isMailParam()        {}
func (EnvIDParam) isMailParam()      {}
func (AuthParam) isMailParam()       {}
func (OtherParam) isMailParam()      {}

func (NotifyParam) isRcptParam() {}
func (ORcptParam) isRcptParam()  {}
func (OtherParam) isRcptParam()  {}

func (p BodyParam) appendParam(dst []byte) []byte {
	switch p.Kind {
	case Body7Bit, Body8BitMIME:
	default:
		panic(fmt.Sprintf("smtp: invalid body kind %d", int(p.Kind)))
	}
	dst = append(dst, "BODY="...)
	return append(dst, p.Kind.String()...)
}

func (p SizeParam) appendParam(dst []byte) []byte {
	dst = append(dst, "SIZE="...)
	return strconv.AppendUint(dst, p.Size, 10)
}

func (SMTPUTF8Param) appendParam(dst []byte) []byte {
	return append(dst, "SMTPUTF8"...)
}

func (RequireTLSParam) appendParam(dst []byte) []byte {
	return append(dst, "REQUIRETLS"...)
}

func (p RetParam) appendParam(dst []byte) []byte {
	switch p.Return {
	case DSNReturnFull, DSNReturnHeaders:
	default:
		panic(fmt.Sprintf("smtp: invalid RET value %q", string(p.Return)))
	}
	dst = append(dst, "RET="...)
	return append(dst, string(p.Return)...)
}

func (p EnvIDParam) appendParam(dst []byte) []byte {
	dst = append(dst, "ENVID="...)
	return xtext.Append(dst, p.ID)
}

func (p AuthParam) appendParam(dst []byte) []byte {
	dst = append(dst, "AUTH="...)
	addr, ok := p.Identity.Address()
	if !ok {
		return append(dst, "<>"...)
	}
	return xtext.Append(dst, addr.String())
}

func (p NotifyParam) appendParam(dst []byte) []byte {
	if len(p.Notify) == 0 {
		panic("smtp: empty NOTIFY list")
	}
	for _, n := range p.Notify {
		switch n {
		case DSNNotifySuccess, DSNNotifyFailure, DSNNotifyDelay:
		case DSNNotifyNever:
			if len(p.Notify) > 1 {
				panic("smtp: NOTIFY=NEVER combined with other values")
			}
		default:
			panic(fmt.Sprintf("smtp: invalid NOTIFY value %q", string(n)))
		}
	}
	dst = append(dst, "NOTIFY="...)
	for i, n := range p.Notify {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, string(n)...)
	}
	return dst
}

func (p ORcptParam) appendParam(dst []byte) []byte {
	addrType := p.AddrType
	if addrType == "" {
		addrType = "rfc822"
	}
	dst = append(dst, "ORCPT="...)
	dst = append(dst, addrType...)
	dst = append(dst, ';')
	return xtext.Append(dst, p.Addr)
}

func (p OtherParam) appendParam(dst []byte) []byte {
	dst = append(dst, p.keyword...)
	if !p.hasValue {
		return dst
	}
	dst = append(dst, '=')
	return xtext.Append(dst, p.value)
}

func (p BodyParam) String() string       { return string(p.appendParam(nil)) }
func (p SizeParam) String() string       { return string(p.appendParam(nil)) }
func (p SMTPUTF8Param) String() string   { return string(p.appendParam(nil)) }
func (p RequireTLSParam) String() string { return string(p.appendParam(nil)) }
func (p RetParam) String() string        { return string(p.appendParam(nil)) }
func (p EnvIDParam) String() string      { return string(p.appendParam(nil)) }
func (p AuthParam) String() string       { return string(p.appendParam(nil)) }
func (p NotifyParam) String() string     { return string(p.appendParam(nil)) }
func (p ORcptParam) String() string      { return string(p.appendParam(nil)) }
func (p OtherParam) String() string      { return string(p.appendParam(nil)) }
