package smtpcmd

import "fmt"

// Frame pairs a request with whether a raw payload must follow it.
type Frame struct {
	Message Request
	HasBody bool
}

// FrameOf classifies r for a transport.
func FrameOf(r Request) Frame {
	return Frame{Message: r, HasBody: IsBodyBearing(r)}
}

// IsBodyBearing reports whether r is followed by a message payload
// terminated by "<CRLF>.<CRLF>". Only DATA is.
func IsBodyBearing(r Request) bool {
	switch r.(type) {
	case Data:
		return true
	case Ehlo, StartTLS, Auth, Mail, Rcpt, Quit:
		return false
	default:
		panic(fmt.Sprintf("smtp: unknown request type %T", r))
	}
}
