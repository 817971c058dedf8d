package smtpcmd

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAuth     = errors.New("smtp: AUTH requires a mechanism or response data")
	ErrInvalidClientID = errors.New("smtp: invalid client identifier")
	ErrBodyExpected    = errors.New("smtp: message body expected after DATA")
	ErrBodyNotExpected = errors.New("smtp: no body-bearing command pending")
	ErrNotImplemented  = errors.New("smtp: not implemented")
)

// AddressFormatError is returned when mailbox text is rejected by the
// address parser. Err is the parser's error, unmodified.
type AddressFormatError struct {
	Input string
	Err   error
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("smtp: invalid address %q: %v", e.Input, e.Err)
}

func (e *AddressFormatError) Unwrap() error {
	return e.Err
}

// ParseError is returned by a Parser when a command line cannot be decoded.
type ParseError struct {
	Input []byte
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("smtp: cannot parse command %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
