package io

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var (
	ErrLineTooLong   = errors.New("line too long")
	ErrBadLineEnding = errors.New("line not terminated by CRLF")
)

// WriteLine writes a single command line. The line must end in CRLF and
// contain no other CR or LF. If max > 0, lines longer than max octets
// (CRLF included) are rejected. Nothing is written on error.
func WriteLine(w *bufio.Writer, line []byte, max int) error {
	if err := validateLine(line, max); err != nil {
		return err
	}
	_, err := w.Write(line)
	return err
}

// validateLine checks length and strict CRLF termination.
func validateLine(line []byte, max int) error {
	if max > 0 && len(line) > max {
		return ErrLineTooLong
	}
	n := len(line)
	if n < 2 || line[n-2] != '\r' || line[n-1] != '\n' {
		return ErrBadLineEnding
	}
	// SMTP smuggling: no embedded line breaks.
	if bytes.IndexByte(line[:n-2], '\n') >= 0 || bytes.IndexByte(line[:n-2], '\r') >= 0 {
		return ErrBadLineEnding
	}
	return nil
}

// WriteDotStuffed copies a message body from r to w, doubling any period
// at the start of a line and turning bare LF and bare CR into CRLF, then
// writes the "<CRLF>.<CRLF>" terminator. It returns the number of body
// octets read.
func WriteDotStuffed(w *bufio.Writer, r io.Reader) (int64, error) {
	buf := make([]byte, 4096)
	atLineStart := true
	// CRLF was already written for a CR; a following LF is dropped.
	afterCR := false
	var total int64

	for {
		n, err := r.Read(buf)
		total += int64(n)
		for _, b := range buf[:n] {
			if afterCR {
				afterCR = false
				if b == '\n' {
					continue
				}
			}

			switch b {
			case '\r', '\n':
				if _, werr := w.WriteString("\r\n"); werr != nil {
					return total, werr
				}
				atLineStart = true
				afterCR = b == '\r'
				continue
			case '.':
				if atLineStart {
					if werr := w.WriteByte('.'); werr != nil {
						return total, werr
					}
				}
			}
			if werr := w.WriteByte(b); werr != nil {
				return total, werr
			}
			atLineStart = false
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}
	}

	if !atLineStart {
		if _, err := w.WriteString("\r\n"); err != nil {
			return total, err
		}
	}

	_, err := w.WriteString(".\r\n")
	return total, err
}
