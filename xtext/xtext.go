// Package xtext implements the xtext encoding used for SMTP extension
// parameter values (RFC 3461 Section 4).
//
// Only encoding is provided.
package xtext

const upperhex = "0123456789ABCDEF"

// Safe reports whether b may appear unescaped in xtext.
// Printable US-ASCII except "+" and "=" is safe.
func Safe(b byte) bool {
	return b >= 0x21 && b <= 0x7E && b != '+' && b != '='
}

// Encode returns s in xtext form. The result is always printable 7-bit ASCII.
func Encode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !Safe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	return string(Append(make([]byte, 0, len(s)+2*n), s))
}

// Append appends the xtext form of s to dst and returns the extended buffer.
func Append(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if Safe(c) {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, '+', upperhex[c>>4], upperhex[c&0x0F])
	}
	return dst
}
