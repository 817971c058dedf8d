package smtpcmd

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// ClientID identifies the client in EHLO (RFC 5321 Section 4.1.1.1).
// It is implemented only by Domain, IPv4, IPv6 and AddressLiteral.
type ClientID interface {
	String() string
	isClientID()
}

// Domain is a fully-qualified domain name, rendered as-is.
type Domain string

// IPv4 is an IPv4 address, rendered in dotted-decimal form.
type IPv4 [4]byte

// IPv6 is an IPv6 address, rendered as "IPv6:" followed by its RFC 5952 form.
type IPv6 [16]byte

// AddressLiteral is a general address literal ("tag:value").
// Neither field is validated or escaped.
type AddressLiteral struct {
	Tag   string
	Value string
}

func (Domain) isClientID()         {}
func (IPv4) isClientID()           {}
func (IPv6) isClientID()           {}
func (AddressLiteral) isClientID() {}

func (d Domain) String() string { return string(d) }

func (a IPv4) String() string { return netip.AddrFrom4(a).String() }

func (a IPv6) String() string { return "IPv6:" + netip.AddrFrom16(a).String() }

func (a AddressLiteral) String() string { return a.Tag + ":" + a.Value }

// ClientIDFromAddr returns IPv4 for IPv4 and IPv4-mapped addresses and IPv6
// otherwise. Zones are dropped.
func ClientIDFromAddr(addr netip.Addr) ClientID {
	addr = addr.Unmap()
	if addr.Is4() {
		return IPv4(addr.As4())
	}
	return IPv6(addr.WithZone("").As16())
}

// ParseClientID parses the textual form of an EHLO argument.
//
// Accepted forms are address literals ("[192.0.2.1]", "[IPv6:2001:db8::1]",
// "[tag:value]"), the unbracketed forms produced by ClientID.String, and
// domain names. Domains are lowercased and internationalized domains are
// converted to A-labels.
func ParseClientID(s string) (ClientID, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidClientID)
	}

	literal := s
	bracketed := strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
	if bracketed {
		literal = s[1 : len(s)-1]
	}

	if rest, ok := cutPrefixFold(literal, "IPv6:"); ok {
		addr, err := netip.ParseAddr(rest)
		if err != nil || !addr.Is6() || addr.Is4In6() || addr.Zone() != "" {
			return nil, fmt.Errorf("%w: bad IPv6 literal %q", ErrInvalidClientID, s)
		}
		return IPv6(addr.As16()), nil
	}

	if addr, err := netip.ParseAddr(literal); err == nil {
		if addr.Is4() {
			return IPv4(addr.As4()), nil
		}
		// RFC 5321 requires the IPv6 tag.
		return nil, fmt.Errorf("%w: untagged IPv6 literal %q", ErrInvalidClientID, s)
	}

	if bracketed {
		tag, value, found := strings.Cut(literal, ":")
		if !found || tag == "" || value == "" {
			return nil, fmt.Errorf("%w: bad address literal %q", ErrInvalidClientID, s)
		}
		return AddressLiteral{Tag: tag, Value: value}, nil
	}

	// STD3 rules restrict every label to letters, digits and hyphens.
	name, err := idna.Lookup.ToASCII(strings.TrimSuffix(s, "."))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClientID, err)
	}
	if _, ok := dns.IsDomainName(name); !ok || name == "" {
		return nil, fmt.Errorf("%w: bad domain %q", ErrInvalidClientID, s)
	}
	return Domain(name), nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
