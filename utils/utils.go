package utils

import (
	"fmt"
	"net"
	"net/netip"
	"unicode/utf8"
)

// AddrFromNetAddr extracts the IP address of a network endpoint.
// IPv4-mapped IPv6 addresses are unmapped.
func AddrFromNetAddr(addr net.Addr) (netip.Addr, error) {
	if addr == nil {
		return netip.Addr{}, fmt.Errorf("address is nil")
	}

	var ip net.IP
	switch a := addr.(type) {
	case *net.TCPAddr:
		ip = a.IP
	case *net.UDPAddr:
		ip = a.IP
	case *net.IPAddr:
		ip = a.IP
	default:
		host, _, err := net.SplitHostPort(addr.String())
		if err != nil {
			// Maybe it's just an IP without port
			host = addr.String()
		}
		parsed, err := netip.ParseAddr(host)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("unable to extract IP from address: %v", addr)
		}
		return parsed.Unmap(), nil
	}

	parsed, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, fmt.Errorf("unable to extract IP from address: %v", addr)
	}
	return parsed.Unmap(), nil
}

// ContainsNonASCII checks if a string contains any non-ASCII characters (bytes > 127).
func ContainsNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
