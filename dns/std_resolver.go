package dns

import (
	"context"
	"errors"
	"fmt"
	"net"

	mdns "github.com/miekg/dns"
)

// StdResolver implements Resolver on top of net.Resolver.
// Authentic is always false.
type StdResolver struct {
	resolver *net.Resolver
}

// NewStdResolver wraps r. A nil r uses net.DefaultResolver.
func NewStdResolver(r *net.Resolver) *StdResolver {
	if r == nil {
		r = net.DefaultResolver
	}
	return &StdResolver{resolver: r}
}

// LookupIP retrieves A and AAAA records.
func (r *StdResolver) LookupIP(ctx context.Context, domain string) (Result[net.IP], error) {
	addrs, err := r.resolver.LookupNetIP(ctx, "ip", trimDot(domain))
	if err != nil {
		return Result[net.IP]{}, convertError(err)
	}
	if len(addrs) == 0 {
		return Result[net.IP]{}, ErrDNSNotFound
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		ips = append(ips, net.IP(a.Unmap().AsSlice()))
	}
	return Result[net.IP]{Records: ips}, nil
}

// LookupAddr performs a reverse DNS lookup.
func (r *StdResolver) LookupAddr(ctx context.Context, ip net.IP) (Result[string], error) {
	if ip == nil {
		return Result[string]{}, fmt.Errorf("dns: nil IP address")
	}

	names, err := r.resolver.LookupAddr(ctx, ip.String())
	if err != nil {
		return Result[string]{}, convertError(err)
	}
	if len(names) == 0 {
		return Result[string]{}, ErrDNSNotFound
	}

	absolute := make([]string, len(names))
	for i, name := range names {
		absolute[i] = mdns.Fqdn(name)
	}
	return Result[string]{Records: absolute}, nil
}

// convertError maps *net.DNSError onto the package errors.
func convertError(err error) error {
	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) {
		return fmt.Errorf("dns lookup failed: %w", err)
	}

	switch {
	case dnsErr.IsNotFound:
		return ErrDNSNotFound
	case dnsErr.IsTimeout:
		return ErrDNSTimeout
	case dnsErr.IsTemporary:
		return ErrDNSServFail
	default:
		return fmt.Errorf("dns lookup failed: %w", err)
	}
}
