package dns

import (
	"context"
	"net"
	"slices"
)

// MockResolver is a Resolver used for testing.
// PTR is keyed by IP string; A and AAAA by FQDN (with trailing dot).
type MockResolver struct {
	PTR  map[string][]string
	A    map[string][]string
	AAAA map[string][]string

	// Fail contains requests that return ErrDNSServFail.
	// Format: "type name", e.g. "ptr 192.0.2.1" or "a mail.example.com.".
	Fail []string

	// AllAuthentic sets Authentic in every successful response.
	AllAuthentic bool
}

var _ Resolver = MockResolver{}

func (r MockResolver) check(ctx context.Context, qtype, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if slices.Contains(r.Fail, qtype+" "+name) {
		return ErrDNSServFail
	}
	return nil
}

// LookupIP returns A and AAAA records for the given domain.
func (r MockResolver) LookupIP(ctx context.Context, domain string) (Result[net.IP], error) {
	fqdn := ensureFQDN(domain)
	if err := r.check(ctx, "a", fqdn); err != nil {
		return Result[net.IP]{}, err
	}
	if err := r.check(ctx, "aaaa", fqdn); err != nil {
		return Result[net.IP]{}, err
	}

	var ips []net.IP
	for _, s := range r.A[fqdn] {
		ips = append(ips, net.ParseIP(s))
	}
	for _, s := range r.AAAA[fqdn] {
		ips = append(ips, net.ParseIP(s))
	}

	if len(ips) == 0 {
		return Result[net.IP]{}, ErrDNSNotFound
	}
	return Result[net.IP]{Records: ips, Authentic: r.AllAuthentic}, nil
}

// LookupAddr performs a reverse DNS lookup.
func (r MockResolver) LookupAddr(ctx context.Context, ip net.IP) (Result[string], error) {
	key := ip.String()
	if err := r.check(ctx, "ptr", key); err != nil {
		return Result[string]{}, err
	}

	records := r.PTR[key]
	if len(records) == 0 {
		return Result[string]{}, ErrDNSNotFound
	}

	names := make([]string, len(records))
	for i, name := range records {
		names[i] = ensureFQDN(name)
	}
	return Result[string]{Records: names, Authentic: r.AllAuthentic}, nil
}

// ensureFQDN ensures the name ends with a dot.
func ensureFQDN(name string) string {
	if len(name) == 0 || name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}
