// Package dns provides DNS resolvers and EHLO identity discovery.
package dns

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/synqronlabs/smtpcmd"
	"github.com/synqronlabs/smtpcmd/utils"
)

// Identify returns the client identifier to announce in EHLO for the local
// endpoint addr.
//
// A PTR name is used only when it resolves back to the same address
// (forward-confirmed reverse DNS). Otherwise the address literal is
// returned. DNS failures fall back to the literal; only context errors and
// a bad addr are returned.
func Identify(ctx context.Context, r Resolver, addr net.Addr) (smtpcmd.ClientID, error) {
	ip, err := utils.AddrFromNetAddr(addr)
	if err != nil {
		return nil, fmt.Errorf("dns: %w", err)
	}
	literal := smtpcmd.ClientIDFromAddr(ip)

	ptr, err := r.LookupAddr(ctx, net.IP(ip.AsSlice()))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return literal, nil
	}

	for _, name := range ptr.Records {
		if confirmed(ctx, r, name, ip) {
			id, err := smtpcmd.ParseClientID(trimDot(name))
			if err != nil {
				continue
			}
			return id, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return literal, nil
}

// confirmed reports whether name has an A or AAAA record equal to ip.
func confirmed(ctx context.Context, r Resolver, name string, ip netip.Addr) bool {
	res, err := r.LookupIP(ctx, name)
	if err != nil {
		return false
	}
	for _, rec := range res.Records {
		a, ok := netip.AddrFromSlice(rec)
		if ok && a.Unmap() == ip {
			return true
		}
	}
	return false
}
