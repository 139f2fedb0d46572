package resolver

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/keen-lpm/src/internal/errors"
	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

const defaultDNSPort = "53"

// Resolver resolves A records through a single upstream.
type Resolver struct {
	address string
	client  *dns.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	addrs    []ipv4.Address
	deadline time.Time
}

// NewResolver creates a resolver for upstream ("host" or "host:port").
func NewResolver(upstream string, timeout time.Duration) (*Resolver, error) {
	host := upstream
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, defaultDNSPort)
	}
	if _, _, err := net.SplitHostPort(host); err != nil {
		return nil, fmt.Errorf("invalid DNS upstream address: %w", err)
	}

	return &Resolver{
		address: host,
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		cache: make(map[string]cacheEntry),
		now:   time.Now,
	}, nil
}

// Upstream returns the host:port queried.
func (r *Resolver) Upstream() string {
	return r.address
}

// LookupA returns the IPv4 addresses of host in answer order. CNAME records
// in the answer are followed implicitly by collecting every A record.
func (r *Resolver) LookupA(ctx context.Context, host string) ([]ipv4.Address, error) {
	fqdn := dns.Fqdn(strings.ToLower(host))
	if addrs, ok := r.cached(fqdn); ok {
		log.Debugf("Cache hit for %s", fqdn)
		return addrs, nil
	}

	req := new(dns.Msg)
	req.SetQuestion(fqdn, dns.TypeA)
	req.RecursionDesired = true

	log.Debugf("[%04x] Querying %s for %s A", req.Id, r.address, fqdn)
	resp, _, err := r.client.ExchangeContext(ctx, req, r.address)
	if err != nil {
		return nil, errors.NewResolveError(fmt.Sprintf("failed to resolve %s", host), err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, errors.NewResolveError(fmt.Sprintf("failed to resolve %s: %s", host, dns.RcodeToString[resp.Rcode]), nil)
	}

	var (
		addrs  []ipv4.Address
		minTTL uint32
	)
	for _, rr := range resp.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		ip := a.A.To4()
		if ip == nil {
			continue
		}
		addrs = append(addrs, ipv4.AddressFrom4([4]byte(ip)))
		if minTTL == 0 || a.Hdr.Ttl < minTTL {
			minTTL = a.Hdr.Ttl
		}
	}
	if len(addrs) == 0 {
		return nil, errors.NewResolveError(fmt.Sprintf("no A records for %s", host), nil)
	}

	r.store(fqdn, addrs, minTTL)
	return addrs, nil
}

func (r *Resolver) cached(fqdn string) ([]ipv4.Address, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.cache[fqdn]
	if !ok {
		return nil, false
	}
	if !r.now().Before(entry.deadline) {
		delete(r.cache, fqdn)
		return nil, false
	}
	return entry.addrs, true
}

func (r *Resolver) store(fqdn string, addrs []ipv4.Address, ttl uint32) {
	if ttl == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[fqdn] = cacheEntry{addrs: addrs, deadline: r.now().Add(time.Duration(ttl) * time.Second)}
}

// IsHostname reports whether s looks like a DNS name rather than an address
// or prefix. Dotted numbers such as "300.1.1.1" are not hostnames.
func IsHostname(s string) bool {
	if s == "" || strings.ContainsAny(s, "/:") {
		return false
	}
	if _, ok := dns.IsDomainName(s); !ok {
		return false
	}

	labels := dns.SplitDomainName(s)
	if len(labels) == 0 {
		return false
	}
	last := labels[len(labels)-1]
	for _, c := range last {
		if c < '0' || c > '9' {
			return true
		}
	}
	return false
}
