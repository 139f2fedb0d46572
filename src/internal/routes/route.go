package routes

import (
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// Route is the payload stored in the lookup table.
type Route struct {
	Prefix    ipv4.Prefix  `json:"prefix"`
	Name      string       `json:"name"`
	Gateway   ipv4.Address `json:"gateway,omitempty"` // 0.0.0.0 means directly connected
	Interface string       `json:"interface,omitempty"`
	Metric    int          `json:"metric,omitempty"`
	Source    string       `json:"source"`
}

// FromConfig converts a validated route entry. Dirty host bits in the prefix are cleared.
func FromConfig(rc *config.RouteConfig, source string) (*Route, error) {
	if err := config.ValidateRoute(rc); err != nil {
		return nil, err
	}

	pfx, err := ipv4.ParsePrefix(rc.Prefix)
	if err != nil {
		return nil, err
	}

	r := &Route{
		Prefix:    pfx,
		Name:      rc.Name,
		Interface: rc.Interface,
		Metric:    rc.Metric,
		Source:    source,
	}
	if rc.Gateway != "" {
		if r.Gateway, err = ipv4.ParseAddress(rc.Gateway); err != nil {
			return nil, err
		}
	}
	if r.Name == "" {
		r.Name = pfx.String()
	}
	return r, nil
}

// HasGateway reports whether the route has a next hop.
func (r *Route) HasGateway() bool {
	return r.Gateway != 0
}

func (r *Route) String() string {
	s := fmt.Sprintf("%s %s", r.Prefix, r.Name)
	if r.HasGateway() {
		s += " via " + r.Gateway.String()
	}
	if r.Interface != "" {
		s += " dev " + r.Interface
	}
	if r.Metric != 0 {
		s += fmt.Sprintf(" metric %d", r.Metric)
	}
	return s + " [" + r.Source + "]"
}
