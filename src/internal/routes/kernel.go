package routes

import (
	"fmt"
	"net"
	"strconv"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

// KernelRoute is one IPv4 entry of a kernel routing table.
type KernelRoute struct {
	Dst       ipv4.Prefix
	Gateway   ipv4.Address
	Interface string
	Metric    int
}

// RouteLister reads a kernel routing table once.
type RouteLister interface {
	ListRoutes(table int) ([]KernelRoute, error)
}

// NetlinkLister reads routes over rtnetlink.
type NetlinkLister struct{}

// ListRoutes returns the IPv4 unicast, blackhole, unreachable and prohibit
// routes of table.
func (NetlinkLister) ListRoutes(table int) ([]KernelRoute, error) {
	filtered, err := netlink.RouteListFiltered(netlink.FAMILY_V4, &netlink.Route{Table: table}, netlink.RT_FILTER_TABLE)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes of table %s: %w", TableName(table), err)
	}

	result := make([]KernelRoute, 0, len(filtered))
	for _, r := range filtered {
		kr, ok := convertNetlinkRoute(r)
		if !ok {
			log.Debugf("Skipping kernel route %s (type %d)", r.String(), r.Type)
			continue
		}
		if r.LinkIndex > 0 {
			if link, err := netlink.LinkByIndex(r.LinkIndex); err == nil {
				kr.Interface = link.Attrs().Name
			} else {
				kr.Interface = "if" + strconv.Itoa(r.LinkIndex)
			}
		}
		result = append(result, kr)
	}
	return result, nil
}

func convertNetlinkRoute(r netlink.Route) (KernelRoute, bool) {
	var kr KernelRoute

	switch r.Type {
	case unix.RTN_UNICAST:
	case unix.RTN_BLACKHOLE:
		kr.Interface = "blackhole"
	case unix.RTN_UNREACHABLE:
		kr.Interface = "unreachable"
	case unix.RTN_PROHIBIT:
		kr.Interface = "prohibit"
	default:
		return kr, false
	}

	// nil Dst is the default route
	if r.Dst != nil {
		pfx, ok := prefixFromIPNet(r.Dst)
		if !ok {
			return kr, false
		}
		kr.Dst = pfx
	}
	if gw := r.Gw.To4(); gw != nil {
		kr.Gateway = ipv4.AddressFrom4([4]byte(gw))
	}
	kr.Metric = r.Priority
	return kr, true
}

func prefixFromIPNet(n *net.IPNet) (ipv4.Prefix, bool) {
	ip := n.IP.To4()
	ones, bits := n.Mask.Size()
	if ip == nil || bits != ipv4.Bits {
		return ipv4.Prefix{}, false
	}
	pfx, err := ipv4.PrefixFrom(ipv4.AddressFrom4([4]byte(ip)), ones)
	return pfx, err == nil
}

// TableName returns the iproute2 name of well-known tables, else the number.
func TableName(table int) string {
	switch table {
	case unix.RT_TABLE_MAIN:
		return "main"
	case unix.RT_TABLE_LOCAL:
		return "local"
	case unix.RT_TABLE_DEFAULT:
		return "default"
	default:
		return strconv.Itoa(table)
	}
}
