package netutil

import (
	"net/netip"
	"slices"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
)

// Ranges that are not globally reachable. Resolvers inside them would loop
// back into the cluster, so they never make it into the fallback list.
var privateNetworks = mustPrefixes(
	"0.0.0.0/8",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/29",
	"192.0.0.170/31",
	"192.0.2.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"240.0.0.0/4",
	"255.255.255.255/32",
	"::1/128",
	"::/128",
	"100::/64",
	"2001::/23",
	"2001:db8::/32",
	"2001:10::/28",
	"fc00::/7",
	"fe80::/10",
)

func mustPrefixes(values ...string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		prefixes = append(prefixes, netip.MustParsePrefix(v))
	}
	return prefixes
}

// IsPrivate reports whether addr belongs to a non-globally-reachable range.
// IPv4-mapped IPv6 addresses are judged by the IPv4 address they carry.
func IsPrivate(addr netip.Addr) bool {
	addr = addr.WithZone("").Unmap()
	for _, p := range privateNetworks {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// PublicDNS keeps the servers that parse as public addresses, in order and
// as written, and appends 1.1.1.1 when it is not already there.
func PublicDNS(servers []string) []string {
	public := make([]string, 0, len(servers)+1)
	for _, server := range servers {
		addr, err := netip.ParseAddr(server)
		if err != nil {
			continue
		}
		if !IsPrivate(addr) {
			public = append(public, server)
		}
	}
	if !slices.Contains(public, domain.FallbackDNSServer) {
		public = append(public, domain.FallbackDNSServer)
	}
	return public
}
