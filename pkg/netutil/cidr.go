package netutil

import (
	"encoding/binary"
	"math/big"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// NthHost returns the address at zero-based offset n inside cidr. Host bits
// set in cidr are ignored, and a bare address is treated as a single-host
// network. The second result is false when cidr does not parse or n falls
// outside the network.
func NthHost(cidr string, n int) (string, bool) {
	prefix, ok := parseNetwork(cidr)
	if !ok || n < 0 {
		return "", false
	}

	hostBits := prefix.Addr().BitLen() - prefix.Bits()
	size := new(big.Int).Lsh(big.NewInt(1), uint(hostBits))
	offset := big.NewInt(int64(n))
	if offset.Cmp(size) >= 0 {
		return "", false
	}

	raw := prefix.Addr().AsSlice()
	host := new(big.Int).SetBytes(raw)
	host.Add(host, offset)

	addr, ok := netip.AddrFromSlice(host.FillBytes(make([]byte, len(raw))))
	if !ok {
		return "", false
	}
	return addr.String(), true
}

// parseNetwork accepts a prefix length, or for IPv4 a netmask or hostmask,
// after the slash.
func parseNetwork(value string) (netip.Prefix, bool) {
	value = strings.TrimSpace(value)
	addrPart, suffix, hasSuffix := strings.Cut(value, "/")
	addr, err := netip.ParseAddr(addrPart)
	if err != nil || addr.Zone() != "" {
		return netip.Prefix{}, false
	}

	length := addr.BitLen()
	if hasSuffix {
		var ok bool
		if length, ok = prefixLength(addr, suffix); !ok {
			return netip.Prefix{}, false
		}
	}
	prefix, err := addr.Prefix(length)
	if err != nil {
		return netip.Prefix{}, false
	}
	return prefix, true
}

func prefixLength(addr netip.Addr, suffix string) (int, bool) {
	if suffix != "" && strings.Trim(suffix, "0123456789") == "" {
		n, err := strconv.Atoi(suffix)
		return n, err == nil && n <= addr.BitLen()
	}
	if !addr.Is4() {
		return 0, false
	}
	mask, err := netip.ParseAddr(suffix)
	if err != nil || !mask.Is4() {
		return 0, false
	}
	m := binary.BigEndian.Uint32(mask.AsSlice())
	if n, ok := leadingOnes(m); ok {
		return n, true
	}
	// hostmask, e.g. 0.0.0.255
	return leadingOnes(^m)
}

// leadingOnes returns the number of leading one bits of m when the rest of
// m is all zeros.
func leadingOnes(m uint32) (int, bool) {
	n := bits.LeadingZeros32(^m)
	return n, m<<n == 0
}
