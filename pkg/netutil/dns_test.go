package netutil

import (
	"net/netip"
	"testing"

	. "github.com/onsi/gomega"
)

func TestPublicDNS(t *testing.T) {
	g := NewWithT(t)

	t.Run("drops private and malformed entries and deduplicates the fallback", func(t *testing.T) {
		g.Expect(PublicDNS([]string{"1.1.1.1", "192.168.1.1", "not-an-ip"})).To(Equal([]string{"1.1.1.1"}))
	})

	t.Run("appends the fallback when missing", func(t *testing.T) {
		g.Expect(PublicDNS([]string{"8.8.8.8", "10.0.0.53"})).To(Equal([]string{"8.8.8.8", "1.1.1.1"}))
	})

	t.Run("never returns an empty list", func(t *testing.T) {
		g.Expect(PublicDNS(nil)).To(Equal([]string{"1.1.1.1"}))
		g.Expect(PublicDNS([]string{"127.0.0.1", "fd00::1"})).To(Equal([]string{"1.1.1.1"}))
	})

	t.Run("judges ipv4-mapped resolvers by their ipv4 address", func(t *testing.T) {
		g.Expect(PublicDNS([]string{"::ffff:8.8.8.8", "::ffff:192.168.1.1"})).To(Equal([]string{"::ffff:8.8.8.8", "1.1.1.1"}))
	})

	t.Run("keeps public ipv6 resolvers as written", func(t *testing.T) {
		g.Expect(PublicDNS([]string{"2606:4700:4700::1111"})).To(Equal([]string{"2606:4700:4700::1111", "1.1.1.1"}))
	})
}

func TestIsPrivate(t *testing.T) {
	g := NewWithT(t)

	for _, addr := range []string{"10.1.1.1", "172.20.0.1", "192.168.0.1", "127.0.0.1", "169.254.1.1", "192.0.2.10", "::1", "fe80::1", "fd12::1", "::ffff:10.0.0.1"} {
		g.Expect(IsPrivate(netip.MustParseAddr(addr))).To(BeTrue(), addr)
	}
	for _, addr := range []string{"1.1.1.1", "8.8.4.4", "9.9.9.9", "2606:4700:4700::1111", "::ffff:8.8.8.8"} {
		g.Expect(IsPrivate(netip.MustParseAddr(addr))).To(BeFalse(), addr)
	}
}
