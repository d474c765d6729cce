package functions

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestBasename(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Basename("templates/config/talos/patches/global/machine-network.yaml.j2")).To(Equal("machine-network.yaml"))
	g.Expect(Basename("cluster.yaml")).To(Equal("cluster"))
	g.Expect(Basename("Makefile")).To(Equal("Makefile"))
	g.Expect(Basename(".bashrc")).To(Equal(".bashrc"))
	g.Expect(Basename("dir/sub/")).To(Equal("sub"))
	g.Expect(Basename("")).To(Equal(""))
}

func TestNthHostFilter(t *testing.T) {
	g := NewWithT(t)

	g.Expect(NthHost(1, "10.0.0.0/24")).To(Equal("10.0.0.1"))
	g.Expect(NthHost(400, "10.0.0.0/24")).To(BeEmpty())
	g.Expect(NthHost(0, "not-a-cidr")).To(BeEmpty())
	g.Expect(NthHost(1, nil)).To(BeEmpty())
}
