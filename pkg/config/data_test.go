package config

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs/v4/vfst"
)

func TestLoadData(t *testing.T) {
	g := NewWithT(t)

	fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{
		"/work/cluster.yaml": `
cloudflare_domain: example.com
node_cidr: 192.168.1.0/24
node_dns_servers:
  - 1.1.1.1
  - 192.168.1.1
repository_branch: main
onedev_ssh_port: 2222
`,
		"/work/nodes.yaml": `
repository_branch: develop
nodes:
  - name: k8s-0
    address: 192.168.1.10
    labels:
      topology.kubernetes.io/zone: a
  - name: k8s-1
    address: 192.168.1.11
`,
		"/work/broken.yaml": "nodes: [",
	})
	g.Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	t.Run("merges data files in order", func(t *testing.T) {
		data, err := LoadData(fs, []string{"/work/cluster.yaml", "/work/nodes.yaml"})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(data["cloudflare_domain"]).To(Equal("example.com"))
		g.Expect(data["repository_branch"]).To(Equal("develop"))
		g.Expect(data["onedev_ssh_port"]).To(Equal(2222))
		g.Expect(data["node_dns_servers"]).To(Equal([]interface{}{"1.1.1.1", "192.168.1.1"}))
		g.Expect(data["nodes"]).To(HaveLen(2))
	})

	t.Run("keeps dotted keys intact", func(t *testing.T) {
		data, err := LoadData(fs, []string{"/work/nodes.yaml"})
		g.Expect(err).NotTo(HaveOccurred())
		first := data["nodes"].([]interface{})[0].(map[string]interface{})
		g.Expect(first["labels"]).To(HaveKeyWithValue("topology.kubernetes.io/zone", "a"))
	})

	t.Run("skips missing files", func(t *testing.T) {
		data, err := LoadData(fs, []string{"/work/missing.yaml", "/work/cluster.yaml"})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(data).To(HaveKey("node_cidr"))
	})

	t.Run("fails on unparsable files", func(t *testing.T) {
		_, err := LoadData(fs, []string{"/work/broken.yaml"})
		g.Expect(err).To(MatchError(ContainSubstring("/work/broken.yaml")))
	})
}
