package functions

import (
	"path/filepath"
	"strings"

	"github.com/kairos-io/provider-clustertemplate/pkg/netutil"
)

// Basename returns the last element of path without its final extension,
// so "patches/global/machine-network.yaml.j2" becomes "machine-network.yaml".
func Basename(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == "" || ext == "." || ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// NthHost is the template form of netutil.NthHost. The network comes last so
// it can be piped in: {{ .node_cidr | nthhost 1 }}. An empty string means no
// host is available.
func NthHost(n int, cidr any) string {
	s, ok := cidr.(string)
	if !ok {
		return ""
	}
	host, _ := netutil.NthHost(s, n)
	return host
}
