package provider

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kairos-io/provider-clustertemplate/pkg/defaults"
	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/kairos-io/provider-clustertemplate/pkg/netutil"
	"github.com/sirupsen/logrus"
)

var bgpKeys = []string{
	"cilium_bgp_router_addr",
	"cilium_bgp_router_asn",
	"cilium_bgp_node_asn",
}

var proxmoxCSIKeys = []string{
	"proxmox_csi_token_id",
	"proxmox_csi_token_secret",
}

// Enrich normalizes legacy keys, derives computed values and fills the
// default table. It mutates data in place and returns it. It never fails:
// inputs that cannot be used degrade to their default.
func Enrich(data domain.TemplateData) domain.TemplateData {
	if data == nil {
		data = domain.TemplateData{}
	}
	inputs := CreateClusterInputs(data)

	setDomains(data, inputs)
	setNetworkDefaults(data, inputs)
	setFeatureFlags(data, inputs)
	defaults.Apply(data)
	setDependentDefaults(data)

	return data
}

// CreateClusterInputs decodes the keys that drive derived values. Keys that
// fail to decode are left zero.
func CreateClusterInputs(data domain.TemplateData) domain.ClusterInputs {
	var inputs domain.ClusterInputs

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &inputs,
		WeaklyTypedInput: true,
	})
	if err != nil {
		logrus.Warnf("failed to build cluster inputs decoder: %v", err)
		return inputs
	}
	if err := decoder.Decode(map[string]any(data)); err != nil {
		logrus.Warnf("ignoring malformed cluster inputs: %v", err)
	}
	return inputs
}

func setDomains(data domain.TemplateData, inputs domain.ClusterInputs) {
	if inputs.CloudflareDomain != "" && !domain.Truthy(data["cloudflare_domains"]) {
		data["cloudflare_domains"] = []string{inputs.CloudflareDomain}
	}

	primary := ""
	switch domains := data["cloudflare_domains"].(type) {
	case nil:
		data["cloudflare_domains"] = []string{}
	case string:
		data["cloudflare_domains"] = []string{domains}
		primary = domains
	case []string:
		if len(domains) > 0 {
			primary = domains[0]
		}
	case []any:
		if list, ok := stringList(domains); ok {
			data["cloudflare_domains"] = list
		}
		if len(domains) > 0 {
			primary, _ = domains[0].(string)
		}
	default:
		logrus.Warnf("leaving cloudflare_domains of type %T unchanged", domains)
	}
	data["primary_domain"] = primary
}

// stringList converts list when every element is a string.
func stringList(list []any) ([]string, bool) {
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func setNetworkDefaults(data domain.TemplateData, inputs domain.ClusterInputs) {
	if !data.IsSet("node_default_gateway") {
		gateway, ok := netutil.NthHost(inputs.NodeCIDR, 1)
		if !ok {
			logrus.Debugf("no default gateway available for node_cidr %q", inputs.NodeCIDR)
		}
		data["node_default_gateway"] = gateway
	}

	servers := inputs.NodeDNSServers
	if !data.IsSet("node_dns_servers") {
		servers = append([]string{}, domain.DefaultNodeDNSServers...)
		data["node_dns_servers"] = servers
	}
	data.SetDefault("k8s_gateway_fallback_dns", netutil.PublicDNS(servers))
}

func setFeatureFlags(data domain.TemplateData, inputs domain.ClusterInputs) {
	data.SetDefault("cilium_bgp_enabled", data.Truthy(bgpKeys...))
	data.SetDefault("spegel_enabled", domain.Len(inputs.Nodes) > 1)
	data.SetDefault("proxmox_csi_enabled", data.Truthy(proxmoxCSIKeys...))
}

// setDependentDefaults runs after the table so it sees defaulted values.
func setDependentDefaults(data domain.TemplateData) {
	primary, _ := data["primary_domain"].(string)
	// Without a domain the URL would be https://llms./v1, which no client
	// accepts; point at a placeholder host instead.
	if primary == "" {
		primary = domain.FallbackLLMDomain
	}
	data.SetDefault("cognee_llm_base_url", fmt.Sprintf("https://llms.%s/v1", primary))
}
