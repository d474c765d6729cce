package domain

const (
	DefaultAgeKeyFile           = "age.key"
	DefaultCloudflareTunnelFile = "cloudflare-tunnel.json"
	DefaultGitHubDeployKeyFile  = "github-deploy.key"
	DefaultGitHubPushTokenFile  = "github-push-token.txt"

	DefaultPatchesRoot = "templates/config/talos/patches"
	PatchFilePattern   = "*.yaml.j2"
	TemplateFileSuffix = ".j2"

	DefaultConfigFile = "clustertemplate.toml"
	EnvPrefix         = "CLUSTERTEMPLATE_"

	FallbackDNSServer = "1.1.1.1"
	FallbackLLMDomain = "example.com"

	EventData     = "clustertemplate.data"
	EventFunction = "clustertemplate.function"
)

var DefaultNodeDNSServers = []string{"1.1.1.1", "1.0.0.1"}
