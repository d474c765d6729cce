package functions

import (
	"sort"
	"strconv"
	"text/template"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/twpayne/go-vfs/v4"
)

// Names the functions are registered under in templates.
const (
	NameBasename               = "basename"
	NameNthHost                = "nthhost"
	NameAgeKey                 = "age_key"
	NameCloudflareTunnelID     = "cloudflare_tunnel_id"
	NameCloudflareTunnelSecret = "cloudflare_tunnel_secret"
	NameGitHubDeployKey        = "github_deploy_key"
	NameGitHubPushToken        = "github_push_token"
	NameTalosPatches           = "talos_patches"
)

// Options holds the well-known file locations the helpers fall back to when
// a template does not pass a path.
type Options struct {
	PatchesRoot          string
	AgeKeyFile           string
	CloudflareTunnelFile string
	GitHubDeployKeyFile  string
	GitHubPushTokenFile  string
}

func DefaultOptions() Options {
	return Options{
		PatchesRoot:          domain.DefaultPatchesRoot,
		AgeKeyFile:           domain.DefaultAgeKeyFile,
		CloudflareTunnelFile: domain.DefaultCloudflareTunnelFile,
		GitHubDeployKeyFile:  domain.DefaultGitHubDeployKeyFile,
		GitHubPushTokenFile:  domain.DefaultGitHubPushTokenFile,
	}
}

// Registry binds the helpers to a filesystem and a set of default paths.
type Registry struct {
	fs   vfs.FS
	opts Options
}

func NewRegistry(fsys vfs.FS, opts Options) *Registry {
	def := DefaultOptions()
	if opts.PatchesRoot == "" {
		opts.PatchesRoot = def.PatchesRoot
	}
	if opts.AgeKeyFile == "" {
		opts.AgeKeyFile = def.AgeKeyFile
	}
	if opts.CloudflareTunnelFile == "" {
		opts.CloudflareTunnelFile = def.CloudflareTunnelFile
	}
	if opts.GitHubDeployKeyFile == "" {
		opts.GitHubDeployKeyFile = def.GitHubDeployKeyFile
	}
	if opts.GitHubPushTokenFile == "" {
		opts.GitHubPushTokenFile = def.GitHubPushTokenFile
	}
	return &Registry{fs: fsys, opts: opts}
}

func (r *Registry) AgeKey(keyType string, path ...string) (string, error) {
	p, err := optionalPath(path, r.opts.AgeKeyFile)
	if err != nil {
		return "", err
	}
	return AgeKey(r.fs, keyType, p)
}

func (r *Registry) CloudflareTunnelID(path ...string) (string, error) {
	p, err := optionalPath(path, r.opts.CloudflareTunnelFile)
	if err != nil {
		return "", err
	}
	return CloudflareTunnelID(r.fs, p)
}

func (r *Registry) CloudflareTunnelSecret(path ...string) (string, error) {
	p, err := optionalPath(path, r.opts.CloudflareTunnelFile)
	if err != nil {
		return "", err
	}
	return CloudflareTunnelSecret(r.fs, p)
}

func (r *Registry) GitHubDeployKey(path ...string) (string, error) {
	p, err := optionalPath(path, r.opts.GitHubDeployKeyFile)
	if err != nil {
		return "", err
	}
	return GitHubDeployKey(r.fs, p)
}

func (r *Registry) GitHubPushToken(path ...string) (string, error) {
	p, err := optionalPath(path, r.opts.GitHubPushTokenFile)
	if err != nil {
		return "", err
	}
	return GitHubPushToken(r.fs, p)
}

func (r *Registry) TalosPatches(name string) ([]string, error) {
	return TalosPatches(r.fs, r.opts.PatchesRoot, name)
}

// FuncMap returns the two filters and six functions under their template names.
func (r *Registry) FuncMap() template.FuncMap {
	return template.FuncMap{
		NameBasename:               Basename,
		NameNthHost:                NthHost,
		NameAgeKey:                 r.AgeKey,
		NameCloudflareTunnelID:     r.CloudflareTunnelID,
		NameCloudflareTunnelSecret: r.CloudflareTunnelSecret,
		NameGitHubDeployKey:        r.GitHubDeployKey,
		NameGitHubPushToken:        r.GitHubPushToken,
		NameTalosPatches:           r.TalosPatches,
	}
}

type callable struct {
	minArgs, maxArgs int
	call             func(r *Registry, args []string) (any, error)
}

var callables = map[string]callable{
	NameBasename: {1, 1, func(_ *Registry, args []string) (any, error) {
		return Basename(args[0]), nil
	}},
	NameNthHost: {2, 2, func(_ *Registry, args []string) (any, error) {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, domain.InvalidArgument("host index %q is not an integer", args[1])
		}
		return NthHost(n, args[0]), nil
	}},
	NameAgeKey: {1, 2, func(r *Registry, args []string) (any, error) {
		return r.AgeKey(args[0], args[1:]...)
	}},
	NameCloudflareTunnelID: {0, 1, func(r *Registry, args []string) (any, error) {
		return r.CloudflareTunnelID(args...)
	}},
	NameCloudflareTunnelSecret: {0, 1, func(r *Registry, args []string) (any, error) {
		return r.CloudflareTunnelSecret(args...)
	}},
	NameGitHubDeployKey: {0, 1, func(r *Registry, args []string) (any, error) {
		return r.GitHubDeployKey(args...)
	}},
	NameGitHubPushToken: {0, 1, func(r *Registry, args []string) (any, error) {
		return r.GitHubPushToken(args...)
	}},
	NameTalosPatches: {1, 1, func(r *Registry, args []string) (any, error) {
		return r.TalosPatches(args[0])
	}},
}

// Call invokes a helper by its template name with string arguments. The
// nthhost filter takes the network first here: nthhost <cidr> <n>.
func (r *Registry) Call(name string, args []string) (any, error) {
	c, ok := callables[name]
	if !ok {
		return nil, domain.InvalidArgument("unknown function %q", name)
	}
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return nil, domain.InvalidArgument("%s takes %d to %d arguments, got %d", name, c.minArgs, c.maxArgs, len(args))
	}
	return c.call(r, args)
}

// Names lists every callable name, sorted.
func Names() []string {
	names := make([]string, 0, len(callables))
	for name := range callables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func optionalPath(path []string, fallback string) (string, error) {
	switch len(path) {
	case 0:
		return fallback, nil
	case 1:
		return path[0], nil
	}
	return "", domain.InvalidArgument("expected at most one path, got %d", len(path))
}
