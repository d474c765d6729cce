package config

import (
	_ "embed"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/kairos-io/provider-clustertemplate/pkg/functions"
	"github.com/kairos-io/provider-clustertemplate/pkg/utils"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs/v4"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type Config struct {
	Inputs      []string   `koanf:"inputs"`
	Output      string     `koanf:"output"`
	Data        []string   `koanf:"data"`
	Exclude     []string   `koanf:"exclude"`
	Delimiters  Delimiters `koanf:"delimiters"`
	PatchesRoot string     `koanf:"patches_root"`
	YipStage    string     `koanf:"yip_stage"`
	Secrets     Secrets    `koanf:"secrets"`
	Log         Log        `koanf:"log"`
}

type Delimiters struct {
	Left  string `koanf:"left"`
	Right string `koanf:"right"`
}

type Secrets struct {
	AgeKey           string `koanf:"age_key"`
	CloudflareTunnel string `koanf:"cloudflare_tunnel"`
	GitHubDeployKey  string `koanf:"github_deploy_key"`
	GitHubPushToken  string `koanf:"github_push_token"`
}

type Log struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// FunctionOptions maps the configured file locations onto the helper defaults.
func (c *Config) FunctionOptions() functions.Options {
	return functions.Options{
		PatchesRoot:          c.PatchesRoot,
		AgeKeyFile:           c.Secrets.AgeKey,
		CloudflareTunnelFile: c.Secrets.CloudflareTunnel,
		GitHubDeployKeyFile:  c.Secrets.GitHubDeployKey,
		GitHubPushTokenFile:  c.Secrets.GitHubPushToken,
	}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// vfsProvider reads a koanf source through go-vfs so tests can use vfst.
type vfsProvider struct {
	fs   vfs.FS
	path string
}

func (p *vfsProvider) ReadBytes() ([]byte, error) { return p.fs.ReadFile(p.path) }
func (p *vfsProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration. path may be empty; when set the file must
// exist. overrides are applied last and use the koanf key names.
func Load(fsys vfs.FS, path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if utils.FileExists(fsys, domain.DefaultConfigFile) {
		if err := k.Load(&vfsProvider{fs: fsys, path: domain.DefaultConfigFile}, toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", domain.DefaultConfigFile)
		}
		logrus.Debugf("loaded %s", domain.DefaultConfigFile)
	}

	if path != "" {
		if err := k.Load(&vfsProvider{fs: fsys, path: path}, toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config from %s", path)
		}
	}

	// CLUSTERTEMPLATE_SECRETS__AGE_KEY -> secrets.age_key
	err := k.Load(env.Provider(domain.EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, domain.EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load overrides")
		}
	}

	var cfg Config
	err = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("at least one input directory is required")
	}
	if c.Output == "" {
		return errors.New("output directory is required")
	}
	if c.Delimiters.Left == "" || c.Delimiters.Right == "" {
		return errors.New("both template delimiters are required")
	}
	return nil
}
