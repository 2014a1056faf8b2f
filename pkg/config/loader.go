package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Options selects the layers Load reads on top of the embedded defaults.
// Missing files are skipped silently.
type Options struct {
	// Files are read in order, later files overriding earlier ones.
	Files []string
	// EnvPrefix enables the environment layer when non-empty. Nested keys
	// are separated by a double underscore: SSMUSE_CONF_ENTRY__SH.
	EnvPrefix string
	// Env is the snapshot the environment layer reads.
	Env types.Environment
	// Overrides are applied last, keyed by dotted path ("entry.sh").
	Overrides map[string]interface{}
}

// DefaultOptions returns the standard layer order: system file, user
// files, $SSMUSE_CONFIG, then SSMUSE_CONF_* variables, all read from env.
func DefaultOptions(env types.Environment) Options {
	files := []string{paths.SystemConfigFile}
	files = append(files, paths.UserConfigFiles()...)
	if explicit := env.Get(paths.EnvConfig); explicit != "" {
		files = append(files, paths.ExpandHome(explicit))
	}
	return Options{Files: files, EnvPrefix: paths.EnvConfigPrefix, Env: env}
}

// Load reads and validates the configuration.
func Load(opts Options) (*Config, error) {
	cfg, err := load(opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")
	var extras []Rule
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config files
	for _, path := range opts.Files {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		layer := koanf.New(".")
		if err := layer.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		layerExtras, err := takeExtraRules(layer)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid extra_rules in %s", path).
				WithDetail("path", path)
		}
		extras = append(extras, layerExtras...)
		if err := k.Merge(layer); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", path)
		}
		sources = append(sources, path)
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Env vars
	if opts.EnvPrefix != "" {
		vars := envLayer(opts.Env, opts.EnvPrefix)
		if err := k.Load(confmap.Provider(vars, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
		if len(vars) > 0 {
			logger.Debug().Int("keys", len(vars)).Msg("Loaded env layer")
		}
	}

	// 4. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	if err := unmarshal(k, "", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.ExtraRules = append(cfg.ExtraRules, extras...)
	cfg.Sources = sources

	return &cfg, nil
}

// envLayer maps PREFIX_A__B=v in env to the dotted key "a.b".
func envLayer(env types.Environment, prefix string) map[string]interface{} {
	vars := make(map[string]interface{})
	for _, name := range env.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, prefix)), "__", ".")
		if key == "" {
			continue
		}
		vars[key] = env.Get(name)
	}
	return vars
}

// takeExtraRules removes extra_rules from a single layer so that each
// file adds to the list instead of replacing the previous one.
func takeExtraRules(layer *koanf.Koanf) ([]Rule, error) {
	if !layer.Exists("extra_rules") {
		return nil, nil
	}
	var rules []Rule
	if err := unmarshal(layer, "extra_rules", &rules); err != nil {
		return nil, err
	}
	layer.Delete("extra_rules")
	return rules, nil
}

func unmarshal(k *koanf.Koanf, path string, out interface{}) error {
	return k.UnmarshalWithConf(path, out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	})
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
