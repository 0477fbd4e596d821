package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	exporterrors "github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/logging"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides, e.g. CSVEXPORT_RUN_STRICT.
const EnvPrefix = "CSVEXPORT_"

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the files and overrides used by Load.
type LoadOptions struct {
	// UserFile defaults to paths.ConfigFile().
	UserFile string
	// ProjectFile defaults to ./csvexport.toml.
	ProjectFile string
	// EnvFile holds CSVEXPORT_* assignments read below the real
	// environment. Defaults to ./.env.
	EnvFile string
	// Overrides are dotted keys set from command-line flags.
	Overrides map[string]interface{}
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.Load")

	if opts.UserFile == "" {
		opts.UserFile = paths.ConfigFile()
	}
	if opts.ProjectFile == "" {
		opts.ProjectFile = paths.ProjectConfigFile
	}
	if opts.EnvFile == "" {
		opts.EnvFile = DotEnvFile
	}

	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, exporterrors.Wrap(err, exporterrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load user and project files if they exist
	for _, path := range []string{opts.UserFile, opts.ProjectFile} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, exporterrors.Wrapf(err, exporterrors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Load .env assignments, then real env vars
	if err := loadDotEnv(k, opts.EnvFile); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, exporterrors.Wrap(err, exporterrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Apply flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, exporterrors.Wrap(err, exporterrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Trace().Interface("config", cfg).Msg("Configuration loaded")
	return cfg, nil
}

// loadDotEnv applies the CSVEXPORT_* entries of a .env file. Other entries
// are ignored and the process environment is left untouched.
func loadDotEnv(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	entries, err := godotenv.Read(path)
	if err != nil {
		return exporterrors.Wrapf(err, exporterrors.ErrConfigLoad, "failed to read %s", path).
			WithDetail("path", path)
	}

	values := make(map[string]interface{})
	for name, value := range entries {
		if strings.HasPrefix(name, EnvPrefix) {
			values[envKey(name)] = value
		}
	}
	if len(values) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return exporterrors.Wrap(err, exporterrors.ErrConfigLoad, "failed to apply .env values")
	}
	return nil
}

// parserFor picks the parser from the file extension. Anything that is not
// YAML is read as TOML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps CSVEXPORT_OUTPUT_DIR_MODE to output.dir_mode. Only the first
// underscore separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, exporterrors.Wrap(err, exporterrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, exporterrors.Wrap(err, exporterrors.ErrConfigValid, "invalid configuration")
	}
	return &cfg, nil
}

// Defaults returns the embedded default configuration alone.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, exporterrors.Wrap(err, exporterrors.ErrConfigLoad, "failed to load defaults")
	}
	return unmarshal(k)
}
