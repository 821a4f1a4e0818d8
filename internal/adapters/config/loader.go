// Package config resolves the jig configuration from flags, environment and
// the project config file.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/pkg/jig/names"
	"go.trai.ch/zerr"
)

// Keys understood by the loader. Flags with the same names are bound.
const (
	KeyConfigPath            = "config-path"
	KeyAppPath               = "app-path"
	KeyPrebuiltBinaryPath    = "app-prebuilt-binary-path"
	KeyCaseStrategy          = "case-converting-strategy"
	KeyBuildFlags            = "build-flags"
	KeyVerbose               = "verbose"
	KeyDetectToolchainChange = "detect-toolchain-change"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader on top of viper.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load resolves the configuration. Flags win over JIG_* environment
// variables, which win over the config file, which wins over defaults.
func (l *Loader) Load(flags *pflag.FlagSet) (domain.Config, error) {
	v := viper.New()

	defaults := domain.DefaultConfig()
	v.SetDefault(KeyConfigPath, "")
	v.SetDefault(KeyAppPath, "")
	v.SetDefault(KeyPrebuiltBinaryPath, "")
	v.SetDefault(KeyCaseStrategy, string(defaults.CaseStrategy))
	v.SetDefault(KeyBuildFlags, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyDetectToolchainChange, defaults.DetectToolchainChange)

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return domain.Config{}, zerr.Wrap(err, "failed to bind flags")
		}
	}

	if err := l.readConfigFile(v); err != nil {
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	return finalize(cfg)
}

func (l *Loader) readConfigFile(v *viper.Viper) error {
	path := v.GetString(KeyConfigPath)
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	err := v.ReadInConfig()
	switch {
	case err == nil:
		l.logger.Debug("loaded config file " + path)
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
}

func finalize(cfg domain.Config) (domain.Config, error) {
	if cfg.AppPath != "" && cfg.PrebuiltBinaryPath != "" {
		return domain.Config{}, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrMutuallyExclusiveOptions, "conflicting companion sources"),
				KeyAppPath, cfg.AppPath),
			KeyPrebuiltBinaryPath, cfg.PrebuiltBinaryPath)
	}
	if cfg.AppPath == "" {
		cfg.AppPath = domain.DefaultAppPath
	}

	strategy, err := names.ParseCaseStrategy(string(cfg.CaseStrategy))
	if err != nil {
		return domain.Config{}, err
	}
	cfg.CaseStrategy = strategy

	return cfg, nil
}

// RegisterFlags adds the persistent configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfigPath, "", "path to the config file (default "+domain.ConfigFileName+")")
	fs.String(KeyAppPath, "", "path to the companion project (default "+domain.DefaultAppPath+")")
	fs.String(KeyPrebuiltBinaryPath, "", "run this companion executable instead of building one")
	fs.String(KeyCaseStrategy, "", "command name conversion: keep, snake or kebab")
	fs.Bool(KeyVerbose, false, "enable debug logging")
}
