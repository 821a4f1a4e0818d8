package domain

import "go.trai.ch/jig/pkg/jig/names"

// Config is the resolved front door configuration.
type Config struct {
	ConfigPath            string             `mapstructure:"config-path" yaml:"config-path,omitempty"`
	AppPath               string             `mapstructure:"app-path" yaml:"app-path"`
	PrebuiltBinaryPath    string             `mapstructure:"app-prebuilt-binary-path" yaml:"app-prebuilt-binary-path,omitempty"`
	CaseStrategy          names.CaseStrategy `mapstructure:"case-converting-strategy" yaml:"case-converting-strategy"`
	BuildFlags            string             `mapstructure:"build-flags" yaml:"build-flags,omitempty"`
	Verbose               bool               `mapstructure:"verbose" yaml:"verbose"`
	DetectToolchainChange bool               `mapstructure:"detect-toolchain-change" yaml:"detect-toolchain-change"`
}

// UsesPrebuiltBinary reports whether the companion build is bypassed.
func (c Config) UsesPrebuiltBinary() bool {
	return c.PrebuiltBinaryPath != ""
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		AppPath:               DefaultAppPath,
		CaseStrategy:          names.Keep,
		DetectToolchainChange: true,
	}
}
