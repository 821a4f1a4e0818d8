package app

import (
	"github.com/spf13/pflag"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Telemetry    ports.Telemetry
}

// verboser is implemented by loggers whose level can be lowered to debug.
type verboser interface {
	SetVerbose(verbose bool)
}

// LoadConfig resolves the configuration from flags and applies its verbosity
// to the logger.
func (c *Components) LoadConfig(flags *pflag.FlagSet) (domain.Config, error) {
	cfg, err := c.ConfigLoader.Load(flags)
	if err != nil {
		return domain.Config{}, err
	}
	if v, ok := c.Logger.(verboser); ok {
		v.SetVerbose(cfg.Verbose)
	}
	return cfg, nil
}
