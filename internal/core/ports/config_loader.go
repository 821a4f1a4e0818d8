package ports

import (
	"github.com/spf13/pflag"
	"go.trai.ch/jig/internal/core/domain"
)

// ConfigLoader resolves the front door configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges flags, environment, config file and defaults, in that order
	// of precedence.
	Load(flags *pflag.FlagSet) (domain.Config, error)
}
