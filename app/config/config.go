package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
)

// Config app configuration
type Config struct {
	Index  IndexConfig  `mapstructure:"index"`
	Search SearchConfig `mapstructure:"search"`
}

// IndexConfig search index provisioning
type IndexConfig struct {
	Name         string        `mapstructure:"name"`
	WaitTimeout  time.Duration `mapstructure:"waitTimeout"`
	PollInterval time.Duration `mapstructure:"pollInterval"`
}

// SearchConfig autocomplete query settings
type SearchConfig struct {
	Path         string        `mapstructure:"path"`
	Limit        int           `mapstructure:"limit"`
	DefaultQuery string        `mapstructure:"defaultQuery"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Output       string        `mapstructure:"output"`
}

// InitConfig initialize app configuration
func InitConfig() (*Config, error) {
	var settings struct {
		App Config `mapstructure:"app"`
	}
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, errors.Wrap(err, "unable to decode app config")
	}
	config := settings.App
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the values a run depends on
func (c *Config) Validate() error {
	if c.Index.Name == "" {
		return errors.New("app.index.name is not set")
	}
	if c.Search.Path == "" {
		return errors.New("app.search.path is not set")
	}
	if c.Search.Limit < 1 || c.Search.Limit > consts.MaxResults {
		return errors.Errorf("app.search.limit must be between 1 and %d, got %d", consts.MaxResults, c.Search.Limit)
	}
	switch c.Search.Output {
	case consts.FormatTable, consts.FormatPlain, consts.FormatJSON:
	default:
		return errors.Errorf("app.search.output %q is not one of table, plain, json", c.Search.Output)
	}
	return nil
}
