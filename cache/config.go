package cache

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config redis cache configuration
type Config struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// InitConfig initialize cache configuration
func InitConfig() (*Config, error) {
	var settings struct {
		Cache Config `mapstructure:"cache"`
	}
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, errors.Wrap(err, "unable to decode cache config")
	}
	return &settings.Cache, nil
}
