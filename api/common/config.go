package common

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config api configuration
type Config struct {
	Port           int           `mapstructure:"port"`
	ProxyCount     int           `mapstructure:"proxyCount"`
	MaxContentSize int64         `mapstructure:"maxContentSize"`
	ReadTimeout    time.Duration `mapstructure:"readTimeout"`
	WriteTimeout   time.Duration `mapstructure:"writeTimeout"`
	CloseTimeout   time.Duration `mapstructure:"closeTimeout"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	LogDir         string        `mapstructure:"logDir"`
	SkipIndex      bool          `mapstructure:"skipIndex"`
}

// InitConfig initialize api configuration
func InitConfig() (*Config, error) {
	var settings struct {
		API Config `mapstructure:"api"`
	}
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, errors.Wrap(err, "unable to decode api config")
	}
	return &settings.API, nil
}
