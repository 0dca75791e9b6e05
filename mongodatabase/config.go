package mongodatabase

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DBConfig configuration for db
type DBConfig struct {
	Host           string        `mapstructure:"host"`
	DBName         string        `mapstructure:"dbName"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
	LocalGuard     bool          `mapstructure:"localGuard"`
}

// InitConfig initialize db configuration
func InitConfig() (*DBConfig, error) {
	// viper.Sub drops env bindings, so the whole tree is decoded and the
	// section picked out afterwards. URI is bound onto mongodatabase.host.
	var settings struct {
		MongoDatabase DBConfig `mapstructure:"mongodatabase"`
	}
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, errors.Wrap(err, "unable to decode mongodatabase config")
	}
	dbconfig := settings.MongoDatabase
	if dbconfig.Host == "" {
		return nil, errors.New("mongodatabase.host is not set")
	}
	return &dbconfig, nil
}
