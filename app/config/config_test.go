package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Index:  IndexConfig{Name: "title_index", WaitTimeout: time.Minute, PollInterval: time.Second},
		Search: SearchConfig{Path: "title", Limit: 20, Timeout: 30 * time.Second, Output: "table"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing index name", mutate: func(c *Config) { c.Index.Name = "" }, wantErr: "app.index.name"},
		{name: "missing path", mutate: func(c *Config) { c.Search.Path = "" }, wantErr: "app.search.path"},
		{name: "limit too large", mutate: func(c *Config) { c.Search.Limit = 21 }, wantErr: "between 1 and 20"},
		{name: "limit zero", mutate: func(c *Config) { c.Search.Limit = 0 }, wantErr: "between 1 and 20"},
		{name: "unknown output", mutate: func(c *Config) { c.Search.Output = "xml" }, wantErr: "app.search.output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("app.index.name", "movies_ac")
	viper.Set("app.index.waitTimeout", "90s")
	viper.Set("app.search.path", "title")
	viper.Set("app.search.limit", 5)
	viper.Set("app.search.output", "json")

	conf, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "movies_ac", conf.Index.Name)
	assert.Equal(t, 90*time.Second, conf.Index.WaitTimeout)
	assert.Equal(t, 5, conf.Search.Limit)
	assert.Equal(t, "json", conf.Search.Output)
}
