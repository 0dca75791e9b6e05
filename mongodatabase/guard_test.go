package mongodatabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetsDefaultLocalPort(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want bool
	}{
		{name: "localhost default port", uri: "mongodb://localhost:27017", want: true},
		{name: "loopback default port", uri: "mongodb://127.0.0.1:27017/?directConnection=true", want: true},
		{name: "port outside host list", uri: "mongodb://localhost/sample_mflix?port=27017", want: true},
		{name: "local atlas deployment", uri: "mongodb://localhost:50197", want: false},
		{name: "remote default port", uri: "mongodb://db.internal:27017", want: false},
		{name: "atlas srv", uri: "mongodb+srv://user:pw@cluster0.abcde.mongodb.net", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetsDefaultLocalPort(tt.uri))
		})
	}
}

func TestDBConfig_Guard(t *testing.T) {
	conf := &DBConfig{Host: "mongodb://localhost:27017", LocalGuard: true}
	assert.ErrorIs(t, conf.Guard(), ErrStandaloneDeployment)

	conf.LocalGuard = false
	assert.NoError(t, conf.Guard())

	conf = &DBConfig{Host: "mongodb://localhost:50197", LocalGuard: true}
	assert.NoError(t, conf.Guard())
}
