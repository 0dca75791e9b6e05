package mongodatabase

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrStandaloneDeployment is returned when the URI points at a plain mongod on
// its default port, which has no Atlas Search support.
var ErrStandaloneDeployment = errors.New("connection string targets a standalone local mongod")

// TargetsDefaultLocalPort reports whether uri mentions localhost and 27017.
func TargetsDefaultLocalPort(uri string) bool {
	local := strings.Contains(uri, "localhost") || strings.Contains(uri, "127.0.0.1")
	return local && strings.Contains(uri, "27017")
}

// Guard refuses configurations that cannot serve $search queries.
func (config *DBConfig) Guard() error {
	if !config.LocalGuard {
		return nil
	}
	if TargetsDefaultLocalPort(config.Host) {
		return ErrStandaloneDeployment
	}
	return nil
}
