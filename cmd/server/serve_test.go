package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogs(t *testing.T) {
	prevOut, prevFormatter := logrus.StandardLogger().Out, logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetFormatter(prevFormatter)
	})

	t.Run("no log dir", func(t *testing.T) {
		assert.Nil(t, SetLogs(&bytes.Buffer{}, ""))
	})

	t.Run("tees to a daily file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		var stderr bytes.Buffer

		file := SetLogs(&stderr, dir)
		require.NotNil(t, file)
		logrus.Info("serving api")
		require.NoError(t, file.Close())

		content, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "serving api")
		assert.Contains(t, stderr.String(), "serving api")
	})
}
