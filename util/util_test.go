package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetResponse(t *testing.T) {
	res := SetResponse(nil, 0, "query must not be empty")
	assert.Nil(t, res["data"])
	assert.Equal(t, 0, res["status"])
	assert.Equal(t, "query must not be empty", res["message"])

	res = SetResponse([]string{"The Matrix"}, 1, "ok")
	assert.Equal(t, []string{"The Matrix"}, res["data"])
	assert.Equal(t, 1, res["status"])
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 20)
	assert.NotEqual(t, a, b)
}

func TestPrettyPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrettyPrint(&buf, map[string]string{"message": "hi"}))
	assert.Equal(t, "{\n \"message\": \"hi\"\n}\n", buf.String())
}

func TestRecoverGoroutinePanic(t *testing.T) {
	errChan := make(chan error, 1)
	func() {
		defer RecoverGoroutinePanic(errChan)
		panic("boom")
	}()

	err := <-errChan
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
