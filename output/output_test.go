package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/model"
)

var movies = []model.Movie{
	{Title: "The Matrix"},
	{Title: "The Matrix Reloaded"},
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "table", movies))

	out := buf.String()
	assert.Contains(t, out, "(index)")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "The Matrix Reloaded")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var matrixLine string
	for _, line := range lines {
		if strings.Contains(line, "The Matrix") && !strings.Contains(line, "Reloaded") {
			matrixLine = line
		}
	}
	assert.Contains(t, matrixLine, "0")
}

func TestRender_DefaultIsTable(t *testing.T) {
	var def, tbl bytes.Buffer
	require.NoError(t, Render(&def, "", movies))
	require.NoError(t, Render(&tbl, "table", movies))
	assert.Equal(t, tbl.String(), def.String())
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "plain", movies))
	assert.Equal(t, "The Matrix\nThe Matrix Reloaded\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "json", movies))
	assert.JSONEq(t, `[{"title":"The Matrix"},{"title":"The Matrix Reloaded"}]`, buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, "json", nil))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "xml", movies)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
	assert.Empty(t, buf.String())
}

func TestRenderIndexes(t *testing.T) {
	indexes := []model.SearchIndexStatus{
		{ID: "1", Name: "title_index", Status: "READY", Queryable: true},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderIndexes(&buf, "plain", indexes))
	assert.Equal(t, "title_index\tREADY\ttrue\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderIndexes(&buf, "table", indexes))
	assert.Contains(t, buf.String(), "queryable")
	assert.Contains(t, buf.String(), "title_index")

	buf.Reset()
	require.NoError(t, RenderIndexes(&buf, "json", nil))
	assert.JSONEq(t, `[]`, buf.String())
}
