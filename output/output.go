package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/model"
)

// Render writes movies to w in the given format
func Render(w io.Writer, format string, movies []model.Movie) error {
	switch format {
	case consts.FormatTable, "":
		return renderTable(w, movies)
	case consts.FormatPlain:
		return renderPlain(w, movies)
	case consts.FormatJSON:
		return renderJSON(w, movies)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

// renderTable mimics console.table: an index column followed by the title
func renderTable(w io.Writer, movies []model.Movie) error {
	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, []string{strconv.Itoa(i), m.Title})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("(index)", consts.TitleField).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderPlain(w io.Writer, movies []model.Movie) error {
	for _, title := range model.Titles(movies) {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, movies []model.Movie) error {
	if movies == nil {
		movies = []model.Movie{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(movies)
}

// RenderIndexes writes search index statuses to w in the given format
func RenderIndexes(w io.Writer, format string, indexes []model.SearchIndexStatus) error {
	switch format {
	case consts.FormatTable, "":
		rows := make([][]string, 0, len(indexes))
		for _, idx := range indexes {
			rows = append(rows, []string{idx.Name, idx.Status, strconv.FormatBool(idx.Queryable)})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("name", "status", "queryable").
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	case consts.FormatPlain:
		for _, idx := range indexes {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%t\n", idx.Name, idx.Status, idx.Queryable); err != nil {
				return err
			}
		}
		return nil
	case consts.FormatJSON:
		if indexes == nil {
			indexes = []model.SearchIndexStatus{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(indexes)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
