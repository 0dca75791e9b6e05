package movies

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app/search"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/util"
)

func (a *api) Autocomplete(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query().Get("q")

	movies, err := a.searchService.AutoComplete(r.Context(), query)
	if errors.Is(err, search.ErrEmptyQuery) {
		return &app.ValidationError{Message: "query parameter q is required"}
	}
	if err != nil {
		return err
	}

	ctx.Logger.WithField("results", len(movies)).Debug("autocomplete served")
	return json.NewEncoder(w).Encode(util.SetResponse(movies, 1, "Movies fetched successfully."))
}

func (a *api) Indexes(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	indexes, err := a.searchService.ListIndexes(r.Context())
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(util.SetResponse(indexes, 1, "Search indexes fetched successfully."))
}
