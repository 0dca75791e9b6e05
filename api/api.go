package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/api/common"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/api/movies"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
)

// API moviesearch api
type API struct {
	App    *app.App
	Config *common.Config
}

// New creates a new api
func New(a *app.App) (api *API, err error) {
	api = &API{App: a}
	api.Config, err = common.InitConfig()
	if err != nil {
		return nil, err
	}
	return api, nil
}

// Init registers the api routes
func (a *API) Init(r *mux.Router) {

	// SERVER-STATUS
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"OK","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
	})

	/* ****************** MOVIES ****************** */
	moviesAPI := movies.New(a.Config, a.App.SearchService)
	r.Handle("/movies/autocomplete", a.handler(moviesAPI.Autocomplete)).Methods(http.MethodGet)
	r.Handle("/movies/index", a.handler(moviesAPI.Indexes)).Methods(http.MethodGet)
}

// Handler builds the full router: /metrics and /api behind CORS and metrics
func (a *API) Handler() http.Handler {
	origins := a.Config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "HEAD", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Origin", "User-Agent"}),
	)

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	a.Init(router.PathPrefix("/api").Subrouter().StrictSlash(true))

	// wrapped outside the router so preflights and unmatched requests pass through
	return metricsMiddleware(router, cors(router))
}
