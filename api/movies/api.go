package movies

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/api/common"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app/search"
)

type api struct {
	config        *common.Config
	searchService search.Service
}

// New creates a new movies api
func New(conf *common.Config, searchService search.Service) *api {
	return &api{
		config:        conf,
		searchService: searchService,
	}
}
