package model

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cache"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/mongodatabase"
)

// Repos container to hold handles for cache / db repos
type Repos struct {
	MongoDB *mongodatabase.MongoDBConn
	Cache   *cache.Cache
}
