package search

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app/config"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/model"
)

// ErrEmptyQuery is returned when the autocomplete query is blank
var ErrEmptyQuery = errors.New("query must not be empty")

// Service provisions the title autocomplete index and queries it
type Service interface {
	IndexName() string
	EnsureIndex(ctx context.Context) (*model.IndexResult, error)
	DropIndex(ctx context.Context) error
	ListIndexes(ctx context.Context) ([]model.SearchIndexStatus, error)
	WaitQueryable(ctx context.Context) (*model.SearchIndexStatus, error)
	AutoComplete(ctx context.Context, query string) ([]model.Movie, error)
}

// Aggregator runs aggregation pipelines; satisfied by *mongo.Collection
type Aggregator interface {
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

// SearchIndexView manages Atlas Search indexes; satisfied by *mongo.SearchIndexView
type SearchIndexView interface {
	List(ctx context.Context, searchIdxOpts *options.SearchIndexesOptions, opts ...*options.ListSearchIndexesOptions) (*mongo.Cursor, error)
	CreateOne(ctx context.Context, model mongo.SearchIndexModel, opts ...*options.CreateSearchIndexesOptions) (string, error)
	DropOne(ctx context.Context, searchIdxName string, opts ...*options.DropSearchIndexOptions) error
}

// ResultCache stores encoded autocomplete results; satisfied by *cache.Cache
type ResultCache interface {
	GetValue(key string) (string, error)
	SetValue(key string, val string) error
	DeletePrefix(prefix string) error
}

type service struct {
	config     *config.Config
	collection Aggregator
	indexes    SearchIndexView
	cache      ResultCache
}

// NewService - creates new search service over the repos' movies collection
func NewService(repos *model.Repos, conf *config.Config) Service {
	var rc ResultCache
	if repos.Cache != nil {
		rc = repos.Cache
	}
	return newService(conf, repos.MongoDB.Collection, repos.MongoDB.SearchIndexes(), rc)
}

func newService(conf *config.Config, collection Aggregator, indexes SearchIndexView, rc ResultCache) *service {
	return &service{
		config:     conf,
		collection: collection,
		indexes:    indexes,
		cache:      rc,
	}
}

func (s *service) IndexName() string {
	return s.config.Index.Name
}

func (s *service) EnsureIndex(ctx context.Context) (*model.IndexResult, error) {
	return ensureIndex(ctx, s.indexes, s.config.Index.Name)
}

func (s *service) DropIndex(ctx context.Context) error {
	if err := dropIndex(ctx, s.indexes, s.config.Index.Name); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *service) ListIndexes(ctx context.Context) ([]model.SearchIndexStatus, error) {
	return listIndexes(ctx, s.indexes, "")
}

func (s *service) WaitQueryable(ctx context.Context) (*model.SearchIndexStatus, error) {
	if s.config.Index.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Index.WaitTimeout)
		defer cancel()
	}
	return waitQueryable(ctx, s.indexes, s.config.Index.Name, s.config.Index.PollInterval)
}

func (s *service) AutoComplete(ctx context.Context, query string) ([]model.Movie, error) {
	return s.autoComplete(ctx, query)
}
