package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cache"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/model"
)

func (s *service) autoComplete(ctx context.Context, query string) ([]model.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	limit := s.config.Search.Limit
	key := s.cacheKey(query)

	if movies, ok := s.cached(key); ok {
		return movies, nil
	}

	opts := options.Aggregate()
	if s.config.Search.Timeout > 0 {
		opts.SetMaxTime(s.config.Search.Timeout)
	}

	pipeline := AutoCompletePipeline(s.config.Index.Name, s.config.Search.Path, query, limit)
	cursor, err := s.collection.Aggregate(ctx, pipeline, opts)
	if err != nil {
		return nil, errors.Wrap(err, "autocomplete aggregation failed")
	}

	movies := []model.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, errors.Wrap(err, "unable to decode autocomplete results")
	}
	if len(movies) > limit {
		movies = movies[:limit]
	}

	// an index that is still building answers with no hits
	if len(movies) > 0 {
		s.store(key, movies)
	}
	return movies, nil
}

func (s *service) cachePrefix() string {
	return fmt.Sprintf("autocomplete:%s:", s.config.Index.Name)
}

func (s *service) cacheKey(query string) string {
	return fmt.Sprintf("%s%s:%d:%s", s.cachePrefix(), s.config.Search.Path, s.config.Search.Limit, query)
}

func (s *service) cached(key string) ([]model.Movie, bool) {
	if s.cache == nil {
		return nil, false
	}
	val, err := s.cache.GetValue(key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logrus.WithError(err).Warn("unable to read autocomplete cache")
		}
		return nil, false
	}
	var movies []model.Movie
	if err := json.Unmarshal([]byte(val), &movies); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("discarding unreadable cache entry")
		return nil, false
	}
	return movies, true
}

func (s *service) store(key string, movies []model.Movie) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(movies)
	if err != nil {
		logrus.WithError(err).Warn("unable to encode autocomplete results")
		return
	}
	if err := s.cache.SetValue(key, string(data)); err != nil {
		logrus.WithError(err).Warn("unable to write autocomplete cache")
	}
}

func (s *service) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePrefix(s.cachePrefix()); err != nil {
		logrus.WithError(err).Warn("unable to invalidate autocomplete cache")
	}
}
