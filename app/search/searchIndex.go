package search

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/model"
)

const defaultPollInterval = 5 * time.Second

// ensureIndex creates the title autocomplete index unless one with the same
// name already exists. Running it twice is a no-op.
func ensureIndex(ctx context.Context, view SearchIndexView, name string) (*model.IndexResult, error) {
	existing, err := findIndex(ctx, view, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"index":  name,
			"status": existing.Status,
		}).Info("atlas search index already exists")
		return &model.IndexResult{Name: existing.Name, Created: false, Status: existing.Status}, nil
	}

	logrus.WithField("index", name).Info("creating atlas search index")
	created, err := view.CreateOne(ctx, mongo.SearchIndexModel{
		Definition: model.NewTitleIndexDefinition(),
		Options:    options.SearchIndexes().SetName(name),
	})
	if err != nil {
		if isIndexExists(err) {
			// lost a race with another creator
			return &model.IndexResult{Name: name, Created: false}, nil
		}
		return nil, errors.Wrapf(err, "unable to create search index %s", name)
	}
	return &model.IndexResult{Name: created, Created: true, Status: consts.IndexPending}, nil
}

func dropIndex(ctx context.Context, view SearchIndexView, name string) error {
	existing, err := findIndex(ctx, view, name)
	if err != nil {
		return err
	}
	if existing == nil {
		logrus.WithField("index", name).Info("atlas search index not found, nothing to drop")
		return nil
	}
	if err := view.DropOne(ctx, name); err != nil {
		return errors.Wrapf(err, "unable to drop search index %s", name)
	}
	logrus.WithField("index", name).Info("dropped atlas search index")
	return nil
}

// listIndexes lists search indexes, filtered to name when it is not empty
func listIndexes(ctx context.Context, view SearchIndexView, name string) ([]model.SearchIndexStatus, error) {
	var searchIdxOpts *options.SearchIndexesOptions
	if name != "" {
		searchIdxOpts = options.SearchIndexes().SetName(name)
	}
	cursor, err := view.List(ctx, searchIdxOpts)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list search indexes")
	}

	indexes := []model.SearchIndexStatus{}
	if err := cursor.All(ctx, &indexes); err != nil {
		return nil, errors.Wrap(err, "unable to decode search indexes")
	}
	return indexes, nil
}

func findIndex(ctx context.Context, view SearchIndexView, name string) (*model.SearchIndexStatus, error) {
	indexes, err := listIndexes(ctx, view, name)
	if err != nil {
		return nil, err
	}
	for i := range indexes {
		if indexes[i].Name == name {
			return &indexes[i], nil
		}
	}
	return nil, nil
}

// waitQueryable polls until the index reports queryable, fails, or ctx ends
func waitQueryable(ctx context.Context, view SearchIndexView, name string, interval time.Duration) (*model.SearchIndexStatus, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *model.SearchIndexStatus
	for {
		if err := ctx.Err(); err != nil {
			return last, errors.Wrapf(err, "search index %s is not queryable yet", name)
		}
		status, err := findIndex(ctx, view, name)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, errors.Errorf("search index %s does not exist", name)
		}
		if status.Queryable {
			return status, nil
		}
		if status.Status == consts.IndexFailed {
			return status, errors.Errorf("search index %s failed to build", name)
		}
		logrus.WithFields(logrus.Fields{
			"index":  name,
			"status": status.Status,
		}).Debug("waiting for search index")
		last = status

		select {
		case <-ctx.Done():
			return status, errors.Wrapf(ctx.Err(), "search index %s is not queryable yet", name)
		case <-ticker.C:
		}
	}
}

func isIndexExists(err error) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(consts.IndexAlreadyExists) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate index") || strings.Contains(msg, "already exists")
}
