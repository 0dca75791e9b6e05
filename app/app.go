package app

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app/config"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app/search"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cache"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
	repo "github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/model"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/mongodatabase"
)

// App our application
type App struct {
	Config        *config.Config
	Repos         *repo.Repos
	SearchService search.Service
}

// NewContext create new request context
func (a *App) NewContext() *Context {
	return &Context{
		Logger: logrus.StandardLogger(),
	}
}

// New create a new app. The connection guard runs before any network call.
func New(ctx context.Context) (app *App, err error) {
	appConf, err := config.InitConfig()
	if err != nil {
		return nil, err
	}

	mongoDBConf, err := mongodatabase.InitConfig()
	if err != nil {
		return nil, err
	}

	if err := mongoDBConf.Guard(); err != nil {
		return nil, &UserError{Message: consts.LocalAtlasSetup, StatusCode: http.StatusPreconditionFailed}
	}

	cacheConf, err := cache.InitConfig()
	if err != nil {
		return nil, err
	}

	if mongoDBConf.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, mongoDBConf.ConnectTimeout)
		defer cancel()
	}

	conn, err := mongoDBConf.New(ctx)
	if err != nil {
		return nil, err
	}

	repos := &repo.Repos{
		MongoDB: conn,
	}
	if cacheConf.Enabled {
		repos.Cache = cache.New(cacheConf)
		if err := repos.Cache.Ping(); err != nil {
			logrus.WithError(err).Warn("result cache unreachable, continuing without it")
			_ = repos.Cache.Close()
			repos.Cache = nil
		}
	}

	return &App{
		Config:        appConf,
		Repos:         repos,
		SearchService: search.NewService(repos, appConf),
	}, nil
}

// Close closes application handles and connections
func (a *App) Close(ctx context.Context) {
	logrus.Debug("closing connection to database")

	if err := a.Repos.MongoDB.Close(ctx); err != nil {
		logrus.WithError(err).Error("unable to close connection to mongo")
	}
	if a.Repos.Cache != nil {
		if err := a.Repos.Cache.Close(); err != nil {
			logrus.WithError(err).Error("unable to close connection to cache")
		}
	}
}

// ValidationError error when inputs are invalid
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserError when user is disallowed from resource
type UserError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *UserError) Error() string {
	return e.Message
}
