package index

import (
	"context"
	"testing"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
)

// StubApp makes the command open the given app instead of connecting
func StubApp(t *testing.T, a *app.App) {
	t.Helper()
	prev := newApp
	newApp = func(context.Context) (*app.App, error) { return a, nil }
	t.Cleanup(func() { newApp = prev })
}
