package build

import (
	"runtime"
	"time"
)

// Version is set at link time:
//
//	go build -ldflags "-X github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/build.Version=1.0.0"
var Version = "dev"

// Time is the build time.
var Time string = time.Now().Format(time.RFC3339)

// GoVersion is the Go version that built the binary.
var GoVersion string = runtime.Version()
