package main

import (
	"os"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
