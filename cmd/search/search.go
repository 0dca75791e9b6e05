package search

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/output"
)

var newApp = app.New

func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search [movie title]",
		Short:   "provision the title index and autocomplete a movie title",
		Example: "  moviesearch search The Matrix\n  URI=mongodb://localhost:50197 moviesearch search mat --format plain",
		Args:    cobra.ArbitraryArgs,
		RunE:    run,
	}
	cmd.Flags().String("format", consts.FormatTable, "output format: table, plain or json")
	cmd.Flags().Int("limit", consts.MaxResults, "maximum number of titles, at most 20")
	cmd.Flags().Bool("skip-index", false, "do not provision the search index before querying")
	cmd.Flags().Bool("wait", false, "wait until the search index is queryable before querying")
	return cmd
}

// Query joins the positional words, falling back to the configured default.
func Query(args []string) string {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		query = strings.TrimSpace(viper.GetString("app.search.defaultQuery"))
	}
	return query
}

func run(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlag("app.search.output", cmd.Flags().Lookup("format")); err != nil {
		return err
	}
	if err := viper.BindPFlag("app.search.limit", cmd.Flags().Lookup("limit")); err != nil {
		return err
	}

	query := Query(args)
	if query == "" {
		return &app.ValidationError{Message: consts.SearchUsage}
	}
	logrus.WithField("query", query).Info("🎥 - query")

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	if skip, _ := cmd.Flags().GetBool("skip-index"); !skip {
		res, err := a.SearchService.EnsureIndex(ctx)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"index":   res.Name,
			"created": res.Created,
			"status":  res.Status,
		}).Info("atlas search index provisioned")
	}

	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		if _, err := a.SearchService.WaitQueryable(ctx); err != nil {
			return err
		}
	}

	movies, err := a.SearchService.AutoComplete(ctx, query)
	if err != nil {
		return err
	}
	return output.Render(cmd.OutOrStdout(), a.Config.Search.Output, movies)
}
