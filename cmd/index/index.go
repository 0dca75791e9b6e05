package index

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/output"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/util"
)

var newApp = app.New

func NewIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "manage the title autocomplete search index",
	}
	cmd.AddCommand(
		newCreateCommand(),
		newDropCommand(),
		newListCommand(),
	)
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create the search index if it does not exist",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App) error {
			res, err := a.SearchService.EnsureIndex(ctx)
			if err != nil {
				return err
			}
			if wait, _ := cmd.Flags().GetBool("wait"); wait {
				status, err := a.SearchService.WaitQueryable(ctx)
				if err != nil {
					return err
				}
				res.Status = status.Status
			}
			return util.PrettyPrint(cmd.OutOrStdout(), res)
		}),
	}
	cmd.Flags().Bool("wait", false, "wait until the index is queryable")
	return cmd
}

func newDropCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "drop the search index",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App) error {
			return a.SearchService.DropIndex(ctx)
		}),
	}
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the collection's search indexes and their status",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App) error {
			indexes, err := a.SearchService.ListIndexes(ctx)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return output.RenderIndexes(cmd.OutOrStdout(), format, indexes)
		}),
	}
	cmd.Flags().String("format", consts.FormatTable, "output format: table, plain or json")
	return cmd
}

// withApp opens the app for the duration of fn and always closes it
func withApp(fn func(ctx context.Context, cmd *cobra.Command, a *app.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(context.Background())

		logrus.WithField("index", a.SearchService.IndexName()).Debug(cmd.CommandPath())
		return fn(ctx, cmd, a)
	}
}
