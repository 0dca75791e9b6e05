package cmd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cmd/index"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cmd/search"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/cmd/server"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
)

const envPrefix = "MOVIESEARCH"

func New() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "moviesearch",
		Short:         "Atlas Search autocomplete over the sample_mflix movies collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(cmd.ErrOrStderr(), verbose)
			return initConfig(configFile)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "make output more verbose")
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is default.yaml)")

	cmd.AddCommand(
		NewVersionCommand(),
		search.NewSearchCommand(),
		index.NewIndexCommand(),
		server.NewServeCommand(),
	)
	return cmd
}

// Run executes the cli with args and returns the process exit code. Input
// and setup errors print their message on stdout; anything else is logged.
func Run(args []string, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	root := New()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var verr *app.ValidationError
	var uerr *app.UserError
	switch {
	case errors.As(err, &verr):
		io.WriteString(stdout, verr.Message+"\n")
	case errors.As(err, &uerr):
		io.WriteString(stdout, uerr.Message+"\n")
	default:
		logrus.WithError(err).Error("moviesearch failed")
	}
	return 1
}

func setupLogging(out io.Writer, verbose bool) {
	logrus.SetOutput(out)
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	isTerminal := false
	if f, ok := out.(*os.File); ok {
		isTerminal = term.IsTerminal(int(f.Fd()))
	}

	if !verbose && !isTerminal {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:     isTerminal,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	}
}

func initConfig(configFile string) error {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("default")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/moviesearch")
		viper.AddConfigPath("$HOME/.moviesearch")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("mongodatabase.host", consts.URIEnv, envPrefix+"_MONGODATABASE_HOST"); err != nil {
		return errors.Wrap(err, "unable to bind URI")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "unable to read config from file")
		}
		logrus.Debug("no config file found, using defaults")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("mongodatabase.host", consts.DefaultURI)
	viper.SetDefault("mongodatabase.dbName", consts.DefaultDatabase)
	viper.SetDefault("mongodatabase.collection", consts.DefaultCollection)
	viper.SetDefault("mongodatabase.connectTimeout", 30*time.Second)
	viper.SetDefault("mongodatabase.localGuard", true)

	viper.SetDefault("app.index.name", consts.DefaultIndexName)
	viper.SetDefault("app.index.waitTimeout", 2*time.Minute)
	viper.SetDefault("app.index.pollInterval", 5*time.Second)
	viper.SetDefault("app.search.path", consts.TitleField)
	viper.SetDefault("app.search.limit", consts.MaxResults)
	viper.SetDefault("app.search.defaultQuery", "")
	viper.SetDefault("app.search.timeout", 30*time.Second)
	viper.SetDefault("app.search.output", consts.FormatTable)

	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.host", "localhost")
	viper.SetDefault("cache.port", "6379")
	viper.SetDefault("cache.password", "")
	viper.SetDefault("cache.db", 0)
	viper.SetDefault("cache.ttl", 10*time.Minute)

	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.proxyCount", 0)
	viper.SetDefault("api.maxContentSize", 1)
	viper.SetDefault("api.readTimeout", 15*time.Second)
	viper.SetDefault("api.writeTimeout", 30*time.Second)
	viper.SetDefault("api.closeTimeout", 10*time.Second)
	viper.SetDefault("api.allowedOrigins", []string{"*"})
	viper.SetDefault("api.logDir", "")
	viper.SetDefault("api.skipIndex", false)
}
