package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/api"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/util"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serves the movie autocomplete api",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

// SetLogs tees logs to stderr and a daily file under logDir. The returned
// file is nil when logDir is empty or cannot be opened.
func SetLogs(stderr io.Writer, logDir string) *os.File {
	if logDir == "" {
		return nil
	}
	logFilePath := path.Join(logDir, time.Now().Format("2006-01-02")+".log")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.Error("error creating log directory:", err)
		return nil
	}

	file, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		logrus.Error("error opening log file:", err)
		return nil
	}

	logrus.SetOutput(io.MultiWriter(stderr, file))
	logrus.SetFormatter(&logrus.JSONFormatter{
		DisableHTMLEscape: true,
		TimestampFormat:   "2006-01-02 15:04:05",
	})
	return file
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	apiSrv, err := api.New(a)
	if err != nil {
		return err
	}
	if logFile := SetLogs(cmd.ErrOrStderr(), apiSrv.Config.LogDir); logFile != nil {
		defer func() {
			logrus.SetOutput(cmd.ErrOrStderr())
			_ = logFile.Close()
		}()
	}

	if !apiSrv.Config.SkipIndex {
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

	if err := util.PrettyPrint(cmd.OutOrStdout(), map[string]interface{}{
		"port":  apiSrv.Config.Port,
		"index": a.SearchService.IndexName(),
	}); err != nil {
		return err
	}

	return serveAPI(ctx, apiSrv)
}

func serveAPI(ctx context.Context, apiSrv *api.API) error {
	s := &http.Server{
		Addr:         fmt.Sprintf(":%d", apiSrv.Config.Port),
		Handler:      apiSrv.Handler(),
		ReadTimeout:  apiSrv.Config.ReadTimeout,
		WriteTimeout: apiSrv.Config.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		defer util.RecoverGoroutinePanic(errChan)
		logrus.Infof("serving api at http://127.0.0.1:%d", apiSrv.Config.Port)
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok && err != nil {
			return errors.Wrap(err, "api server failed")
		}
		return nil
	case <-ctx.Done():
		logrus.Info("signal caught. shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), apiSrv.Config.CloseTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "api shutdown failed")
	}
	return nil
}
