package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmdash/config"
	"farmdash/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	cfg  config.AppConfig
	lggr *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "farmdash",
	Short:         "Farm management dashboard and record server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if lggr, err = logger.New(cfg.LogLevel); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lggr != nil {
			_ = lggr.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, recordsCmd, seedCmd)
}

// run serves e on addr until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, e *echo.Echo, addr string) error {
	errc := make(chan error, 1)
	go func() { errc <- e.Start(addr) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	lggr.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if lggr != nil {
			lggr.Error("farmdash", zap.Error(err))
		} else {
			os.Stderr.WriteString("farmdash: " + err.Error() + "\n")
		}
		stop()
		os.Exit(1)
	}
}
