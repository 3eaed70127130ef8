package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmdash/config"
	"farmdash/pkg/app"
	healthCtrlImp "farmdash/pkg/health/controllerImp"
	"farmdash/pkg/recordstore"
	"farmdash/pkg/store/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API and page",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := provider.New(cfg, lggr)
		if err != nil {
			return err
		}

		var checks []healthCtrlImp.Option
		if cfg.StoreMode == config.StoreRemote {
			client := recordstore.NewClient(cfg.RecordsURL, cfg.RecordsProjectID, cfg.RecordsPublicKey, cfg.RequestTimeout)
			checks = append(checks, healthCtrlImp.WithCheck("records", func(ctx context.Context) error {
				return client.Ping(ctx, "farm_c")
			}))
		}

		e, err := app.New(app.Deps{Config: cfg, Store: set, Logger: lggr, Health: checks})
		if err != nil {
			return err
		}
		lggr.Info("dashboard listening", zap.String("port", cfg.Port), zap.String("store", cfg.StoreMode))
		return run(cmd.Context(), e, ":"+cfg.Port)
	},
}
