package main

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmdash/database"
	healthCtrlImp "farmdash/pkg/health/controllerImp"
	"farmdash/pkg/middleware"
	recordsCtrlImp "farmdash/pkg/recordserver/controllerImp"
	"farmdash/pkg/recordserver/repositoryImp"
	"farmdash/router"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Serve the record protocol from the local SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}

		e := router.Base(echo.New(), lggr)
		e.GET("/health", healthCtrlImp.NewHealthCtrl("sqlite", healthCtrlImp.WithDB(db)).Health)
		g := e.Group("/v1/tables", middleware.APIKey(cfg.RecordsPublicKey))
		recordsCtrlImp.New(repositoryImp.New(db), lggr).Register(g)

		if cfg.RecordsPublicKey == "" {
			lggr.Warn("RECORDS_PUBLIC_KEY is empty, record server is unauthenticated")
		}
		lggr.Info("record server listening", zap.String("port", cfg.RecordsPort), zap.String("db", cfg.DBPath))
		return run(cmd.Context(), e, ":"+cfg.RecordsPort)
	},
}
