package main

import (
	"github.com/spf13/cobra"

	"farmdash/database"
	"farmdash/pkg/recordserver/repositoryImp"
	"farmdash/pkg/recordserver/seed"
	"farmdash/pkg/store/mock"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo fixtures into empty record server tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		f, err := mock.LoadFixtures()
		if err != nil {
			return err
		}
		_, err = seed.Fixtures(cmd.Context(), repositoryImp.New(db), f, lggr)
		return err
	},
}
