package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestorpro-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version|reset]",
	Short:     "Ejecuta las migraciones SQL embebidas (goose)",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "version", "reset"},
	RunE:      runMigration,
}

func runMigration(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) == 1 {
		command = args[0]
	}
	e, err := loadEnv(cmd.Context(), false)
	if err != nil {
		return err
	}
	if err := postgres.Migrate(cmd.Context(), e.cfg.DB.ConnectionString(), command); err != nil {
		e.log.Error().Err(err).Str("command", command).Msg("migración fallida")
		return err
	}
	e.log.Info().Str("command", command).Msg("migración ejecutada")
	return nil
}
