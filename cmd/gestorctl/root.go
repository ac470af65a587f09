package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestorpro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestorpro-api/pkg/config"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "gestorctl",
	Short:         "GestorPro: operación de la base de cargos y funcionarios",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute ejecuta el comando raíz; Ctrl+C cancela el contexto de los subcomandos.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(seedCmd)
}

// env dependencias compartidas por los subcomandos.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

// loadEnv carga la configuración y el logger; withPool abre además el pool.
func loadEnv(ctx context.Context, withPool bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	e := &env{cfg: cfg, log: log}
	if withPool {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		e.pool = pool
	}
	return e, nil
}

func (e *env) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}
