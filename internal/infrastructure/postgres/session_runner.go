package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
)

var (
	_ usecase.SessionRunner = (*SessionRunner)(nil)
	_ usecase.ReportRunner  = (*SessionRunner)(nil)
)

// SessionRunner abre una sesión (conexión del pool) por operación y la devuelve al terminar.
// Sin transacción: cada sentencia se confirma sola.
type SessionRunner struct {
	pool *pgxpool.Pool
}

// NewSessionRunner construye el runner con el pool.
func NewSessionRunner(pool *pgxpool.Pool) *SessionRunner {
	return &SessionRunner{pool: pool}
}

// Run adquiere una conexión, ejecuta fn con los repositorios atados a ella y la libera
// aunque fn falle.
func (r *SessionRunner) Run(ctx context.Context, fn func(
	roles repository.RoleRepository,
	employees repository.EmployeeRepository,
) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("abrir sesión: %w", err)
	}
	defer conn.Release()

	return fn(NewRoleRepository(conn), NewEmployeeRepository(conn))
}

// RunReport igual que Run, para el repositorio de reportes.
func (r *SessionRunner) RunReport(ctx context.Context, fn func(reports repository.ReportRepository) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("abrir sesión: %w", err)
	}
	defer conn.Release()

	return fn(NewReportRepository(conn))
}
