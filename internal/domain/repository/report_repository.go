package repository

import (
	"context"

	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
)

// ReportRepository consultas agregadas de solo lectura.
type ReportRepository interface {
	// HeadcountByRole cuenta funcionarios por cargo, de mayor a menor.
	// Los cargos sin funcionarios no aparecen.
	HeadcountByRole(ctx context.Context) ([]entity.HeadcountRow, error)
}
