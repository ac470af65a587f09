package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
)

// SessionRunner abre una sesión de BD por operación, entrega repositorios atados a ella
// y la libera al terminar, también cuando fn falla. No hay transacción: cada sentencia es atómica
// por sí sola, por lo que leer-mezclar-escribir en Update no es atómico.
type SessionRunner interface {
	Run(ctx context.Context, fn func(
		roles repository.RoleRepository,
		employees repository.EmployeeRepository,
	) error) error
}

// ReportRunner igual que SessionRunner pero para las consultas de reportes.
type ReportRunner interface {
	RunReport(ctx context.Context, fn func(reports repository.ReportRepository) error) error
}

// HeadcountPDFGenerator genera la representación PDF del reporte de funcionarios por cargo.
type HeadcountPDFGenerator interface {
	GenerateHeadcountPDF(ctx context.Context, rows []dto.HeadcountRow, generatedAt time.Time) ([]byte, error)
}
