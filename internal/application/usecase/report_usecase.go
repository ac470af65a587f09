package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

// ReportUseCase reporte de funcionarios por cargo.
type ReportUseCase struct {
	sessions ReportRunner
	pdf      HeadcountPDFGenerator
	log      *logger.Logger
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta a PDF.
func NewReportUseCase(sessions ReportRunner, pdf HeadcountPDFGenerator, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{sessions: sessions, pdf: pdf, log: log, now: time.Now}
}

// Headcount devuelve (cargo, cantidad) ordenado por cantidad desc y nombre asc.
// Cargos sin funcionarios no aparecen. Ante falla devuelve nil y el error.
func (uc *ReportUseCase) Headcount(ctx context.Context) ([]dto.HeadcountRow, error) {
	var rows []entity.HeadcountRow
	err := uc.sessions.RunReport(ctx, func(reports repository.ReportRepository) error {
		var err error
		rows, err = reports.HeadcountByRole(ctx)
		return err
	})
	if err != nil {
		err = domain.WrapStorage("relatorio.headcount", err)
		logFailure(uc.log, "relatorio.headcount", 0, err)
		return nil, err
	}
	return lo.Map(rows, func(r entity.HeadcountRow, _ int) dto.HeadcountRow {
		return dto.HeadcountRow{RoleID: r.RoleID, RoleName: r.RoleName, Count: r.Count}
	}), nil
}

// HeadcountPDF genera el mismo reporte como PDF.
func (uc *ReportUseCase) HeadcountPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.WrapStorage("relatorio.pdf", errPDFDisabled)
	}
	rows, err := uc.Headcount(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateHeadcountPDF(ctx, rows, uc.now())
	if err != nil {
		err = domain.WrapStorage("relatorio.pdf", err)
		logFailure(uc.log, "relatorio.pdf", 0, err)
		return nil, err
	}
	uc.log.Info().Str("op", "relatorio.pdf").Int("cargos", len(rows)).Int("bytes", len(out)).Msg("reporte PDF generado")
	return out, nil
}
