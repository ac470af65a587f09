package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
)

// ReportHandler maneja los reportes.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Headcount godoc
// @Summary      Funcionários por cargo
// @Description  Cargos sem funcionários não aparecem. Ordenado por quantidade desc.
// @Tags         relatorios
// @Produce      json
// @Success      200  {array}   dto.HeadcountRow
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/relatorios/funcionarios-por-cargo [get]
func (h *ReportHandler) Headcount(c *fiber.Ctx) error {
	out, err := h.uc.Headcount(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// HeadcountPDF godoc
// @Summary      Funcionários por cargo (PDF)
// @Tags         relatorios
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/relatorios/funcionarios-por-cargo/pdf [get]
func (h *ReportHandler) HeadcountPDF(c *fiber.Ctx) error {
	out, err := h.uc.HeadcountPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="funcionarios-por-cargo.pdf"`)
	return c.Send(out)
}
