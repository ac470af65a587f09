package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RoleUC     *usecase.RoleUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	validate := newRequestValidator()

	// Cargos
	cargos := api.Group("/cargos")
	roleHandler := NewRoleHandler(deps.RoleUC, validate)
	cargos.Post("/", roleHandler.Create)
	cargos.Get("/", roleHandler.List)
	cargos.Get("/:id", roleHandler.GetByID)
	cargos.Put("/:id", roleHandler.Update)
	cargos.Delete("/:id", roleHandler.Delete)

	// Funcionarios
	funcionarios := api.Group("/funcionarios")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, validate)
	funcionarios.Post("/", employeeHandler.Create)
	funcionarios.Get("/", employeeHandler.List)
	funcionarios.Get("/:id", employeeHandler.GetByID)
	funcionarios.Put("/:id", employeeHandler.Update)
	funcionarios.Delete("/:id", employeeHandler.Delete)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	relatorios := api.Group("/relatorios")
	relatorios.Get("/funcionarios-por-cargo", reportHandler.Headcount)
	relatorios.Get("/funcionarios-por-cargo/pdf", reportHandler.HeadcountPDF)
}
