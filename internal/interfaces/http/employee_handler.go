package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para funcionarios.
type EmployeeHandler struct {
	uc       *usecase.EmployeeUseCase
	validate *requestValidator
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, validate *requestValidator) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Cadastrar funcionário
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Dados do funcionário"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, CodeInvalidBody, "cuerpo inválido: "+err.Error())
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar funcionários
// @Tags         funcionarios
// @Produce      json
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/funcionarios [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter funcionário por ID
// @Tags         funcionarios
// @Produce      json
// @Param        id   path  int  true  "ID do funcionário"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, CodeInvalidID, "id inválido")
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar funcionário (campos omitidos mantêm o valor atual; data_termino "" remove a data)
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID do funcionário"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, CodeInvalidID, "id inválido")
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, CodeInvalidBody, "cuerpo inválido: "+err.Error())
	}
	if err := h.validate.Struct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir funcionário
// @Tags         funcionarios
// @Produce      json
// @Param        id   path  int  true  "ID do funcionário"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, CodeInvalidID, "id inválido")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
