package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP para cargos.
type RoleHandler struct {
	uc       *usecase.RoleUseCase
	validate *requestValidator
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase, validate *requestValidator) *RoleHandler {
	return &RoleHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Criar cargo
// @Tags         cargos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "Dados do cargo"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/cargos [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
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
// @Summary      Listar cargos
// @Tags         cargos
// @Produce      json
// @Success      200  {array}   dto.RoleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cargos [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter cargo por ID
// @Tags         cargos
// @Produce      json
// @Param        id   path  int  true  "ID do cargo"
// @Success      200  {object}  dto.RoleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargos/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Atualizar cargo (campos omitidos mantêm o valor atual)
// @Tags         cargos
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID do cargo"
// @Param        body  body  dto.UpdateRoleRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cargos/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, CodeInvalidID, "id inválido")
	}
	var in dto.UpdateRoleRequest
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
// @Summary      Excluir cargo
// @Tags         cargos
// @Produce      json
// @Param        id   path  int  true  "ID do cargo"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cargos/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
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
