package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/domain"
)

// Códigos de error devueltos en dto.ErrorResponse.Code.
const (
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeStorage     = "STORAGE"
	CodeInvalidBody = "INVALID_BODY"
	CodeInvalidID   = "INVALID_ID"
	CodeInternal    = "INTERNAL"
)

// writeError traduce un error de dominio a status HTTP + ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	msg := domain.Message(err)
	var v *domain.ValidationError
	switch {
	case errors.As(err, &v):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: msg, Field: v.Field}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: msg}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrReferenced):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeConflict, Message: msg}
	case errors.Is(err, domain.ErrStorage):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeStorage, Message: msg}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: msg}
}

// ErrorHandler manejador global de fiber: errores no tratados por los handlers
// (rutas inexistentes, panics recuperados) con el mismo formato de ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		if fe.Code == fiber.StatusNotFound {
			code = CodeNotFound
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// parseID lee :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
