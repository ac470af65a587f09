package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/gestorpro-api/internal/domain"
)

// requestValidator revisa la forma de los requests (campos obligatorios, límites).
// Las reglas de formato de cada campo viven en el dominio.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("registrar validación notblank: %v", err))
	}
	return &requestValidator{validate: v}
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	return strings.TrimSpace(f.String()) != ""
}

// Struct valida in y devuelve el primer problema como ValidationError.
func (r *requestValidator) Struct(in any) error {
	err := r.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), reasonFor(fe))
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("O campo %s é obrigatório.", fe.Field())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("O campo %s deve ser maior que %s.", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("O campo %s é inválido.", fe.Field())
}
