package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Sirven como categoría para errors.Is;
// el detalle viaja en ValidationError, NotFoundError y StorageError.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrStorage      = errors.New("falla de almacenamiento")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrReferenced   = errors.New("registro referenciado por otros registros")
)

// Campos validados. Se usan como Field en ValidationError y como clave en respuestas HTTP.
const (
	FieldName            = "nome"
	FieldEmail           = "email"
	FieldCPF             = "cpf"
	FieldPhone           = "telefone"
	FieldSalary          = "salario"
	FieldAdmissionDate   = "data_admissao"
	FieldTerminationDate = "data_termino"
	FieldRoleID          = "cargo_id"
	FieldRoleName        = "cargo_nome"
)

// ValidationError formato o rango inválido detectado antes de cualquier escritura.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un error de validación para un campo.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError el registro objetivo de Update/Delete no existe.
type NotFoundError struct {
	Entity string // "cargo", "funcionário"
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Nenhum %s encontrado com ID %d.", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError falla de conexión, de consulta o de constraint, con contexto de la operación.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// WrapStorage envuelve err como StorageError salvo que ya sea un error de dominio tipado.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		v  *ValidationError
		nf *NotFoundError
		st *StorageError
	)
	if errors.As(err, &v) || errors.As(err, &nf) || errors.As(err, &st) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// Message deriva el mensaje a mostrar al usuario a partir del tipo de error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var (
		v  *ValidationError
		nf *NotFoundError
		st *StorageError
	)
	switch {
	case errors.As(err, &v):
		return v.Reason
	case errors.As(err, &nf):
		return nf.Error()
	case errors.As(err, &st):
		switch {
		case errors.Is(st.Err, ErrDuplicate):
			return "Já existe um registro com esses dados."
		case errors.Is(st.Err, ErrReferenced):
			return "O registro está em uso e não pode ser removido ou referencia um registro inexistente."
		}
		return fmt.Sprintf("Erro no banco de dados (%s): %v", st.Op, st.Err)
	}
	return err.Error()
}
