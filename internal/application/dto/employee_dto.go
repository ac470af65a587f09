package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest entrada para crear un funcionario.
// Las fechas van en DD/MM/AAAA; TerminationDate vacío = sin término.
// El formato de cada campo lo valida el caso de uso, en su propio orden.
type CreateEmployeeRequest struct {
	RoleID          int64      `json:"role_id" validate:"required,gt=0"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	CPF             string     `json:"cpf"`
	Phone           string     `json:"phone"`
	AdmissionDate   string     `json:"admission_date"`
	TerminationDate string     `json:"termination_date"`
	Salary          NumberText `json:"salary"`
	Active          *YesNo     `json:"active" validate:"required"`
}

// UpdateEmployeeRequest entrada para actualizar un funcionario. nil = mantener el valor actual.
// TerminationDate = "" borra la fecha de término.
type UpdateEmployeeRequest struct {
	RoleID          *int64      `json:"role_id" validate:"omitnil,gt=0"`
	Name            *string     `json:"name"`
	Email           *string     `json:"email"`
	CPF             *string     `json:"cpf"`
	Phone           *string     `json:"phone"`
	AdmissionDate   *string     `json:"admission_date"`
	TerminationDate *string     `json:"termination_date"`
	Salary          *NumberText `json:"salary"`
	Active          *YesNo      `json:"active"`
}

// EmployeeResponse salida de un funcionario: fechas en DD/MM/AAAA, activo como Sim/Não.
type EmployeeResponse struct {
	ID              int64           `json:"id"`
	RoleID          int64           `json:"role_id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	CPF             string          `json:"cpf"`
	Phone           string          `json:"phone"`
	PhoneFormatted  string          `json:"phone_formatted"`
	AdmissionDate   string          `json:"admission_date"`
	TerminationDate string          `json:"termination_date"`
	Salary          decimal.Decimal `json:"salary"`
	Active          string          `json:"active"`
}
