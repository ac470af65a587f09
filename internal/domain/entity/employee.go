package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un funcionario vinculado a un cargo.
// CPF y Phone se guardan solo con dígitos.
type Employee struct {
	ID              int64
	RoleID          int64
	Name            string
	Email           string
	CPF             string
	Phone           string
	AdmissionDate   time.Time
	TerminationDate *time.Time // nil = sin fecha de término
	Salary          decimal.Decimal
	Active          bool
}
