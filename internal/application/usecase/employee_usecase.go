package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/employee"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
	"github.com/jhoicas/gestorpro-api/pkg/cpf"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

// EntityEmployee nombre del funcionario en mensajes de NotFoundError.
const EntityEmployee = "funcionário"

// EmployeeUseCase casos de uso CRUD para funcionarios. Toda escritura pasa antes por las
// reglas de internal/domain/employee.
type EmployeeUseCase struct {
	sessions SessionRunner
	log      *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(sessions SessionRunner, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{sessions: sessions, log: log}
}

// Create valida CPF → telefone → nome → email → salário → datas (se detiene en el primer error)
// y persiste el funcionario.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.MutationResponse, error) {
	e, err := buildEmployee(in)
	if err != nil {
		return nil, uc.fail("funcionario.create", 0, err)
	}
	err = uc.sessions.Run(ctx, func(_ repository.RoleRepository, employees repository.EmployeeRepository) error {
		id, err := employees.Create(ctx, e)
		e.ID = id
		return err
	})
	if err != nil {
		return nil, uc.fail("funcionario.create", 0, err)
	}
	uc.log.Info().Str("op", "funcionario.create").Int64("funcionario_id", e.ID).Int64("cargo_id", e.RoleID).Msg("funcionario creado")
	return &dto.MutationResponse{
		ID:      e.ID,
		Message: fmt.Sprintf("Funcionário '%s' adicionado com sucesso (ID: %d).", e.Name, e.ID),
	}, nil
}

func buildEmployee(in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	if err := employee.CheckCPF(in.CPF); err != nil {
		return nil, err
	}
	if err := employee.CheckPhone(in.Phone); err != nil {
		return nil, err
	}
	if err := employee.CheckName(in.Name); err != nil {
		return nil, err
	}
	if err := employee.CheckEmail(in.Email); err != nil {
		return nil, err
	}
	salary, err := employee.CheckSalary(string(in.Salary))
	if err != nil {
		return nil, err
	}
	dates, err := employee.ValidateDates(in.AdmissionDate, in.TerminationDate)
	if err != nil {
		return nil, err
	}
	return &entity.Employee{
		RoleID:          in.RoleID,
		Name:            cleanName(in.Name),
		Email:           in.Email,
		CPF:             cpf.Digits(in.CPF),
		Phone:           employee.PhoneDigits(in.Phone),
		AdmissionDate:   dates.Admission,
		TerminationDate: dates.Termination,
		Salary:          salary,
		Active:          in.Active != nil && in.Active.Bool(),
	}, nil
}

// Get obtiene un funcionario por ID.
func (uc *EmployeeUseCase) Get(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	var e *entity.Employee
	err := uc.sessions.Run(ctx, func(_ repository.RoleRepository, employees repository.EmployeeRepository) error {
		var err error
		e, err = employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return &domain.NotFoundError{Entity: EntityEmployee, ID: id}
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail("funcionario.get", id, err)
	}
	return toEmployeeResponse(e), nil
}

// List lista todos los funcionarios. Ante una falla de almacenamiento devuelve nil y el error.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var list []*entity.Employee
	err := uc.sessions.Run(ctx, func(_ repository.RoleRepository, employees repository.EmployeeRepository) error {
		var err error
		list, err = employees.List(ctx)
		return err
	})
	if err != nil {
		return nil, uc.fail("funcionario.list", 0, err)
	}
	return lo.Map(list, func(e *entity.Employee, _ int) dto.EmployeeResponse {
		return *toEmployeeResponse(e)
	}), nil
}

// Update valida solo los campos informados, lee la fila actual, mezcla y escribe los nueve
// campos mutables en una sola sentencia.
//
// Si se informa alguna fecha, el par se valida como en Create usando "" para la ausente; por eso
// cambiar solo la fecha de término exige reenviar la de admisión. TerminationDate = "" la borra.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) (*dto.MutationResponse, error) {
	salary, err := validateUpdate(in)
	if err != nil {
		return nil, uc.fail("funcionario.update", id, err)
	}
	var dates *employee.DatePair
	if in.AdmissionDate != nil || in.TerminationDate != nil {
		pair, err := employee.ValidateDates(lo.FromPtr(in.AdmissionDate), lo.FromPtr(in.TerminationDate))
		if err != nil {
			return nil, uc.fail("funcionario.update", id, err)
		}
		dates = &pair
	}

	var name string
	err = uc.sessions.Run(ctx, func(_ repository.RoleRepository, employees repository.EmployeeRepository) error {
		current, err := employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &domain.NotFoundError{Entity: EntityEmployee, ID: id}
		}
		merged := mergeEmployee(current, in, salary, dates)
		if err := employee.CheckDateRange(merged.AdmissionDate, merged.TerminationDate); err != nil {
			return err
		}
		n, err := employees.Update(ctx, merged)
		if err != nil {
			return err
		}
		if n == 0 {
			return &domain.NotFoundError{Entity: EntityEmployee, ID: id}
		}
		name = merged.Name
		return nil
	})
	if err != nil {
		return nil, uc.fail("funcionario.update", id, err)
	}
	uc.log.Info().Str("op", "funcionario.update").Int64("funcionario_id", id).Msg("funcionario actualizado")
	return &dto.MutationResponse{ID: id, Message: fmt.Sprintf("Funcionário %s atualizado com sucesso.", name)}, nil
}

// validateUpdate valida nome → email → CPF → telefone → salário, solo los informados.
func validateUpdate(in dto.UpdateEmployeeRequest) (*decimal.Decimal, error) {
	if in.Name != nil {
		if err := employee.CheckName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if err := employee.CheckEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.CPF != nil {
		if err := employee.CheckCPF(*in.CPF); err != nil {
			return nil, err
		}
	}
	if in.Phone != nil {
		if err := employee.CheckPhone(*in.Phone); err != nil {
			return nil, err
		}
	}
	if in.Salary == nil {
		return nil, nil
	}
	v, err := employee.CheckSalary(string(*in.Salary))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mergeEmployee(current *entity.Employee, in dto.UpdateEmployeeRequest, salary *decimal.Decimal, dates *employee.DatePair) *entity.Employee {
	merged := *current
	if in.RoleID != nil {
		merged.RoleID = *in.RoleID
	}
	if in.Name != nil {
		merged.Name = cleanName(*in.Name)
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.CPF != nil {
		merged.CPF = cpf.Digits(*in.CPF)
	}
	if in.Phone != nil {
		merged.Phone = employee.PhoneDigits(*in.Phone)
	}
	if dates != nil && in.AdmissionDate != nil {
		merged.AdmissionDate = dates.Admission
	}
	if dates != nil && in.TerminationDate != nil {
		merged.TerminationDate = dates.Termination
	}
	if salary != nil {
		merged.Salary = *salary
	}
	if in.Active != nil {
		merged.Active = in.Active.Bool()
	}
	return &merged
}

// Delete elimina un funcionario por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	err := uc.sessions.Run(ctx, func(_ repository.RoleRepository, employees repository.EmployeeRepository) error {
		n, err := employees.Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return &domain.NotFoundError{Entity: EntityEmployee, ID: id}
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail("funcionario.delete", id, err)
	}
	uc.log.Info().Str("op", "funcionario.delete").Int64("funcionario_id", id).Msg("funcionario eliminado")
	return &dto.MutationResponse{ID: id, Message: fmt.Sprintf("Funcionário %d foi deletado com sucesso.", id)}, nil
}

func (uc *EmployeeUseCase) fail(op string, id int64, err error) error {
	err = domain.WrapStorage(op, err)
	logFailure(uc.log, op, id, err)
	return err
}

func cleanName(s string) string {
	return employee.NormalizeName(strings.TrimSpace(s))
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	out := &dto.EmployeeResponse{
		ID:             e.ID,
		RoleID:         e.RoleID,
		Name:           e.Name,
		Email:          e.Email,
		CPF:            cpf.Format(e.CPF),
		Phone:          e.Phone,
		PhoneFormatted: employee.FormatPhone(e.Phone),
		AdmissionDate:  employee.FormatDisplay(e.AdmissionDate),
		Salary:         e.Salary,
		Active:         dto.YesNoLabel(e.Active),
	}
	if e.TerminationDate != nil {
		out.TerminationDate = employee.FormatDisplay(*e.TerminationDate)
	}
	return out
}
