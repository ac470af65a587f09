package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `funcionario_id, cargo_id, nome, email, cpf, telefone,
	data_admissao, data_termino, salario, ativo`

// EmployeeRepo implementación del puerto EmployeeRepository sobre la tabla funcionario.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para funcionarios.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// Create inserta el funcionario y devuelve funcionario_id.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	query := `
		INSERT INTO funcionario (cargo_id, nome, email, cpf, telefone, data_admissao, data_termino, salario, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING funcionario_id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		e.RoleID, e.Name, e.Email, e.CPF, e.Phone,
		toDate(&e.AdmissionDate), toDate(e.TerminationDate), e.Salary, e.Active,
	).Scan(&id)
	if err != nil {
		return 0, wrapErr("insert funcionario", err)
	}
	return id, nil
}

// GetByID obtiene un funcionario por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionario WHERE funcionario_id = $1`
	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get funcionario", err)
	}
	return e, nil
}

// List lista todos los funcionarios por ID.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionario ORDER BY funcionario_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list funcionarios", err)
	}
	defer rows.Close()
	list := []*entity.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, wrapErr("scan funcionario", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list funcionarios", err)
	}
	return list, nil
}

// Update escribe los nueve campos mutables.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) (int64, error) {
	query := `
		UPDATE funcionario SET
			cargo_id = $2, nome = $3, email = $4, cpf = $5, telefone = $6,
			data_admissao = $7, data_termino = $8, salario = $9, ativo = $10
		WHERE funcionario_id = $1`
	cmd, err := r.db.Exec(ctx, query,
		e.ID, e.RoleID, e.Name, e.Email, e.CPF, e.Phone,
		toDate(&e.AdmissionDate), toDate(e.TerminationDate), e.Salary, e.Active,
	)
	if err != nil {
		return 0, wrapErr("update funcionario", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un funcionario por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM funcionario WHERE funcionario_id = $1`, id)
	if err != nil {
		return 0, wrapErr("delete funcionario", err)
	}
	return cmd.RowsAffected(), nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var (
		e           entity.Employee
		admission   pgtype.Date
		termination pgtype.Date
	)
	err := row.Scan(&e.ID, &e.RoleID, &e.Name, &e.Email, &e.CPF, &e.Phone,
		&admission, &termination, &e.Salary, &e.Active)
	if err != nil {
		return nil, err
	}
	e.AdmissionDate = admission.Time
	if termination.Valid {
		t := termination.Time
		e.TerminationDate = &t
	}
	return &e, nil
}

// toDate nil -> NULL.
func toDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
