package repository

import (
	"context"

	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (tabla funcionario).
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) (int64, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	// Update escribe los nueve campos mutables en una sola sentencia.
	Update(ctx context.Context, employee *entity.Employee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
