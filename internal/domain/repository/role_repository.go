package repository

import (
	"context"

	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role (tabla cargo).
type RoleRepository interface {
	// Create inserta el cargo y devuelve el ID asignado por la base.
	Create(ctx context.Context, role *entity.Role) (int64, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	// Update escribe los tres campos en una sola sentencia. Devuelve las filas afectadas.
	Update(ctx context.Context, role *entity.Role) (int64, error)
	// Delete devuelve las filas afectadas (0 = no existía).
	Delete(ctx context.Context, id int64) (int64, error)
}
