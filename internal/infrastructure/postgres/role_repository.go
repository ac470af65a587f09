package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre la tabla cargo.
type RoleRepo struct {
	db Querier
}

// NewRoleRepository construye el adaptador de persistencia para cargos.
func NewRoleRepository(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

// Create inserta el cargo y devuelve cargo_id.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) (int64, error) {
	query := `
		INSERT INTO cargo (cargo_nome, pode_gerenciar_estoque, pode_fazer_vendas)
		VALUES ($1, $2, $3)
		RETURNING cargo_id`
	var id int64
	if err := r.db.QueryRow(ctx, query, role.Name, role.CanManageInventory, role.CanSell).Scan(&id); err != nil {
		return 0, wrapErr("insert cargo", err)
	}
	return id, nil
}

// GetByID obtiene un cargo por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	query := `
		SELECT cargo_id, cargo_nome, pode_gerenciar_estoque, pode_fazer_vendas
		FROM cargo WHERE cargo_id = $1`
	var c entity.Role
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CanManageInventory, &c.CanSell)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get cargo", err)
	}
	return &c, nil
}

// List lista todos los cargos por ID.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	query := `
		SELECT cargo_id, cargo_nome, pode_gerenciar_estoque, pode_fazer_vendas
		FROM cargo ORDER BY cargo_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list cargos", err)
	}
	defer rows.Close()
	list := []*entity.Role{}
	for rows.Next() {
		var c entity.Role
		if err := rows.Scan(&c.ID, &c.Name, &c.CanManageInventory, &c.CanSell); err != nil {
			return nil, wrapErr("scan cargo", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list cargos", err)
	}
	return list, nil
}

// Update escribe nombre y permisos.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) (int64, error) {
	query := `
		UPDATE cargo SET cargo_nome = $2, pode_gerenciar_estoque = $3, pode_fazer_vendas = $4
		WHERE cargo_id = $1`
	cmd, err := r.db.Exec(ctx, query, role.ID, role.Name, role.CanManageInventory, role.CanSell)
	if err != nil {
		return 0, wrapErr("update cargo", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un cargo. Falla con ErrReferenced si tiene funcionarios.
func (r *RoleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM cargo WHERE cargo_id = $1`, id)
	if err != nil {
		return 0, wrapErr("delete cargo", err)
	}
	return cmd.RowsAffected(), nil
}
