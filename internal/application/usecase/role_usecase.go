package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

// EntityRole nombre del cargo en mensajes de NotFoundError.
const EntityRole = "cargo"

// RoleUseCase casos de uso CRUD para cargos.
// No valida campos: el nombre no vacío lo exige la capa que llama.
type RoleUseCase struct {
	sessions SessionRunner
	log      *logger.Logger
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(sessions SessionRunner, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{sessions: sessions, log: log}
}

// Create crea un nuevo cargo y devuelve el ID asignado.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.MutationResponse, error) {
	role := &entity.Role{
		Name:               strings.TrimSpace(in.Name),
		CanManageInventory: in.CanManageInventory != nil && in.CanManageInventory.Bool(),
		CanSell:            in.CanSell != nil && in.CanSell.Bool(),
	}
	err := uc.sessions.Run(ctx, func(roles repository.RoleRepository, _ repository.EmployeeRepository) error {
		id, err := roles.Create(ctx, role)
		role.ID = id
		return err
	})
	if err != nil {
		return nil, uc.fail("cargo.create", 0, err)
	}
	uc.log.Info().Str("op", "cargo.create").Int64("cargo_id", role.ID).Msg("cargo creado")
	return &dto.MutationResponse{
		ID:      role.ID,
		Message: fmt.Sprintf("Cargo '%s' criado com sucesso (ID: %d).", role.Name, role.ID),
	}, nil
}

// Get obtiene un cargo por ID.
func (uc *RoleUseCase) Get(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	var role *entity.Role
	err := uc.sessions.Run(ctx, func(roles repository.RoleRepository, _ repository.EmployeeRepository) error {
		var err error
		role, err = roles.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			return &domain.NotFoundError{Entity: EntityRole, ID: id}
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail("cargo.get", id, err)
	}
	return toRoleResponse(role), nil
}

// List lista todos los cargos. Ante una falla de almacenamiento devuelve nil y el error.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	var list []*entity.Role
	err := uc.sessions.Run(ctx, func(roles repository.RoleRepository, _ repository.EmployeeRepository) error {
		var err error
		list, err = roles.List(ctx)
		return err
	})
	if err != nil {
		return nil, uc.fail("cargo.list", 0, err)
	}
	return lo.Map(list, func(r *entity.Role, _ int) dto.RoleResponse {
		return *toRoleResponse(r)
	}), nil
}

// Update lee el cargo, mezcla los campos informados sobre los actuales y escribe los tres.
func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.UpdateRoleRequest) (*dto.MutationResponse, error) {
	err := uc.sessions.Run(ctx, func(roles repository.RoleRepository, _ repository.EmployeeRepository) error {
		current, err := roles.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &domain.NotFoundError{Entity: EntityRole, ID: id}
		}
		merged := mergeRole(current, in)
		n, err := roles.Update(ctx, merged)
		if err != nil {
			return err
		}
		if n == 0 {
			// borrado entre la lectura y la escritura
			return &domain.NotFoundError{Entity: EntityRole, ID: id}
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail("cargo.update", id, err)
	}
	uc.log.Info().Str("op", "cargo.update").Int64("cargo_id", id).Msg("cargo actualizado")
	return &dto.MutationResponse{ID: id, Message: "Cargo atualizado com sucesso."}, nil
}

// Delete elimina un cargo por ID. Los funcionarios que lo referencian quedan a cargo de la FK.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	err := uc.sessions.Run(ctx, func(roles repository.RoleRepository, _ repository.EmployeeRepository) error {
		n, err := roles.Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return &domain.NotFoundError{Entity: EntityRole, ID: id}
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail("cargo.delete", id, err)
	}
	uc.log.Info().Str("op", "cargo.delete").Int64("cargo_id", id).Msg("cargo eliminado")
	return &dto.MutationResponse{ID: id, Message: fmt.Sprintf("Cargo %d foi deletado com sucesso.", id)}, nil
}

func (uc *RoleUseCase) fail(op string, id int64, err error) error {
	err = domain.WrapStorage(op, err)
	logFailure(uc.log, op, id, err)
	return err
}

func mergeRole(current *entity.Role, in dto.UpdateRoleRequest) *entity.Role {
	merged := *current
	if in.Name != nil {
		merged.Name = strings.TrimSpace(*in.Name)
	}
	if in.CanManageInventory != nil {
		merged.CanManageInventory = in.CanManageInventory.Bool()
	}
	if in.CanSell != nil {
		merged.CanSell = in.CanSell.Bool()
	}
	return &merged
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:                 r.ID,
		Name:               r.Name,
		CanManageInventory: dto.YesNoLabel(r.CanManageInventory),
		CanSell:            dto.YesNoLabel(r.CanSell),
	}
}
