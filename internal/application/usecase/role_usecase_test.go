package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/infrastructure/memory"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

func newRoleUseCase() (*usecase.RoleUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewRoleUseCase(store, logger.Nop()), store
}

func TestRoleUseCase_CreateYList(t *testing.T) {
	uc, store := newRoleUseCase()
	ctx := context.Background()

	yes, no := dto.YesNo(true), dto.YesNo(false)
	res, err := uc.Create(ctx, dto.CreateRoleRequest{Name: " Gerente ", CanManageInventory: &yes, CanSell: &no})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Cargo 'Gerente' criado com sucesso (ID: 1).", res.Message)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, dto.RoleResponse{ID: 1, Name: "Gerente", CanManageInventory: "Sim", CanSell: "Não"}, list[0])
	assert.Equal(t, store.Runs, store.Released, "toda sesión abierta debe liberarse")
}

func TestRoleUseCase_List_FallaAlmacenamiento(t *testing.T) {
	uc, store := newRoleUseCase()
	store.FailWith = errConexion

	list, err := uc.List(context.Background())
	assert.Nil(t, list)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, errConexion)
	assert.Equal(t, 1, store.Released)
}

// Update sobre un ID inexistente no escribe nada.
func TestRoleUseCase_Update_NoExiste(t *testing.T) {
	uc, store := newRoleUseCase()

	_, err := uc.Update(context.Background(), 99, dto.UpdateRoleRequest{Name: dto.Ptr("Novo")})
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(99), nf.ID)
	assert.Equal(t, "Nenhum cargo encontrado com ID 99.", err.Error())
	assert.Zero(t, store.Writes)
}

func TestRoleUseCase_Update_MantieneCamposNoInformados(t *testing.T) {
	uc, store := newRoleUseCase()
	ctx := context.Background()
	yes := dto.YesNo(true)
	res, err := uc.Create(ctx, dto.CreateRoleRequest{Name: "Caixa", CanManageInventory: &yes, CanSell: &yes})
	require.NoError(t, err)

	no := dto.YesNo(false)
	upd, err := uc.Update(ctx, res.ID, dto.UpdateRoleRequest{CanSell: &no})
	require.NoError(t, err)
	assert.Equal(t, "Cargo atualizado com sucesso.", upd.Message)

	role := store.Roles[res.ID]
	assert.Equal(t, "Caixa", role.Name)
	assert.True(t, role.CanManageInventory)
	assert.False(t, role.CanSell)
}

func TestRoleUseCase_Delete(t *testing.T) {
	uc, store := newRoleUseCase()
	ctx := context.Background()
	id := store.AddRole("Estoquista")

	res, err := uc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, res.Message, "1")
	assert.Empty(t, store.Roles)

	_, err = uc.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleUseCase_Get(t *testing.T) {
	uc, store := newRoleUseCase()
	id := store.AddRole("Vendedor")

	got, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Vendedor", got.Name)

	_, err = uc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleUseCase_Delete_ConFuncionarios(t *testing.T) {
	uc, store := newRoleUseCase()
	id := store.AddRole("Caixa")
	store.AddEmployee(entity.Employee{RoleID: id})

	_, err := uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, domain.ErrReferenced)
	assert.Len(t, store.Roles, 1)
}
