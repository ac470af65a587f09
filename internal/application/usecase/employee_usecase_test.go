package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/infrastructure/memory"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

func newEmployeeUseCase() (*usecase.EmployeeUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewEmployeeUseCase(store, logger.Nop()), store
}

func validCreate(roleID int64) dto.CreateEmployeeRequest {
	active := dto.YesNo(true)
	return dto.CreateEmployeeRequest{
		RoleID:        roleID,
		Name:          "Ana Souza",
		Email:         "ana@empresa.com",
		CPF:           "529.982.247-25",
		Phone:         "(11) 99999-8888",
		AdmissionDate: "10/01/2024",
		Salary:        "1500,50",
		Active:        &active,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEmployeeUseCase_Create(t *testing.T) {
	uc, store := newEmployeeUseCase()
	roleID := store.AddRole("Caixa")

	res, err := uc.Create(context.Background(), validCreate(roleID))
	require.NoError(t, err)
	assert.Equal(t, "Funcionário 'Ana Souza' adicionado com sucesso (ID: 2).", res.Message)

	e := store.Employees[res.ID]
	assert.Equal(t, "52998224725", e.CPF)
	assert.Equal(t, "11999998888", e.Phone)
	assert.Equal(t, date(2024, 1, 10), e.AdmissionDate)
	assert.Nil(t, e.TerminationDate)
	assert.True(t, e.Salary.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, e.Active)
}

// El primer campo inválido en el orden CPF → telefone → nome → email → salário → datas es el reportado.
func TestEmployeeUseCase_Create_OrdenDeValidacion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateEmployeeRequest)
		field  string
	}{
		{"cpf antes que telefone", func(r *dto.CreateEmployeeRequest) { r.CPF = "123"; r.Phone = "1" }, domain.FieldCPF},
		{"telefone antes que nome", func(r *dto.CreateEmployeeRequest) { r.Phone = "1"; r.Name = "A" }, domain.FieldPhone},
		{"nome antes que email", func(r *dto.CreateEmployeeRequest) { r.Name = "A1"; r.Email = "x" }, domain.FieldName},
		{"email antes que salario", func(r *dto.CreateEmployeeRequest) { r.Email = "x"; r.Salary = "0" }, domain.FieldEmail},
		{"salario antes que datas", func(r *dto.CreateEmployeeRequest) { r.Salary = "-1"; r.AdmissionDate = "x" }, domain.FieldSalary},
		{"salario con tres decimales", func(r *dto.CreateEmployeeRequest) { r.Salary = "0,001" }, domain.FieldSalary},
		{"termino solo espacios", func(r *dto.CreateEmployeeRequest) { r.TerminationDate = "   " }, domain.FieldTerminationDate},
		{"admissao invalida", func(r *dto.CreateEmployeeRequest) { r.AdmissionDate = "2024-01-10" }, domain.FieldAdmissionDate},
		{"termino anterior", func(r *dto.CreateEmployeeRequest) { r.TerminationDate = "09/01/2024" }, domain.FieldTerminationDate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uc, store := newEmployeeUseCase()
			req := validCreate(store.AddRole("Caixa"))
			c.mutate(&req)

			_, err := uc.Create(context.Background(), req)
			var v *domain.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, c.field, v.Field)
			assert.Zero(t, store.Writes, "no debe escribir si la validación falla")
		})
	}
}

func TestEmployeeUseCase_List(t *testing.T) {
	uc, store := newEmployeeUseCase()
	term := date(2024, 6, 30)
	store.AddEmployee(entity.Employee{
		RoleID: 1, Name: "Ana", Email: "ana@x.com", CPF: "52998224725", Phone: "11999998888",
		AdmissionDate: date(2024, 1, 10), TerminationDate: &term,
		Salary: decimal.RequireFromString("2000"), Active: false,
	})

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "10/01/2024", list[0].AdmissionDate)
	assert.Equal(t, "30/06/2024", list[0].TerminationDate)
	assert.Equal(t, "Não", list[0].Active)
	assert.Equal(t, "529.982.247-25", list[0].CPF)
	assert.Equal(t, "(11) 99999-8888", list[0].PhoneFormatted)
}

func seededEmployee(store *memory.Store) int64 {
	return store.AddEmployee(entity.Employee{
		RoleID: 1, Name: "Ana Souza", Email: "ana@empresa.com", CPF: "52998224725", Phone: "11999998888",
		AdmissionDate: date(2024, 1, 10), Salary: decimal.RequireFromString("1500.50"), Active: true,
	})
}

// Update solo de salario deja intactos los otros ocho campos.
func TestEmployeeUseCase_Update_SoloSalario(t *testing.T) {
	uc, store := newEmployeeUseCase()
	id := seededEmployee(store)
	before := store.Employees[id]

	salary := dto.NumberText("3200,00")
	res, err := uc.Update(context.Background(), id, dto.UpdateEmployeeRequest{Salary: &salary})
	require.NoError(t, err)
	assert.Equal(t, "Funcionário Ana Souza atualizado com sucesso.", res.Message)

	after := store.Employees[id]
	assert.True(t, after.Salary.Equal(decimal.RequireFromString("3200")))
	after.Salary = before.Salary
	assert.Equal(t, before, after)
}

func TestEmployeeUseCase_Update_NoExiste(t *testing.T) {
	uc, store := newEmployeeUseCase()

	_, err := uc.Update(context.Background(), 7, dto.UpdateEmployeeRequest{Name: dto.Ptr("Bruno")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Nenhum funcionário encontrado com ID 7.", err.Error())
	assert.Zero(t, store.Writes)
}

// nome → email → CPF → telefone → salário.
func TestEmployeeUseCase_Update_OrdenDeValidacion(t *testing.T) {
	uc, store := newEmployeeUseCase()
	id := seededEmployee(store)

	_, err := uc.Update(context.Background(), id, dto.UpdateEmployeeRequest{
		CPF:   dto.Ptr("000"),
		Email: dto.Ptr("sem-arroba"),
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, domain.FieldEmail, v.Field)

	_, err = uc.Update(context.Background(), id, dto.UpdateEmployeeRequest{Name: dto.Ptr("")})
	require.ErrorAs(t, err, &v)
	assert.Equal(t, domain.FieldName, v.Field)
	assert.Zero(t, store.Writes)
}

// Salarios que no caben en NUMERIC(12,2) se rechazan antes de leer la fila.
func TestEmployeeUseCase_Update_SalarioFueraDeRango(t *testing.T) {
	uc, store := newEmployeeUseCase()
	id := seededEmployee(store)

	for _, in := range []string{"0,001", "10000000000"} {
		salary := dto.NumberText(in)
		_, err := uc.Update(context.Background(), id, dto.UpdateEmployeeRequest{Salary: &salary})
		var v *domain.ValidationError
		require.ErrorAs(t, err, &v, in)
		assert.Equal(t, domain.FieldSalary, v.Field)
	}
	assert.Zero(t, store.Runs)
	assert.True(t, store.Employees[id].Salary.Equal(decimal.RequireFromString("1500.50")))
}

func TestEmployeeUseCase_Update_Fechas(t *testing.T) {
	uc, store := newEmployeeUseCase()
	id := seededEmployee(store)
	ctx := context.Background()

	// solo término: el par se valida con admisión vacía
	_, err := uc.Update(ctx, id, dto.UpdateEmployeeRequest{TerminationDate: dto.Ptr("01/02/2024")})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, domain.FieldAdmissionDate, v.Field)

	_, err = uc.Update(ctx, id, dto.UpdateEmployeeRequest{
		AdmissionDate:   dto.Ptr("10/01/2024"),
		TerminationDate: dto.Ptr("01/02/2024"),
	})
	require.NoError(t, err)
	require.NotNil(t, store.Employees[id].TerminationDate)
	assert.Equal(t, date(2024, 2, 1), *store.Employees[id].TerminationDate)

	// admisión posterior al término ya guardado
	_, err = uc.Update(ctx, id, dto.UpdateEmployeeRequest{AdmissionDate: dto.Ptr("01/03/2024")})
	require.ErrorAs(t, err, &v)
	assert.Equal(t, domain.FieldTerminationDate, v.Field)
	assert.Equal(t, date(2024, 1, 10), store.Employees[id].AdmissionDate)

	// término "" borra la fecha
	_, err = uc.Update(ctx, id, dto.UpdateEmployeeRequest{
		AdmissionDate:   dto.Ptr("10/01/2024"),
		TerminationDate: dto.Ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, store.Employees[id].TerminationDate)
}

func TestEmployeeUseCase_Delete(t *testing.T) {
	uc, store := newEmployeeUseCase()
	id := seededEmployee(store)

	res, err := uc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Funcionário 1 foi deletado com sucesso.", res.Message)

	_, err = uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, store.Runs, store.Released)
}

func TestEmployeeUseCase_FallaAlmacenamiento(t *testing.T) {
	uc, store := newEmployeeUseCase()
	store.FailWith = errConexion

	_, err := uc.Create(context.Background(), validCreate(1))
	assert.ErrorIs(t, err, domain.ErrStorage)
	_, err = uc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStorage)
	list, err := uc.List(context.Background())
	assert.Nil(t, list)
	assert.ErrorIs(t, err, errConexion)
}
