package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/infrastructure/memory"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

type fakePDF struct {
	rows []dto.HeadcountRow
	err  error
}

func (f *fakePDF) GenerateHeadcountPDF(_ context.Context, rows []dto.HeadcountRow, _ time.Time) ([]byte, error) {
	f.rows = rows
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4"), nil
}

// A con 3, B con 1, C sin funcionarios → [(A,3),(B,1)].
func TestReportUseCase_Headcount(t *testing.T) {
	store := memory.NewStore()
	a := store.AddRole("A")
	b := store.AddRole("B")
	store.AddRole("C")
	for _, roleID := range []int64{a, a, b, a} {
		store.AddEmployee(entity.Employee{RoleID: roleID})
	}
	uc := usecase.NewReportUseCase(store, nil, logger.Nop())

	rows, err := uc.Headcount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.HeadcountRow{
		{RoleID: a, RoleName: "A", Count: 3},
		{RoleID: b, RoleName: "B", Count: 1},
	}, rows)
}

func TestReportUseCase_Headcount_Vacio(t *testing.T) {
	uc := usecase.NewReportUseCase(memory.NewStore(), nil, logger.Nop())

	rows, err := uc.Headcount(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportUseCase_Headcount_Falla(t *testing.T) {
	store := memory.NewStore()
	store.FailWith = errConexion
	uc := usecase.NewReportUseCase(store, nil, logger.Nop())

	rows, err := uc.Headcount(context.Background())
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestReportUseCase_HeadcountPDF(t *testing.T) {
	store := memory.NewStore()
	store.AddEmployee(entity.Employee{RoleID: store.AddRole("Caixa")})
	gen := &fakePDF{}
	uc := usecase.NewReportUseCase(store, gen, logger.Nop())

	out, err := uc.HeadcountPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), out)
	require.Len(t, gen.rows, 1)
	assert.Equal(t, "Caixa", gen.rows[0].RoleName)

	gen.err = errors.New("fuente no encontrada")
	_, err = uc.HeadcountPDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)

	_, err = usecase.NewReportUseCase(store, nil, logger.Nop()).HeadcountPDF(context.Background())
	assert.Error(t, err)
}
