package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
	"github.com/jhoicas/gestorpro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestorpro-api/pkg/config"
)

// Requiere una base PostgreSQL desechable: TEST_DATABASE_URL=postgres://...
func setupDB(t *testing.T) *postgres.SessionRunner {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	require.NoError(t, postgres.Migrate(ctx, dsn, "reset"))
	require.NoError(t, postgres.Migrate(ctx, dsn, "up"))

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	_, err = pool.Exec(ctx, `TRUNCATE funcionario, cargo RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return postgres.NewSessionRunner(pool)
}

func TestRepositories_Postgres(t *testing.T) {
	runner := setupDB(t)
	ctx := context.Background()
	adm := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	err := runner.Run(ctx, func(roles repository.RoleRepository, employees repository.EmployeeRepository) error {
		caixa, err := roles.Create(ctx, &entity.Role{Name: "Caixa", CanSell: true})
		require.NoError(t, err)
		gerente, err := roles.Create(ctx, &entity.Role{Name: "Gerente", CanManageInventory: true})
		require.NoError(t, err)
		_, err = roles.Create(ctx, &entity.Role{Name: "Vazio"})
		require.NoError(t, err)

		for i, cpf := range []string{"52998224725", "11144477735", "39053344705"} {
			roleID := caixa
			if i == 2 {
				roleID = gerente
			}
			_, err := employees.Create(ctx, &entity.Employee{
				RoleID: roleID, Name: "Ana", Email: "ana@x.com", CPF: cpf, Phone: "11999998888",
				AdmissionDate: adm, Salary: decimal.RequireFromString("1500.50"), Active: true,
			})
			require.NoError(t, err)
		}

		got, err := employees.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Salary.Equal(decimal.RequireFromString("1500.50")))
		assert.Nil(t, got.TerminationDate)
		assert.Equal(t, adm, got.AdmissionDate)

		missing, err := employees.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, missing)

		n, err := roles.Update(ctx, &entity.Role{ID: 999, Name: "x"})
		require.NoError(t, err)
		assert.Zero(t, n)

		// CPF repetido
		_, err = employees.Create(ctx, &entity.Employee{
			RoleID: caixa, Name: "Bia", Email: "b@x.com", CPF: "52998224725", Phone: "1199998888",
			AdmissionDate: adm, Salary: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicate)

		// cargo con funcionarios
		_, err = roles.Delete(ctx, caixa)
		assert.ErrorIs(t, err, domain.ErrReferenced)
		return nil
	})
	require.NoError(t, err)

	err = runner.RunReport(ctx, func(reports repository.ReportRepository) error {
		rows, err := reports.HeadcountByRole(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Caixa", rows[0].RoleName)
		assert.Equal(t, int64(2), rows[0].Count)
		assert.Equal(t, "Gerente", rows[1].RoleName)
		return nil
	})
	require.NoError(t, err)
}
