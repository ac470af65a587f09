package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestorpro-api/internal/application/dto"
	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestorpro-api/pkg/cpf"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga cargos y funcionarios de demostración",
	Long: `Carga cargos y funcionarios de demostración pasando por los mismos casos de uso
que la API, así que cada registro se valida igual. Los CPF se generan con dígitos verificadores válidos.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

type seedRole struct {
	name               string
	canManageInventory bool
	canSell            bool
}

type seedEmployee struct {
	role      int // índice en seedRoles
	name      string
	email     string
	cpfBase   string // 9 dígitos; los verificadores se calculan
	phone     string
	admission string
	salary    string
}

var seedRoles = []seedRole{
	{"Gerente", true, true},
	{"Vendedor", false, true},
	{"Estoquista", true, false},
}

var seedEmployees = []seedEmployee{
	{0, "Mariana Alves", "mariana.alves@gestorpro.com.br", "123456789", "(11) 98765-4321", "02/01/2020", "8500,00"},
	{1, "João Pereira", "joao.pereira@gestorpro.com.br", "987654321", "(21) 3456-7890", "15/03/2022", "3200,50"},
	{1, "Luísa Conceição", "luisa.conceicao@gestorpro.com.br", "456123789", "(31) 99876-5432", "01/08/2023", "3100,00"},
	{2, "Carlos Souza", "carlos.souza@gestorpro.com.br", "321654987", "(41) 3322-1100", "10/10/2021", "2800,00"},
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := loadEnv(ctx, true)
	if err != nil {
		return err
	}
	defer e.Close()

	sessions := postgres.NewSessionRunner(e.pool)
	roles := usecase.NewRoleUseCase(sessions, e.log)
	employees := usecase.NewEmployeeUseCase(sessions, e.log)

	roleIDs, err := seedAllRoles(ctx, roles)
	if err != nil {
		return err
	}
	for _, s := range seedEmployees {
		res, err := createSeedEmployee(ctx, employees, s, roleIDs[s.role])
		if err != nil {
			return fmt.Errorf("funcionário %s: %s", s.name, domain.Message(err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	}
	return nil
}

func seedAllRoles(ctx context.Context, roles *usecase.RoleUseCase) ([]int64, error) {
	ids := make([]int64, 0, len(seedRoles))
	for _, r := range seedRoles {
		inv, sell := dto.YesNo(r.canManageInventory), dto.YesNo(r.canSell)
		res, err := roles.Create(ctx, dto.CreateRoleRequest{Name: r.name, CanManageInventory: &inv, CanSell: &sell})
		if err != nil {
			return nil, fmt.Errorf("cargo %s: %s", r.name, domain.Message(err))
		}
		ids = append(ids, res.ID)
	}
	return ids, nil
}

func createSeedEmployee(ctx context.Context, uc *usecase.EmployeeUseCase, s seedEmployee, roleID int64) (*dto.MutationResponse, error) {
	check, err := cpf.CheckDigits(s.cpfBase)
	if err != nil {
		return nil, err
	}
	active := dto.YesNo(true)
	return uc.Create(ctx, dto.CreateEmployeeRequest{
		RoleID:        roleID,
		Name:          s.name,
		Email:         s.email,
		CPF:           cpf.Format(s.cpfBase + check),
		Phone:         s.phone,
		AdmissionDate: s.admission,
		Salary:        dto.NumberText(s.salary),
		Active:        &active,
	})
}
