// Package memory implementa los repositorios sobre mapas en memoria. Lo usan los tests
// de casos de uso y de HTTP en lugar de PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/gestorpro-api/internal/application/usecase"
	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
)

var (
	_ usecase.SessionRunner = (*Store)(nil)
	_ usecase.ReportRunner  = (*Store)(nil)
)

// Store guarda cargos y funcionarios. Los IDs comparten una sola secuencia.
// No es seguro para uso concurrente.
type Store struct {
	Roles     map[int64]entity.Role
	Employees map[int64]entity.Employee
	nextID    int64

	FailWith error // si no es nil, toda operación falla con este error
	Writes   int   // Create/Update/Delete ejecutados
	Runs     int   // sesiones abiertas
	Released int   // sesiones liberadas
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{Roles: map[int64]entity.Role{}, Employees: map[int64]entity.Employee{}}
}

// Run implementa usecase.SessionRunner.
func (s *Store) Run(_ context.Context, fn func(repository.RoleRepository, repository.EmployeeRepository) error) error {
	s.Runs++
	defer func() { s.Released++ }()
	return fn(&memRoles{s}, &memEmployees{s})
}

// RunReport implementa usecase.ReportRunner.
func (s *Store) RunReport(_ context.Context, fn func(repository.ReportRepository) error) error {
	s.Runs++
	defer func() { s.Released++ }()
	return fn(&memReports{s})
}

// AddRole inserta un cargo sin contar como escritura.
func (s *Store) AddRole(name string) int64 {
	s.nextID++
	s.Roles[s.nextID] = entity.Role{ID: s.nextID, Name: name}
	return s.nextID
}

// AddEmployee inserta un funcionario sin contar como escritura.
func (s *Store) AddEmployee(e entity.Employee) int64 {
	s.nextID++
	e.ID = s.nextID
	s.Employees[e.ID] = e
	return e.ID
}

type memRoles struct{ s *Store }

func (r *memRoles) Create(_ context.Context, role *entity.Role) (int64, error) {
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	r.s.Writes++
	r.s.nextID++
	role.ID = r.s.nextID
	r.s.Roles[role.ID] = *role
	return role.ID, nil
}

func (r *memRoles) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	role, ok := r.s.Roles[id]
	if !ok {
		return nil, nil
	}
	return &role, nil
}

func (r *memRoles) List(_ context.Context) ([]*entity.Role, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]*entity.Role, 0, len(r.s.Roles))
	for _, role := range r.s.Roles {
		role := role
		out = append(out, &role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRoles) Update(_ context.Context, role *entity.Role) (int64, error) {
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	r.s.Writes++
	if _, ok := r.s.Roles[role.ID]; !ok {
		return 0, nil
	}
	r.s.Roles[role.ID] = *role
	return 1, nil
}

func (r *memRoles) Delete(_ context.Context, id int64) (int64, error) {
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	r.s.Writes++
	for _, e := range r.s.Employees {
		if e.RoleID == id {
			return 0, fmt.Errorf("delete cargo: %w", domain.ErrReferenced)
		}
	}
	if _, ok := r.s.Roles[id]; !ok {
		return 0, nil
	}
	delete(r.s.Roles, id)
	return 1, nil
}

type memEmployees struct{ s *Store }

func (r *memEmployees) Create(_ context.Context, e *entity.Employee) (int64, error) {
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	r.s.Writes++
	return r.s.AddEmployee(*e), nil
}

func (r *memEmployees) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	e, ok := r.s.Employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memEmployees) List(_ context.Context) ([]*entity.Employee, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]*entity.Employee, 0, len(r.s.Employees))
	for _, e := range r.s.Employees {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memEmployees) Update(_ context.Context, e *entity.Employee) (int64, error) {
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	r.s.Writes++
	if _, ok := r.s.Employees[e.ID]; !ok {
		return 0, nil
	}
	r.s.Employees[e.ID] = *e
	return 1, nil
}

func (r *memEmployees) Delete(_ context.Context, id int64) (int64, error) {
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	r.s.Writes++
	if _, ok := r.s.Employees[id]; !ok {
		return 0, nil
	}
	delete(r.s.Employees, id)
	return 1, nil
}

type memReports struct{ s *Store }

// HeadcountByRole reproduce el JOIN + GROUP BY + ORDER BY de la consulta real.
func (r *memReports) HeadcountByRole(_ context.Context) ([]entity.HeadcountRow, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	counts := map[int64]int64{}
	for _, e := range r.s.Employees {
		if _, ok := r.s.Roles[e.RoleID]; ok {
			counts[e.RoleID]++
		}
	}
	out := make([]entity.HeadcountRow, 0, len(counts))
	for id, n := range counts {
		out = append(out, entity.HeadcountRow{RoleID: id, RoleName: r.s.Roles[id].Name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].RoleName < out[j].RoleName
	})
	return out, nil
}
