package postgres

import (
	"context"

	"github.com/jhoicas/gestorpro-api/internal/domain/entity"
	"github.com/jhoicas/gestorpro-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas sobre cargo y funcionario.
type ReportRepo struct {
	db Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db Querier) *ReportRepo {
	return &ReportRepo{db: db}
}

// HeadcountByRole cuenta funcionarios por cargo. El desempate por nombre deja el orden estable.
func (r *ReportRepo) HeadcountByRole(ctx context.Context) ([]entity.HeadcountRow, error) {
	query := `
		SELECT c.cargo_id, c.cargo_nome, COUNT(f.funcionario_id) AS quantidade
		FROM funcionario f
		JOIN cargo c ON c.cargo_id = f.cargo_id
		GROUP BY c.cargo_id, c.cargo_nome
		ORDER BY quantidade DESC, c.cargo_nome ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("headcount por cargo", err)
	}
	defer rows.Close()
	out := []entity.HeadcountRow{}
	for rows.Next() {
		var h entity.HeadcountRow
		if err := rows.Scan(&h.RoleID, &h.RoleName, &h.Count); err != nil {
			return nil, wrapErr("scan headcount", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("headcount por cargo", err)
	}
	return out, nil
}
