package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gestorpro-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503): cargo inexistente
// al escribir un funcionario, o cargo con funcionarios al borrarlo.
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// hasCode solo confía en el SQLSTATE del driver, nunca en el texto del error.
func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// wrapErr agrega contexto al error del driver y, si es una violación de constraint,
// la categoría de dominio correspondiente.
func wrapErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrReferenced, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
