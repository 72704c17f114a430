package httperr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Clasificación de errores de Postgres en el borde del repositorio.

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

// IsExclusionConflict detecta el rechazo de una constraint de exclusión
// de rangos (doble reserva ganada por otra escritura).
func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgerrcode.ExclusionViolation
}
