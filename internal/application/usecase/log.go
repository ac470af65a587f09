package usecase

import (
	"errors"

	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/pkg/logger"
)

// logFailure registra fallas de almacenamiento como error; validación y not found solo en debug.
func logFailure(log *logger.Logger, op string, id int64, err error) {
	if errors.Is(err, domain.ErrStorage) {
		log.Error().Err(err).Str("op", op).Int64("id", id).Msg("falla de almacenamiento")
		return
	}
	log.Debug().Err(err).Str("op", op).Int64("id", id).Msg("operación rechazada")
}

var errPDFDisabled = errors.New("generador de PDF no configurado")
