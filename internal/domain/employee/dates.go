package employee

import (
	"strings"
	"time"

	"github.com/jhoicas/gestorpro-api/internal/domain"
)

const (
	// DisplayLayout DD/MM/AAAA; día y mes aceptan uno o dos dígitos.
	DisplayLayout = "2/1/2006"
	// StorageLayout ISO AAAA-MM-DD.
	StorageLayout = "2006-01-02"

	displayOutLayout = "02/01/2006"
)

// ToStorage convierte DD/MM/AAAA a AAAA-MM-DD. ok = false si no se puede parsear.
func ToStorage(display string) (string, bool) {
	t, ok := ParseDisplay(display)
	if !ok {
		return "", false
	}
	return t.Format(StorageLayout), true
}

// ToDisplay convierte AAAA-MM-DD a DD/MM/AAAA. ok = false si no se puede parsear.
func ToDisplay(storage string) (string, bool) {
	t, ok := ParseStorage(storage)
	if !ok {
		return "", false
	}
	return t.Format(displayOutLayout), true
}

// ParseDisplay parsea DD/MM/AAAA.
func ParseDisplay(display string) (time.Time, bool) {
	t, err := time.Parse(DisplayLayout, strings.TrimSpace(display))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseStorage parsea AAAA-MM-DD.
func ParseStorage(storage string) (time.Time, bool) {
	t, err := time.Parse(StorageLayout, strings.TrimSpace(storage))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDisplay formatea una fecha como DD/MM/AAAA.
func FormatDisplay(t time.Time) string {
	return t.Format(displayOutLayout)
}

// CheckOrder falla si second (AAAA-MM-DD) es estrictamente anterior a first.
// Fechas que no parsean se reportan contra el campo correspondiente.
func CheckOrder(first, second string) error {
	a, ok := ParseStorage(first)
	if !ok {
		return domain.NewValidationError(domain.FieldAdmissionDate, ReasonAdmissionDate)
	}
	b, ok := ParseStorage(second)
	if !ok {
		return domain.NewValidationError(domain.FieldTerminationDate, ReasonTerminationDate)
	}
	return checkOrder(a, b)
}

func checkOrder(admission, termination time.Time) error {
	if termination.Before(admission) {
		return domain.NewValidationError(domain.FieldTerminationDate, ReasonDateOrder)
	}
	return nil
}

// CheckDateRange verifica el invariante sobre fechas ya parseadas (termination puede ser nil).
func CheckDateRange(admission time.Time, termination *time.Time) error {
	if termination == nil {
		return nil
	}
	return checkOrder(admission, *termination)
}

// DatePair fechas ya convertidas; Termination es nil si no se informó.
type DatePair struct {
	Admission   time.Time
	Termination *time.Time
}

// ValidateDates valida el par admisión (obligatoria) y término (opcional, "" = ausente),
// ambos en DD/MM/AAAA, y devuelve las fechas convertidas.
func ValidateDates(admission, termination string) (DatePair, error) {
	adm, ok := ParseDisplay(admission)
	if !ok {
		return DatePair{}, domain.NewValidationError(domain.FieldAdmissionDate, ReasonAdmissionDate)
	}
	pair := DatePair{Admission: adm}
	if termination == "" {
		return pair, nil
	}
	term, ok := ParseDisplay(termination)
	if !ok {
		return DatePair{}, domain.NewValidationError(domain.FieldTerminationDate, ReasonTerminationDate)
	}
	if err := checkOrder(adm, term); err != nil {
		return DatePair{}, err
	}
	pair.Termination = &term
	return pair, nil
}
