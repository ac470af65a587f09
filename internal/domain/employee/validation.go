// Package employee contiene las reglas de dominio del funcionario: formato de campos
// (CPF, teléfono, nombre, e-mail, salario) y normalización de fechas.
package employee

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestorpro-api/internal/domain"
	"github.com/jhoicas/gestorpro-api/pkg/cpf"
)

// Mensajes mostrados al usuario.
const (
	ReasonCPF             = "CPF inválido! Verifique e tente novamente."
	ReasonPhone           = "Telefone inválido! Deve ter 10 ou 11 dígitos."
	ReasonName            = "Nome inválido! Digite apenas letras e espaços."
	ReasonEmail           = "E-mail inválido! Exemplo válido: nome@dominio.com"
	ReasonSalary          = "Salário inválido! Informe um valor numérico maior que zero."
	ReasonAdmissionDate   = "Data de admissão inválida! Use o formato DD/MM/AAAA."
	ReasonTerminationDate = "Data de término inválida! Use o formato DD/MM/AAAA."
	ReasonDateOrder       = "A data de término não pode ser anterior à data de admissão."
)

// \w de Go es solo ASCII; se usan clases Unicode para aceptar "joão@empresa.com".
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+$`)

// maxSalary límite exclusivo de la columna NUMERIC(12,2).
var maxSalary = decimal.New(1, 10)

// PhoneDigits conserva solo los dígitos del teléfono.
func PhoneDigits(s string) string {
	return cpf.Digits(s)
}

// ValidPhone 10 u 11 dígitos después de quitar el formato.
func ValidPhone(s string) bool {
	n := len(PhoneDigits(s))
	return n == 10 || n == 11
}

// NormalizeName aplica NFC para que "José" escrito con acento combinante cuente como letras.
func NormalizeName(s string) string {
	return norm.NFC.String(s)
}

// ValidName al menos 2 caracteres sin espacios de borde; solo letras (con acento) y espacios.
func ValidName(s string) bool {
	s = NormalizeName(s)
	if utf8.RuneCountInString(strings.TrimSpace(s)) < 2 {
		return false
	}
	for _, r := range s {
		if r != ' ' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ValidEmail local@dominio.tld sin verificación de DNS.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseSalary acepta coma como separador decimal. ok = false si no es número, no es > 0,
// tiene más de dos decimales o no cabe en NUMERIC(12,2).
func ParseSalary(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil || !v.IsPositive() || v.GreaterThanOrEqual(maxSalary) {
		return decimal.Zero, false
	}
	if !v.Equal(v.Truncate(2)) {
		return decimal.Zero, false
	}
	return v, true
}

// CheckCPF devuelve un ValidationError si el CPF no pasa el dígito verificador.
func CheckCPF(s string) error {
	if !cpf.IsValid(s) {
		return domain.NewValidationError(domain.FieldCPF, ReasonCPF)
	}
	return nil
}

// CheckPhone devuelve un ValidationError si el teléfono no tiene 10 u 11 dígitos.
func CheckPhone(s string) error {
	if !ValidPhone(s) {
		return domain.NewValidationError(domain.FieldPhone, ReasonPhone)
	}
	return nil
}

// CheckName devuelve un ValidationError si el nombre no es válido.
func CheckName(s string) error {
	if !ValidName(s) {
		return domain.NewValidationError(domain.FieldName, ReasonName)
	}
	return nil
}

// CheckEmail devuelve un ValidationError si el e-mail no es válido.
func CheckEmail(s string) error {
	if !ValidEmail(s) {
		return domain.NewValidationError(domain.FieldEmail, ReasonEmail)
	}
	return nil
}

// CheckSalary parsea el salario o devuelve un ValidationError.
func CheckSalary(s string) (decimal.Decimal, error) {
	v, ok := ParseSalary(s)
	if !ok {
		return decimal.Zero, domain.NewValidationError(domain.FieldSalary, ReasonSalary)
	}
	return v, nil
}
