// Package cpf valida el Cadastro de Pessoas Físicas (Brasil): 11 dígitos, los dos
// últimos son dígitos de verificación módulo 11.
package cpf

import (
	"errors"
	"fmt"
	"strings"
)

// Length cantidad de dígitos de un CPF.
const Length = 11

var (
	ErrLength     = errors.New("cpf: debe tener 11 dígitos")
	ErrRepeated   = errors.New("cpf: dígitos todos iguales")
	ErrCheckDigit = errors.New("cpf: dígito de verificación inválido")
)

// Validate valida el CPF (con o sin puntos/guiones).
// s puede ser "529.982.247-25" o "52998224725".
func Validate(s string) error {
	digits := Digits(s)
	if len(digits) != Length {
		return fmt.Errorf("%w: se encontraron %d", ErrLength, len(digits))
	}
	if strings.Count(digits, digits[:1]) == Length {
		return ErrRepeated
	}
	for i := 9; i < Length; i++ {
		expected := checkDigit(digits, i)
		if digits[i] != expected {
			return fmt.Errorf("%w: posición %d esperado %c, recibido %c", ErrCheckDigit, i+1, expected, digits[i])
		}
	}
	return nil
}

// IsValid es la forma booleana de Validate.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// CheckDigits calcula los dos dígitos de verificación para los 9 primeros dígitos.
func CheckDigits(base string) (string, error) {
	digits := Digits(base)
	if len(digits) != 9 {
		return "", fmt.Errorf("cpf: se requieren 9 dígitos base, se encontraron %d", len(digits))
	}
	first := checkDigit(digits, 9)
	second := checkDigit(digits+string(first), 10)
	return string([]byte{first, second}), nil
}

// checkDigit suma digits[n] * ((i+1) - n) para n < i y reduce ((suma*10) mod 11) mod 10.
func checkDigit(digits string, i int) byte {
	var sum int
	for n := 0; n < i; n++ {
		sum += int(digits[n]-'0') * ((i + 1) - n)
	}
	return byte('0' + (sum*10)%11%10)
}

// Digits conserva solo los dígitos ASCII.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format devuelve el CPF como 000.000.000-00. Si no tiene 11 dígitos lo devuelve sin cambios.
func Format(s string) string {
	d := Digits(s)
	if len(d) != Length {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}
