package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MutationResponse resultado de Create/Update/Delete: ID afectado y mensaje para el usuario.
type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Etiquetas sí/no usadas en los listados.
const (
	LabelYes = "Sim"
	LabelNo  = "Não"
)

// YesNoLabel representa un booleano como Sim/Não.
func YesNoLabel(b bool) string {
	if b {
		return LabelYes
	}
	return LabelNo
}

// ParseYesNo acepta S/SIM/1/TRUE y N/NAO/NÃO/0/FALSE sin distinguir mayúsculas.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "SIM", "1", "TRUE":
		return true, nil
	case "N", "NAO", "NÃO", "0", "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("valor %q inválido: use S/N, Sim/Não ou 1/0", s)
}

// YesNo booleano que en JSON acepta true/false, 1/0 o los textos de ParseYesNo.
type YesNo bool

// Bool devuelve el valor como bool.
func (y YesNo) Bool() bool { return bool(y) }

// UnmarshalJSON implementa json.Unmarshaler.
func (y *YesNo) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*y = YesNo(v)
		return nil
	case float64:
		if v == 1 || v == 0 {
			*y = v == 1
			return nil
		}
	case string:
		parsed, err := ParseYesNo(v)
		if err != nil {
			return err
		}
		*y = YesNo(parsed)
		return nil
	}
	return fmt.Errorf("valor %s inválido: use S/N, Sim/Não ou 1/0", string(b))
}

// MarshalJSON implementa json.Marshaler.
func (y YesNo) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(y))
}

// NumberText texto numérico que en JSON acepta número o string ("1500,50").
type NumberText string

// UnmarshalJSON implementa json.Unmarshaler.
func (n *NumberText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", string(b))
	}
	*n = NumberText(num.String())
	return nil
}

// Ptr devuelve un puntero a v. Útil para armar requests de Update.
func Ptr[T any](v T) *T { return &v }
