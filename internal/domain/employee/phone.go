package employee

import "github.com/nyaruka/phonenumbers"

// DefaultRegion región usada para interpretar teléfonos sin código de país.
const DefaultRegion = "BR"

// FormatPhone devuelve el teléfono en formato nacional, ej. "(11) 99999-8888".
// Si la librería no lo reconoce, devuelve los dígitos sin cambios.
func FormatPhone(digits string) string {
	num, err := phonenumbers.Parse(digits, DefaultRegion)
	if err != nil {
		return digits
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}
