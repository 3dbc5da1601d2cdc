package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// DateLayout formato de los campos de tipo fecha.
const DateLayout = "2006-01-02"

// ValidateValue comprueba un valor contra el tipo declarado. Vacío siempre es válido.
// Lo usa el servidor al escribir; la lectura nunca valida.
func ValidateValue(def entity.FieldDefinition, value string) error {
	if value == "" {
		return nil
	}
	switch def.Kind {
	case entity.FieldKindNumber:
		if _, err := decimal.NewFromString(value); err != nil {
			return domain.Invalid(def.Name, "debe ser un número")
		}
	case entity.FieldKindDate:
		if _, err := time.Parse(DateLayout, value); err != nil {
			return domain.Invalid(def.Name, "debe ser una fecha AAAA-MM-DD")
		}
	}
	return nil
}
