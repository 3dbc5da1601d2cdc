package entity

import "time"

// FieldKind tipo declarado de un campo personalizado.
type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindNumber FieldKind = "number"
	FieldKindDate   FieldKind = "date"
)

// Valid indica si el tipo es uno de los soportados.
func (k FieldKind) Valid() bool {
	switch k {
	case FieldKindText, FieldKindNumber, FieldKindDate:
		return true
	}
	return false
}

// FieldDefinition una entrada del esquema de una categoría (nombre + tipo).
// Inmutable: solo se crea o se elimina.
type FieldDefinition struct {
	ID         string
	CategoryID string
	Name       string
	Kind       FieldKind
	CreatedAt  time.Time
}
