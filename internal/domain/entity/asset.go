package entity

import "time"

// Asset registro de inventario. Pertenece a una sola categoría durante toda su vida.
type Asset struct {
	ID          string
	OwnerID     string
	CategoryID  string
	Patrimonio  string // etiqueta de inventario visible
	FieldValues []FieldValue
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FieldValue valor de un activo para una definición de campo.
type FieldValue struct {
	FieldDefinitionID string
	Value             string
}
