package entity

import "time"

// Category representa un tipo de activo definido por el usuario.
// Es dueña de su esquema: FieldDefinitions en orden de inserción.
type Category struct {
	ID               string
	OwnerID          string
	Name             string
	FieldDefinitions []FieldDefinition
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Field devuelve la definición con ese ID, si pertenece a la categoría.
func (c *Category) Field(id string) (FieldDefinition, bool) {
	for _, fd := range c.FieldDefinitions {
		if fd.ID == id {
			return fd, true
		}
	}
	return FieldDefinition{}, false
}
