package dto

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CreateFieldDefinitionRequest entrada para agregar un campo a una categoría.
// Kind vacío equivale a "text".
type CreateFieldDefinitionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Kind string `json:"kind" validate:"omitempty,oneof=text number date"`
}

// FieldDefinitionResponse salida de una definición de campo.
type FieldDefinitionResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToFieldDefinitionResponse convierte la entidad al formato de salida.
func ToFieldDefinitionResponse(fd entity.FieldDefinition) FieldDefinitionResponse {
	return FieldDefinitionResponse{
		ID:         fd.ID,
		CategoryID: fd.CategoryID,
		Name:       fd.Name,
		Kind:       string(fd.Kind),
		CreatedAt:  fd.CreatedAt,
	}
}

// Entity reconstruye la entidad (lado cliente).
func (r FieldDefinitionResponse) Entity() entity.FieldDefinition {
	return entity.FieldDefinition{
		ID:         r.ID,
		CategoryID: r.CategoryID,
		Name:       r.Name,
		Kind:       entity.FieldKind(r.Kind),
		CreatedAt:  r.CreatedAt,
	}
}
