package dto

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría con su esquema ordenado.
type CategoryResponse struct {
	ID               string                    `json:"id"`
	OwnerID          string                    `json:"owner_id"`
	Name             string                    `json:"name"`
	FieldDefinitions []FieldDefinitionResponse `json:"field_definitions"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// ToCategoryResponse convierte la entidad al formato de salida.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	fields := make([]FieldDefinitionResponse, 0, len(c.FieldDefinitions))
	for _, fd := range c.FieldDefinitions {
		fields = append(fields, ToFieldDefinitionResponse(fd))
	}
	return CategoryResponse{
		ID:               c.ID,
		OwnerID:          c.OwnerID,
		Name:             c.Name,
		FieldDefinitions: fields,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// Entity reconstruye la entidad (lado cliente).
func (r CategoryResponse) Entity() entity.Category {
	fields := make([]entity.FieldDefinition, 0, len(r.FieldDefinitions))
	for _, fd := range r.FieldDefinitions {
		fields = append(fields, fd.Entity())
	}
	return entity.Category{
		ID:               r.ID,
		OwnerID:          r.OwnerID,
		Name:             r.Name,
		FieldDefinitions: fields,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
