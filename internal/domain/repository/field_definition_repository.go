package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// FieldDefinitionRepository define el puerto de persistencia para FieldDefinition.
// Los listados respetan el orden de inserción. GetByID y Delete devuelven domain.ErrNotFound.
type FieldDefinitionRepository interface {
	Create(ctx context.Context, field *entity.FieldDefinition) error
	GetByID(ctx context.Context, id string) (*entity.FieldDefinition, error)
	ListByCategory(ctx context.Context, categoryID string) ([]entity.FieldDefinition, error)
	// ListByCategories agrupa por CategoryID; las categorías sin campos no aparecen.
	ListByCategories(ctx context.Context, categoryIDs []string) (map[string][]entity.FieldDefinition, error)
	// Delete elimina la definición y los valores que la referencian.
	Delete(ctx context.Context, id string) error
}
