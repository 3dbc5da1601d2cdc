package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las categorías devueltas no incluyen FieldDefinitions; las compone el caso de uso.
// GetByID y Delete devuelven domain.ErrNotFound si el ID no existe.
// Delete debe borrar en cascada definiciones, activos y valores.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
