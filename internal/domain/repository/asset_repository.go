package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetFilter criterios de listado. CategoryID vacío no filtra.
type AssetFilter struct {
	OwnerID    string
	CategoryID string
}

// AssetRepository define el puerto de persistencia para Asset y sus valores.
// Create y Update escriben el activo y su conjunto de valores de forma atómica;
// Update reemplaza el conjunto completo de valores. GetByID, Update y Delete
// devuelven domain.ErrNotFound si el activo no existe.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id string) error
}
