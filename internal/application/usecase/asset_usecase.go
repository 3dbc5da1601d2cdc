package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

// AssetUseCase casos de uso de activos y sus valores.
// Al escribir se valida que cada valor pertenezca al esquema de la categoría del activo.
type AssetUseCase struct {
	categories repository.CategoryRepository
	fields     repository.FieldDefinitionRepository
	assets     repository.AssetRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(categories repository.CategoryRepository, fields repository.FieldDefinitionRepository, assets repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{categories: categories, fields: fields, assets: assets}
}

// Create crea un activo con sus valores.
func (uc *AssetUseCase) Create(ctx context.Context, ownerID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	patrimonio := strings.TrimSpace(in.Patrimonio)
	if patrimonio == "" {
		return nil, domain.Invalid("patrimonio", "el patrimonio es obligatorio")
	}
	if in.CategoryID == "" {
		return nil, domain.Invalid("category_id", "la categoría es obligatoria")
	}
	if _, err := ownedCategory(ctx, uc.categories, ownerID, in.CategoryID); err != nil {
		return nil, err
	}
	values := dto.ToFieldValues(in.FieldValues)
	if err := uc.checkValues(ctx, in.CategoryID, values); err != nil {
		return nil, err
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		CategoryID:  in.CategoryID,
		Patrimonio:  patrimonio,
		FieldValues: values,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	out := dto.ToAssetResponse(asset)
	return &out, nil
}

// GetByID obtiene un activo del dueño.
func (uc *AssetUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.AssetResponse, error) {
	asset, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToAssetResponse(asset)
	return &out, nil
}

// List lista los activos del dueño; categoryID vacío no filtra.
func (uc *AssetUseCase) List(ctx context.Context, ownerID, categoryID string) ([]dto.AssetResponse, error) {
	list, err := uc.assets.List(ctx, repository.AssetFilter{OwnerID: ownerID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ToAssetResponse(a))
	}
	return out, nil
}

// Update reemplaza patrimonio y el conjunto completo de valores.
func (uc *AssetUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	patch := dto.PatchAssetRequest{Patrimonio: &in.Patrimonio}
	if in.CategoryID != "" {
		patch.CategoryID = &in.CategoryID
	}
	values := in.FieldValues
	if values == nil {
		values = []dto.FieldValueDTO{}
	}
	patch.FieldValues = &values
	return uc.Patch(ctx, ownerID, id, patch)
}

// Patch actualiza solo lo que viene. Los valores, si vienen, reemplazan el conjunto.
func (uc *AssetUseCase) Patch(ctx context.Context, ownerID, id string, in dto.PatchAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil && *in.CategoryID != asset.CategoryID {
		return nil, domain.Invalid("category_id", "un activo no puede cambiar de categoría")
	}
	if in.Patrimonio != nil {
		patrimonio := strings.TrimSpace(*in.Patrimonio)
		if patrimonio == "" {
			return nil, domain.Invalid("patrimonio", "el patrimonio es obligatorio")
		}
		asset.Patrimonio = patrimonio
	}
	if in.FieldValues != nil {
		values := dto.ToFieldValues(*in.FieldValues)
		if err := uc.checkValues(ctx, asset.CategoryID, values); err != nil {
			return nil, err
		}
		asset.FieldValues = values
	}
	asset.UpdatedAt = time.Now()
	if err := uc.assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	out := dto.ToAssetResponse(asset)
	return &out, nil
}

// Delete elimina el activo y sus valores.
func (uc *AssetUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uc.owned(ctx, ownerID, id); err != nil {
		return err
	}
	return uc.assets.Delete(ctx, id)
}

func (uc *AssetUseCase) owned(ctx context.Context, ownerID, id string) (*entity.Asset, error) {
	asset, err := uc.assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return asset, nil
}

// checkValues rechaza valores de otra categoría, duplicados o que no respetan el tipo.
func (uc *AssetUseCase) checkValues(ctx context.Context, categoryID string, values []entity.FieldValue) error {
	if len(values) == 0 {
		return nil
	}
	defs, err := uc.fields.ListByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	byID := make(map[string]entity.FieldDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	seen := make(map[string]struct{}, len(values))
	for i, v := range values {
		def, ok := byID[v.FieldDefinitionID]
		if !ok {
			return domain.Invalid(fmt.Sprintf("field_values[%d]", i), "el campo no pertenece a la categoría del activo")
		}
		if _, dup := seen[v.FieldDefinitionID]; dup {
			return domain.Invalid(fmt.Sprintf("field_values[%d]", i), "valor duplicado para "+def.Name)
		}
		seen[v.FieldDefinitionID] = struct{}{}
		if err := schema.ValidateValue(def, v.Value); err != nil {
			return err
		}
	}
	return nil
}
