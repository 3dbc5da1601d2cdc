package dto

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// FieldValueDTO par definición/valor en el cable.
type FieldValueDTO struct {
	FieldDefinitionID string `json:"field_definition_id"`
	Value             string `json:"value"`
}

// CreateAssetRequest entrada para crear un activo.
type CreateAssetRequest struct {
	CategoryID  string          `json:"category_id" validate:"required"`
	Patrimonio  string          `json:"patrimonio" validate:"required"`
	FieldValues []FieldValueDTO `json:"field_values"`
}

// UpdateAssetRequest reemplazo completo (PUT). CategoryID, si viene, debe coincidir.
type UpdateAssetRequest struct {
	CategoryID  string          `json:"category_id,omitempty"`
	Patrimonio  string          `json:"patrimonio" validate:"required"`
	FieldValues []FieldValueDTO `json:"field_values"`
}

// PatchAssetRequest actualización parcial (PATCH). Si FieldValues viene,
// reemplaza el conjunto completo.
type PatchAssetRequest struct {
	CategoryID  *string          `json:"category_id,omitempty"`
	Patrimonio  *string          `json:"patrimonio,omitempty"`
	FieldValues *[]FieldValueDTO `json:"field_values,omitempty"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	CategoryID  string          `json:"category_id"`
	Patrimonio  string          `json:"patrimonio"`
	FieldValues []FieldValueDTO `json:"field_values"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToAssetResponse convierte la entidad al formato de salida.
func ToAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		CategoryID:  a.CategoryID,
		Patrimonio:  a.Patrimonio,
		FieldValues: FromFieldValues(a.FieldValues),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// Entity reconstruye la entidad (lado cliente).
func (r AssetResponse) Entity() entity.Asset {
	return entity.Asset{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		CategoryID:  r.CategoryID,
		Patrimonio:  r.Patrimonio,
		FieldValues: ToFieldValues(r.FieldValues),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToFieldValues convierte del cable al dominio conservando el orden.
func ToFieldValues(in []FieldValueDTO) []entity.FieldValue {
	out := make([]entity.FieldValue, 0, len(in))
	for _, v := range in {
		out = append(out, entity.FieldValue{FieldDefinitionID: v.FieldDefinitionID, Value: v.Value})
	}
	return out
}

// FromFieldValues convierte del dominio al cable conservando el orden.
func FromFieldValues(in []entity.FieldValue) []FieldValueDTO {
	out := make([]FieldValueDTO, 0, len(in))
	for _, v := range in {
		out = append(out, FieldValueDTO{FieldDefinitionID: v.FieldDefinitionID, Value: v.Value})
	}
	return out
}
