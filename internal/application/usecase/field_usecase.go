package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// FieldUseCase casos de uso del esquema de una categoría.
// Las definiciones son inmutables: solo se agregan o se eliminan.
type FieldUseCase struct {
	categories repository.CategoryRepository
	fields     repository.FieldDefinitionRepository
}

// NewFieldUseCase construye el caso de uso.
func NewFieldUseCase(categories repository.CategoryRepository, fields repository.FieldDefinitionRepository) *FieldUseCase {
	return &FieldUseCase{categories: categories, fields: fields}
}

// Add agrega una definición al final del esquema. Kind vacío es text.
// Los nombres no se exigen únicos dentro de la categoría.
func (uc *FieldUseCase) Add(ctx context.Context, ownerID, categoryID string, in dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	kind := entity.FieldKind(strings.TrimSpace(in.Kind))
	if kind == "" {
		kind = entity.FieldKindText
	}
	if !kind.Valid() {
		return nil, domain.Invalid("kind", "tipo no soportado (text, number, date)")
	}
	if _, err := ownedCategory(ctx, uc.categories, ownerID, categoryID); err != nil {
		return nil, err
	}
	field := &entity.FieldDefinition{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		Name:       name,
		Kind:       kind,
		CreatedAt:  time.Now(),
	}
	if err := uc.fields.Create(ctx, field); err != nil {
		return nil, err
	}
	out := dto.ToFieldDefinitionResponse(*field)
	return &out, nil
}

// ListByCategory lista el esquema en orden de inserción.
func (uc *FieldUseCase) ListByCategory(ctx context.Context, ownerID, categoryID string) ([]dto.FieldDefinitionResponse, error) {
	if _, err := ownedCategory(ctx, uc.categories, ownerID, categoryID); err != nil {
		return nil, err
	}
	list, err := uc.fields.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FieldDefinitionResponse, 0, len(list))
	for _, fd := range list {
		out = append(out, dto.ToFieldDefinitionResponse(fd))
	}
	return out, nil
}

// GetByID obtiene una definición si su categoría pertenece al dueño.
func (uc *FieldUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.FieldDefinitionResponse, error) {
	field, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToFieldDefinitionResponse(*field)
	return &out, nil
}

// Delete elimina la definición y todos los valores que la referencian.
func (uc *FieldUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uc.owned(ctx, ownerID, id); err != nil {
		return err
	}
	return uc.fields.Delete(ctx, id)
}

func (uc *FieldUseCase) owned(ctx context.Context, ownerID, id string) (*entity.FieldDefinition, error) {
	field, err := uc.fields.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := ownedCategory(ctx, uc.categories, ownerID, field.CategoryID); err != nil {
		return nil, err
	}
	return field, nil
}
