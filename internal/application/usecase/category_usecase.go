package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías. Todo se limita al dueño autenticado:
// la categoría de otro usuario se reporta como inexistente.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	fields     repository.FieldDefinitionRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, fields repository.FieldDefinitionRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, fields: fields}
}

// Create crea una categoría sin campos.
func (uc *CategoryUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// GetByID obtiene la categoría con su esquema. Categoría y campos se leen en paralelo.
func (uc *CategoryUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.CategoryResponse, error) {
	var (
		category *entity.Category
		fields   []entity.FieldDefinition
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		category, err = ownedCategory(gctx, uc.categories, ownerID, id)
		return err
	})
	g.Go(func() error {
		var err error
		fields, err = uc.fields.ListByCategory(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	category.FieldDefinitions = fields
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// List lista las categorías del dueño con sus esquemas, en orden de creación.
func (uc *CategoryUseCase) List(ctx context.Context, ownerID string) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	grouped := map[string][]entity.FieldDefinition{}
	if len(ids) > 0 {
		if grouped, err = uc.fields.ListByCategories(ctx, ids); err != nil {
			return nil, err
		}
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		c.FieldDefinitions = grouped[c.ID]
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Delete elimina la categoría con sus campos, activos y valores.
func (uc *CategoryUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := ownedCategory(ctx, uc.categories, ownerID, id); err != nil {
		return err
	}
	return uc.categories.Delete(ctx, id)
}

// ownedCategory devuelve la categoría solo si pertenece a ownerID.
func ownedCategory(ctx context.Context, repo repository.CategoryRepository, ownerID, id string) (*entity.Category, error) {
	category, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return category, nil
}
