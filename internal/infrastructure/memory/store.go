// Package memory implementa los puertos de persistencia en memoria.
// Pensado para desarrollo (STORAGE_DRIVER=memory) y pruebas; no requiere Postgres.
// Reproduce las mismas reglas que el esquema SQL: orden de inserción,
// claves foráneas y borrado en cascada.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Store guarda las tres tablas bajo un único candado para que las cascadas sean atómicas.
type Store struct {
	mu         sync.RWMutex
	categories []entity.Category
	fields     []entity.FieldDefinition
	assets     []entity.Asset
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{}
}

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return categoryRepo{s} }

// FieldDefinitions devuelve el repositorio de definiciones de campo.
func (s *Store) FieldDefinitions() repository.FieldDefinitionRepository { return fieldRepo{s} }

// Assets devuelve el repositorio de activos.
func (s *Store) Assets() repository.AssetRepository { return assetRepo{s} }

func (s *Store) categoryIndex(id string) int {
	return slices.IndexFunc(s.categories, func(c entity.Category) bool { return c.ID == id })
}

func (s *Store) fieldIndex(id string) int {
	return slices.IndexFunc(s.fields, func(f entity.FieldDefinition) bool { return f.ID == id })
}

func (s *Store) assetIndex(id string) int {
	return slices.IndexFunc(s.assets, func(a entity.Asset) bool { return a.ID == id })
}

// checkValues aplica las restricciones de asset_field_values: FK y unicidad.
func (s *Store) checkValues(values []entity.FieldValue) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if s.fieldIndex(v.FieldDefinitionID) < 0 {
			return fmt.Errorf("definición %s: %w", v.FieldDefinitionID, domain.ErrNotFound)
		}
		if _, dup := seen[v.FieldDefinitionID]; dup {
			return fmt.Errorf("valor duplicado para %s: %w", v.FieldDefinitionID, domain.ErrConflict)
		}
		seen[v.FieldDefinitionID] = struct{}{}
	}
	return nil
}

// dropValues elimina de todos los activos los valores de las definiciones borradas.
func (s *Store) dropValues(fieldIDs map[string]struct{}) {
	if len(fieldIDs) == 0 {
		return
	}
	for k := range s.assets {
		s.assets[k].FieldValues = slices.DeleteFunc(slices.Clone(s.assets[k].FieldValues), func(v entity.FieldValue) bool {
			_, ok := fieldIDs[v.FieldDefinitionID]
			return ok
		})
	}
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.categoryIndex(c.ID) >= 0 {
		return domain.ErrConflict
	}
	cp := *c
	cp.FieldDefinitions = nil
	r.s.categories = append(r.s.categories, cp)
	return nil
}

func (r categoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.categoryIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	cp := r.s.categories[i]
	return &cp, nil
}

func (r categoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0)
	for _, c := range r.s.categories {
		if c.OwnerID == ownerID {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r categoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.categoryIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.categories = slices.Delete(r.s.categories, i, i+1)
	removed := make(map[string]struct{})
	r.s.fields = slices.DeleteFunc(r.s.fields, func(f entity.FieldDefinition) bool {
		if f.CategoryID == id {
			removed[f.ID] = struct{}{}
			return true
		}
		return false
	})
	r.s.assets = slices.DeleteFunc(r.s.assets, func(a entity.Asset) bool { return a.CategoryID == id })
	r.s.dropValues(removed)
	return nil
}

type fieldRepo struct{ s *Store }

func (r fieldRepo) Create(ctx context.Context, f *entity.FieldDefinition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.categoryIndex(f.CategoryID) < 0 {
		return domain.ErrNotFound
	}
	if r.s.fieldIndex(f.ID) >= 0 {
		return domain.ErrConflict
	}
	r.s.fields = append(r.s.fields, *f)
	return nil
}

func (r fieldRepo) GetByID(ctx context.Context, id string) (*entity.FieldDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.fieldIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	cp := r.s.fields[i]
	return &cp, nil
}

func (r fieldRepo) ListByCategory(ctx context.Context, categoryID string) ([]entity.FieldDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.FieldDefinition, 0)
	for _, f := range r.s.fields {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r fieldRepo) ListByCategories(ctx context.Context, categoryIDs []string) (map[string][]entity.FieldDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string][]entity.FieldDefinition)
	for _, f := range r.s.fields {
		if slices.Contains(categoryIDs, f.CategoryID) {
			out[f.CategoryID] = append(out[f.CategoryID], f)
		}
	}
	return out, nil
}

func (r fieldRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.fieldIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.fields = slices.Delete(r.s.fields, i, i+1)
	r.s.dropValues(map[string]struct{}{id: {}})
	return nil
}

type assetRepo struct{ s *Store }

func cloneAsset(a entity.Asset) *entity.Asset {
	a.FieldValues = slices.Clone(a.FieldValues)
	if a.FieldValues == nil {
		a.FieldValues = []entity.FieldValue{}
	}
	return &a
}

func (r assetRepo) Create(ctx context.Context, a *entity.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.categoryIndex(a.CategoryID) < 0 {
		return fmt.Errorf("categoría %s: %w", a.CategoryID, domain.ErrNotFound)
	}
	if r.s.assetIndex(a.ID) >= 0 {
		return domain.ErrConflict
	}
	if err := r.s.checkValues(a.FieldValues); err != nil {
		return err
	}
	r.s.assets = append(r.s.assets, *cloneAsset(*a))
	return nil
}

func (r assetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.assetIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return cloneAsset(r.s.assets[i]), nil
}

func (r assetRepo) List(ctx context.Context, filter repository.AssetFilter) ([]*entity.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Asset, 0)
	for _, a := range r.s.assets {
		if filter.OwnerID != "" && a.OwnerID != filter.OwnerID {
			continue
		}
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		out = append(out, cloneAsset(a))
	}
	return out, nil
}

func (r assetRepo) Update(ctx context.Context, a *entity.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.assetIndex(a.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if err := r.s.checkValues(a.FieldValues); err != nil {
		return err
	}
	cur := &r.s.assets[i]
	cur.Patrimonio = a.Patrimonio
	cur.FieldValues = slices.Clone(a.FieldValues)
	cur.UpdatedAt = a.UpdatedAt
	return nil
}

func (r assetRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.assetIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.assets = slices.Delete(r.s.assets, i, i+1)
	return nil
}
