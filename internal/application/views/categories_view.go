package views

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/guard"
)

const keyCategories = "categories"

// CategoriesView lista de categorías con alta y borrado protegido.
// Borrar exige reescribir el nombre de la categoría.
type CategoriesView struct {
	viewBase
	categories []entity.Category
	name       string
	guard      *guard.Guard[entity.Category]
}

// NewCategoriesView monta la vista; ctx acota su ciclo de vida.
func NewCategoriesView(ctx context.Context, backend Backend, orch *Orchestrator) *CategoriesView {
	v := &CategoriesView{guard: guard.New[entity.Category]()}
	v.init(ctx, backend, orch)
	return v
}

// Load carga la lista de categorías.
func (v *CategoriesView) Load(ctx context.Context) error {
	return v.load(ctx, msgLoadCategories)
}

func (v *CategoriesView) load(ctx context.Context, fallback string) error {
	list, err := fetch(ctx, &v.viewBase, keyCategories, fallback, v.backend.ListCategories)
	if err != nil {
		return err
	}
	return v.apply(func() { v.categories = list })
}

// Categories devuelve una copia de la lista actual.
func (v *CategoriesView) Categories() []entity.Category {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.categories)
}

// SetName actualiza el campo de nombre del formulario de alta.
func (v *CategoriesView) SetName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.name = name
}

// Name devuelve el contenido del campo de nombre.
func (v *CategoriesView) Name() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.name
}

// Create crea la categoría con el nombre escrito. Al tener éxito limpia el
// campo y recarga la lista.
func (v *CategoriesView) Create(ctx context.Context) error {
	name := strings.TrimSpace(v.Name())
	if name == "" {
		return domain.Invalid("name", "el nombre es obligatorio")
	}
	err := v.orch.Execute(ctx, MsgCreateCategory,
		func(ctx context.Context) error {
			_, err := v.backend.CreateCategory(ctx, name)
			return err
		},
		func() { v.SetName("") },
	)
	if err != nil {
		return err
	}
	return v.load(ctx, msgReloadCategories)
}

// Guard expone el diálogo de confirmación de borrado.
func (v *CategoriesView) Guard() *guard.Guard[entity.Category] { return v.guard }

// RequestDelete abre la confirmación de borrado para c.
func (v *CategoriesView) RequestDelete(c entity.Category) error {
	return v.guard.Open(c, guard.RequireInput(c.Name))
}

// ConfirmDelete borra la categoría confirmada y la quita de la lista local sin recargar.
func (v *CategoriesView) ConfirmDelete(ctx context.Context) error {
	return v.guard.Confirm(ctx, func(ctx context.Context, c entity.Category) error {
		return v.orch.Execute(ctx, MsgDeleteCategory,
			func(ctx context.Context) error { return v.backend.DeleteCategory(ctx, c.ID) },
			func() {
				v.mu.Lock()
				defer v.mu.Unlock()
				v.categories = slices.DeleteFunc(v.categories, func(x entity.Category) bool { return x.ID == c.ID })
			},
		)
	})
}
