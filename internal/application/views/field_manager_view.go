package views

import (
	"context"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/guard"
)

const keyFieldManager = "field-manager"

// FieldManagerView administra el esquema de una categoría.
// Toda mutación exitosa recarga la categoría completa.
type FieldManagerView struct {
	viewBase
	categoryID string
	category   *entity.Category
	fieldName  string
	fieldKind  entity.FieldKind
	guard      *guard.Guard[entity.FieldDefinition]
}

// NewFieldManagerView monta la vista para categoryID.
func NewFieldManagerView(ctx context.Context, backend Backend, orch *Orchestrator, categoryID string) *FieldManagerView {
	v := &FieldManagerView{
		categoryID: categoryID,
		fieldKind:  entity.FieldKindText,
		guard:      guard.New[entity.FieldDefinition](),
	}
	v.init(ctx, backend, orch)
	return v
}

// Load carga la categoría con su esquema.
func (v *FieldManagerView) Load(ctx context.Context) error {
	return v.load(ctx, msgLoadCategory)
}

func (v *FieldManagerView) load(ctx context.Context, fallback string) error {
	c, err := fetch(ctx, &v.viewBase, keyFieldManager, fallback, func(ctx context.Context) (entity.Category, error) {
		return v.backend.GetCategory(ctx, v.categoryID)
	})
	if err != nil {
		return err
	}
	return v.apply(func() { v.category = &c })
}

// Category devuelve la categoría cargada; ok es false antes de la primera carga.
func (v *FieldManagerView) Category() (entity.Category, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.category == nil {
		return entity.Category{}, false
	}
	return *v.category, true
}

// SetFieldName actualiza el nombre del campo a agregar.
func (v *FieldManagerView) SetFieldName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fieldName = name
}

// SetFieldKind actualiza el tipo del campo a agregar.
func (v *FieldManagerView) SetFieldKind(kind entity.FieldKind) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fieldKind = kind
}

// Input devuelve nombre y tipo del formulario.
func (v *FieldManagerView) Input() (string, entity.FieldKind) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.fieldName, v.fieldKind
}

// AddField agrega el campo del formulario. Solo se valida localmente que el
// nombre no esté vacío; el tipo lo valida el servidor.
func (v *FieldManagerView) AddField(ctx context.Context) error {
	name, kind := v.Input()
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Invalid("name", "el nombre del campo es obligatorio")
	}
	err := v.orch.Execute(ctx, MsgAddField,
		func(ctx context.Context) error {
			_, err := v.backend.AddFieldDefinition(ctx, v.categoryID, name, kind)
			return err
		},
		func() { v.SetFieldName("") },
	)
	if err != nil {
		return err
	}
	return v.load(ctx, msgReloadFields)
}

// Guard expone el diálogo de confirmación de borrado.
func (v *FieldManagerView) Guard() *guard.Guard[entity.FieldDefinition] { return v.guard }

// RequestRemove abre la confirmación; exige reescribir el nombre del campo.
func (v *FieldManagerView) RequestRemove(fd entity.FieldDefinition) error {
	return v.guard.Open(fd, guard.RequireInput(fd.Name))
}

// ConfirmRemove elimina el campo confirmado y recarga la categoría.
func (v *FieldManagerView) ConfirmRemove(ctx context.Context) error {
	return v.guard.Confirm(ctx, func(ctx context.Context, fd entity.FieldDefinition) error {
		err := v.orch.Execute(ctx, MsgRemoveField,
			func(ctx context.Context) error { return v.backend.RemoveFieldDefinition(ctx, fd.ID) },
			nil,
		)
		if err != nil {
			return err
		}
		return v.load(ctx, msgReloadFields)
	})
}
