package views

import (
	"context"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

const keyAssetForm = "asset-form"

// AssetFormView formulario de alta o edición de un activo. Los campos siguen el
// orden del esquema de la categoría y los valores se indexan por definición.
type AssetFormView struct {
	viewBase
	categoryID string
	assetID    string // vacío en modo alta
	category   *entity.Category
	patrimonio string
	values     map[string]string

	// OnSaved se invoca tras guardar con éxito (la lista se recarga desde aquí).
	OnSaved func(ctx context.Context, asset entity.Asset)
}

// NewAssetFormView monta el formulario. assetID vacío crea; si no, edita.
func NewAssetFormView(ctx context.Context, backend Backend, orch *Orchestrator, categoryID, assetID string) *AssetFormView {
	v := &AssetFormView{categoryID: categoryID, assetID: assetID, values: map[string]string{}}
	v.init(ctx, backend, orch)
	return v
}

// Editing indica si el formulario edita un activo existente.
func (v *AssetFormView) Editing() bool { return v.assetID != "" }

// Load carga el esquema y, en edición, precarga los valores por ID de definición.
func (v *AssetFormView) Load(ctx context.Context) error {
	c, err := fetch(ctx, &v.viewBase, keyAssetForm, msgLoadCategory, func(ctx context.Context) (entity.Category, error) {
		return v.backend.GetCategory(ctx, v.categoryID)
	})
	if err != nil {
		return err
	}
	var asset *entity.Asset
	if v.Editing() {
		a, err := fetch(ctx, &v.viewBase, keyAssetForm, msgLoadAsset, func(ctx context.Context) (entity.Asset, error) {
			return v.backend.GetAsset(ctx, v.assetID)
		})
		if err != nil {
			return err
		}
		asset = &a
	}
	return v.apply(func() {
		v.category = &c
		if asset == nil {
			return
		}
		v.patrimonio = asset.Patrimonio
		v.values = make(map[string]string, len(c.FieldDefinitions))
		for _, fd := range c.FieldDefinitions {
			if val, ok := schema.Lookup(asset.FieldValues, fd.ID); ok {
				v.values[fd.ID] = val
			}
		}
	})
}

// Fields devuelve las definiciones en el orden del esquema.
func (v *AssetFormView) Fields() []entity.FieldDefinition {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.category == nil {
		return nil
	}
	return append([]entity.FieldDefinition(nil), v.category.FieldDefinitions...)
}

// SetPatrimonio actualiza la etiqueta de inventario.
func (v *AssetFormView) SetPatrimonio(p string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.patrimonio = p
}

// Patrimonio devuelve la etiqueta escrita.
func (v *AssetFormView) Patrimonio() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.patrimonio
}

// SetValue escribe el valor de un campo del esquema.
func (v *AssetFormView) SetValue(fieldDefinitionID, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.category == nil {
		return domain.Invalid("field_definition_id", "el formulario no está cargado")
	}
	if _, ok := v.category.Field(fieldDefinitionID); !ok {
		return domain.Invalid("field_definition_id", "el campo no pertenece a la categoría")
	}
	v.values[fieldDefinitionID] = value
	return nil
}

// Value devuelve el valor escrito para un campo.
func (v *AssetFormView) Value(fieldDefinitionID string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.values[fieldDefinitionID]
}

// FieldValues arma el payload en el orden del esquema. Los campos vacíos se omiten.
func (v *AssetFormView) FieldValues() []entity.FieldValue {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.category == nil {
		return nil
	}
	out := make([]entity.FieldValue, 0, len(v.values))
	for _, fd := range v.category.FieldDefinitions {
		if val := v.values[fd.ID]; val != "" {
			out = append(out, entity.FieldValue{FieldDefinitionID: fd.ID, Value: val})
		}
	}
	return out
}

// Submit crea o actualiza. En alta limpia el formulario; en edición lo conserva.
func (v *AssetFormView) Submit(ctx context.Context) error {
	patrimonio := strings.TrimSpace(v.Patrimonio())
	if patrimonio == "" {
		return domain.Invalid("patrimonio", "el patrimonio es obligatorio")
	}
	values := v.FieldValues()

	var saved entity.Asset
	var err error
	if v.Editing() {
		err = v.orch.Execute(ctx, MsgUpdateAsset,
			func(ctx context.Context) error {
				a, opErr := v.backend.UpdateAsset(ctx, v.assetID, patrimonio, values)
				saved = a
				return opErr
			},
			nil,
		)
	} else {
		err = v.orch.Execute(ctx, MsgCreateAsset,
			func(ctx context.Context) error {
				a, opErr := v.backend.CreateAsset(ctx, v.categoryID, patrimonio, values)
				saved = a
				return opErr
			},
			v.reset,
		)
	}
	if err != nil {
		return err
	}
	if v.OnSaved != nil {
		v.OnSaved(ctx, saved)
	}
	return nil
}

func (v *AssetFormView) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.patrimonio = ""
	v.values = map[string]string{}
}
