package views

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/guard"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

const keyAssetList = "asset-list"

// AssetListView tabla de activos de una categoría.
// Categoría y activos se cargan en paralelo y se aplican juntos o no se aplican.
type AssetListView struct {
	viewBase
	categoryID string
	category   *entity.Category
	assets     []entity.Asset
	guard      *guard.Guard[entity.Asset]
}

// NewAssetListView monta la vista para categoryID.
func NewAssetListView(ctx context.Context, backend Backend, orch *Orchestrator, categoryID string) *AssetListView {
	v := &AssetListView{categoryID: categoryID, guard: guard.New[entity.Asset]()}
	v.init(ctx, backend, orch)
	return v
}

type assetListData struct {
	category entity.Category
	assets   []entity.Asset
}

// Load carga la categoría y sus activos.
func (v *AssetListView) Load(ctx context.Context) error {
	data, err := fetch(ctx, &v.viewBase, keyAssetList, msgLoadAssets, func(ctx context.Context) (assetListData, error) {
		var d assetListData
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			d.category, err = v.backend.GetCategory(gctx, v.categoryID)
			return err
		})
		g.Go(func() error {
			var err error
			d.assets, err = v.backend.ListAssets(gctx, v.categoryID)
			return err
		})
		return d, g.Wait()
	})
	if err != nil {
		return err
	}
	return v.apply(func() {
		v.category = &data.category
		v.assets = data.assets
	})
}

// Category devuelve la categoría cargada; ok es false antes de la primera carga.
func (v *AssetListView) Category() (entity.Category, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.category == nil {
		return entity.Category{}, false
	}
	return *v.category, true
}

// Assets devuelve una copia de los activos.
func (v *AssetListView) Assets() []entity.Asset {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.assets)
}

// Table proyecta los activos sobre el esquema actual de la categoría.
func (v *AssetListView) Table() schema.Table {
	v.mu.RLock()
	defer v.mu.RUnlock()
	var defs []entity.FieldDefinition
	if v.category != nil {
		defs = v.category.FieldDefinitions
	}
	return schema.BuildTable(defs, v.assets)
}

// Guard expone el diálogo de confirmación de borrado.
func (v *AssetListView) Guard() *guard.Guard[entity.Asset] { return v.guard }

// RequestDelete abre la confirmación; no exige texto.
func (v *AssetListView) RequestDelete(a entity.Asset) error {
	return v.guard.Open(a)
}

// ConfirmDelete borra el activo confirmado y lo quita de la lista sin recargar.
func (v *AssetListView) ConfirmDelete(ctx context.Context) error {
	return v.guard.Confirm(ctx, func(ctx context.Context, a entity.Asset) error {
		return v.orch.Execute(ctx, MsgDeleteAsset,
			func(ctx context.Context) error { return v.backend.DeleteAsset(ctx, a.ID) },
			func() {
				v.mu.Lock()
				defer v.mu.Unlock()
				v.assets = slices.DeleteFunc(v.assets, func(x entity.Asset) bool { return x.ID == a.ID })
			},
		)
	})
}
