package views_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/guard"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

func TestAssetListView_LoadYTabla(t *testing.T) {
	backend := laptopsBackend()
	orch, _ := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()

	require.NoError(t, v.Load(context.Background()))

	table := v.Table()
	assert.Equal(t, []string{"Patrimonio", "Marca", "Valor", "Status", "Acciones"}, table.Headers())
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Dell", table.Rows[0].Cells[0].Text)
	assert.Equal(t, schema.NotAvailable, table.Rows[0].Cells[1].Text)
	assert.Equal(t, schema.StatusActive, table.Rows[0].Cells[2].Class)
	assert.Equal(t, schema.StatusDefault, table.Rows[1].Cells[2].Class)
}

func TestAssetListView_TodoONada(t *testing.T) {
	backend := laptopsBackend()
	backend.fail["ListAssets"] = errors.New("boom")
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()

	err := v.Load(context.Background())

	require.Error(t, err)
	_, ok := v.Category()
	assert.False(t, ok, "la categoría no se aplica si fallan los activos")
	assert.Empty(t, v.Assets())
	assert.Equal(t, []string{"error"}, rec.kinds())
	assert.Equal(t, "No fue posible cargar los activos.", rec.last().Message)
}

func TestAssetListView_BorradoOptimista(t *testing.T) {
	backend := laptopsBackend()
	orch, _ := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	require.NoError(t, v.RequestDelete(v.Assets()[0]))
	assert.True(t, v.Guard().CanConfirm(), "sin texto requerido")
	require.NoError(t, v.ConfirmDelete(ctx))

	ids := []string{}
	for _, a := range v.Assets() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a-2"}, ids)
	assert.Equal(t, 1, backend.count("ListAssets"), "no se recarga")

	// la siguiente recarga converge con el servidor
	require.NoError(t, v.Load(ctx))
	assert.Len(t, v.Assets(), 1)
}

func TestAssetListView_BorradoFallidoSinCambios(t *testing.T) {
	backend := laptopsBackend()
	backend.fail["DeleteAsset"] = &domain.RemoteError{Status: 404, Kind: domain.ErrNotFound, Message: "recurso no encontrado"}
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))
	before := v.Assets()

	require.NoError(t, v.RequestDelete(before[1]))
	err := v.ConfirmDelete(ctx)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, v.Assets())
	assert.Equal(t, "recurso no encontrado", rec.last().Message)
}

// tresActivos agrega Laptop-003 para borrar un elemento del medio.
func tresActivos() *fakeBackend {
	backend := laptopsBackend()
	backend.assets = append(backend.assets, entity.Asset{ID: "a-3", CategoryID: "c-1", Patrimonio: "Laptop-003"})
	return backend
}

func assetIDs(v *views.AssetListView) []string {
	ids := []string{}
	for _, a := range v.Assets() {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestAssetListView_BorradoOptimistaDelMedio(t *testing.T) {
	backend := tresActivos()
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	require.NoError(t, v.RequestDelete(v.Assets()[1]))
	require.NoError(t, v.ConfirmDelete(ctx))

	assert.Equal(t, []string{"a-1", "a-3"}, assetIDs(v))
	assert.Equal(t, []string{"pending", "success"}, rec.kinds())
	assert.Equal(t, guard.Closed, v.Guard().State())

	require.NoError(t, v.Load(ctx))
	assert.Equal(t, []string{"a-1", "a-3"}, assetIDs(v))
}

func TestAssetListView_BorradoDelMedioFallido(t *testing.T) {
	backend := tresActivos()
	backend.fail["DeleteAsset"] = errors.New("boom")
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	require.NoError(t, v.RequestDelete(v.Assets()[1]))
	require.Error(t, v.ConfirmDelete(ctx))

	assert.Equal(t, []string{"a-1", "a-2", "a-3"}, assetIDs(v))
	assert.Equal(t, []string{"pending", "error"}, rec.kinds())
	assert.Equal(t, views.MsgDeleteAsset.Error, rec.last().Message)
	assert.Equal(t, guard.Closed, v.Guard().State())
}

func TestAssetListView_CancelacionSilenciosa(t *testing.T) {
	backend := laptopsBackend()
	backend.gate["ListAssets"] = make(chan struct{})
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")

	done := make(chan error, 1)
	go func() { done <- v.Load(context.Background()) }()
	for m := range backend.entered {
		if m == "ListAssets" {
			break
		}
	}

	v.Close()
	err := <-done

	assert.ErrorIs(t, err, domain.ErrCanceled)
	assert.Empty(t, rec.kinds(), "sin notificaciones")
	_, ok := v.Category()
	assert.False(t, ok)
	assert.True(t, v.Closed())
}

func TestAssetListView_RespuestaTardiaTrasCerrar(t *testing.T) {
	backend := laptopsBackend()
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	v.Close()

	backend.fail["ListAssets"] = errors.New("boom")
	err := v.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrCanceled)
	assert.Empty(t, rec.kinds(), "un error que llega tras cerrar tampoco se notifica")
	assert.Empty(t, v.Assets())
}

func TestAssetListView_ErrorEnVistaViva(t *testing.T) {
	backend := laptopsBackend()
	backend.fail["GetCategory"] = &domain.RemoteError{Status: 500, Kind: domain.ErrRemote}
	orch, rec := newOrchestrator()
	v := views.NewAssetListView(context.Background(), backend, orch, "c-1")
	defer v.Close()

	err := v.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.False(t, errors.Is(err, domain.ErrCanceled))
	assert.Equal(t, []string{"error"}, rec.kinds())
}
