package views_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/guard"
)

func TestCategoriesView_CreateLimpiaYRecarga(t *testing.T) {
	backend := laptopsBackend()
	orch, rec := newOrchestrator()
	v := views.NewCategoriesView(context.Background(), backend, orch)
	defer v.Close()
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	require.Len(t, v.Categories(), 1)

	v.SetName("Monitores")
	require.NoError(t, v.Create(ctx))

	assert.Equal(t, "", v.Name())
	assert.Equal(t, 2, backend.count("ListCategories"), "alta pesimista: se recarga la lista")
	require.Len(t, v.Categories(), 2)
	assert.Equal(t, "Monitores", v.Categories()[1].Name)
	assert.Equal(t, []string{"pending", "success"}, rec.kinds())
}

func TestCategoriesView_NombreVacioNoLlamaAlServidor(t *testing.T) {
	backend := laptopsBackend()
	orch, rec := newOrchestrator()
	v := views.NewCategoriesView(context.Background(), backend, orch)
	defer v.Close()

	v.SetName("   ")
	err := v.Create(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, backend.count("CreateCategory"))
	assert.Empty(t, rec.kinds())
}

func TestCategoriesView_CreateFallidoConservaEntrada(t *testing.T) {
	backend := laptopsBackend()
	backend.fail["CreateCategory"] = &domain.RemoteError{Status: 400, Kind: domain.ErrInvalidInput, Message: "nombre demasiado largo"}
	orch, rec := newOrchestrator()
	v := views.NewCategoriesView(context.Background(), backend, orch)
	defer v.Close()

	v.SetName("Monitores")
	err := v.Create(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Monitores", v.Name())
	assert.Equal(t, "nombre demasiado largo", rec.last().Message)
}

func TestCategoriesView_BorradoExigeNombre(t *testing.T) {
	backend := laptopsBackend()
	orch, rec := newOrchestrator()
	v := views.NewCategoriesView(context.Background(), backend, orch)
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))
	target := v.Categories()[0]

	require.NoError(t, v.RequestDelete(target))
	v.Guard().Type("laptops")
	assert.ErrorIs(t, v.ConfirmDelete(ctx), guard.ErrConfirmDisabled)
	assert.Zero(t, backend.count("DeleteCategory"))

	v.Guard().Type("Laptops")
	require.NoError(t, v.ConfirmDelete(ctx))

	assert.Empty(t, v.Categories(), "borrado optimista")
	assert.Equal(t, 1, backend.count("ListCategories"), "no se recarga")
	assert.Equal(t, guard.Closed, v.Guard().State())
	assert.Equal(t, "¡Categoría eliminada con éxito!", rec.last().Message)
}

func TestCategoriesView_BorradoFallidoNoCambiaLista(t *testing.T) {
	backend := laptopsBackend()
	backend.fail["DeleteCategory"] = &domain.RemoteError{Status: 500, Kind: domain.ErrRemote}
	orch, rec := newOrchestrator()
	v := views.NewCategoriesView(context.Background(), backend, orch)
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))
	before := v.Categories()

	require.NoError(t, v.RequestDelete(before[0]))
	v.Guard().Type("Laptops")
	err := v.ConfirmDelete(ctx)

	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Equal(t, before, v.Categories())
	assert.Equal(t, guard.Closed, v.Guard().State(), "el diálogo se cierra igual")
	assert.Equal(t, views.MsgDeleteCategory.Error, rec.last().Message)
}

func TestCategoriesView_DismissNoBorra(t *testing.T) {
	backend := laptopsBackend()
	orch, _ := newOrchestrator()
	v := views.NewCategoriesView(context.Background(), backend, orch)
	defer v.Close()
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.RequestDelete(entity.Category{ID: "c-1", Name: "Laptops"}))
	assert.True(t, v.Guard().Dismiss(guard.DismissEscape))
	assert.ErrorIs(t, v.ConfirmDelete(context.Background()), guard.ErrNotOpen)
	assert.Len(t, v.Categories(), 1)
}
