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

func TestFieldManagerView_AddLimpiaYRecarga(t *testing.T) {
	backend := laptopsBackend()
	orch, rec := newOrchestrator()
	v := views.NewFieldManagerView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	name, kind := v.Input()
	assert.Equal(t, "", name)
	assert.Equal(t, entity.FieldKindText, kind, "tipo por defecto")

	v.SetFieldName("Compra")
	v.SetFieldKind(entity.FieldKindDate)
	require.NoError(t, v.AddField(ctx))

	name, _ = v.Input()
	assert.Equal(t, "", name)
	assert.Equal(t, 2, backend.count("GetCategory"))
	c, ok := v.Category()
	require.True(t, ok)
	require.Len(t, c.FieldDefinitions, 4)
	assert.Equal(t, "Compra", c.FieldDefinitions[3].Name)
	assert.Equal(t, entity.FieldKindDate, c.FieldDefinitions[3].Kind)
	assert.Equal(t, views.MsgAddField.Success, rec.all()[1].n.Message)
}

func TestFieldManagerView_NombreVacio(t *testing.T) {
	backend := laptopsBackend()
	orch, _ := newOrchestrator()
	v := views.NewFieldManagerView(context.Background(), backend, orch, "c-1")
	defer v.Close()

	assert.ErrorIs(t, v.AddField(context.Background()), domain.ErrInvalidInput)
	assert.Zero(t, backend.count("AddFieldDefinition"))
}

func TestFieldManagerView_RemoveExigeNombreYRecarga(t *testing.T) {
	backend := laptopsBackend()
	orch, _ := newOrchestrator()
	v := views.NewFieldManagerView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))
	c, _ := v.Category()
	marca := c.FieldDefinitions[0]

	require.NoError(t, v.RequestRemove(marca))
	assert.False(t, v.Guard().CanConfirm())
	v.Guard().Type("Marca")
	require.NoError(t, v.ConfirmRemove(ctx))

	assert.Equal(t, 2, backend.count("GetCategory"), "se recarga la categoría")
	c, _ = v.Category()
	require.Len(t, c.FieldDefinitions, 2)
	assert.Equal(t, "Valor", c.FieldDefinitions[0].Name)
	assert.Equal(t, guard.Closed, v.Guard().State())
}

func TestFieldManagerView_ErrorDeRecargaSeNotifica(t *testing.T) {
	backend := laptopsBackend()
	orch, rec := newOrchestrator()
	v := views.NewFieldManagerView(context.Background(), backend, orch, "c-1")
	defer v.Close()
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	backend.fail["GetCategory"] = &domain.RemoteError{Status: 503, Kind: domain.ErrRemote}
	v.SetFieldName("Serie")
	err := v.AddField(ctx)

	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Equal(t, []string{"pending", "success", "error"}, rec.kinds())
	assert.Equal(t, "No fue posible recargar los campos.", rec.last().Message)
}
