package guard_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/guard"
)

type item struct {
	ID   string
	Name string
}

func TestGuard_TextoRequeridoExacto(t *testing.T) {
	g := guard.New[item]()
	require.NoError(t, g.Open(item{ID: "a-1"}, guard.RequireInput("Laptop-001")))

	for _, typed := range []string{"", "laptop-001", "Laptop-00", "Laptop-001 ", " Laptop-001"} {
		g.Type(typed)
		assert.False(t, g.CanConfirm(), "texto %q no debe habilitar", typed)
		err := g.Confirm(context.Background(), func(context.Context, item) error {
			t.Fatal("la acción no debe ejecutarse")
			return nil
		})
		assert.ErrorIs(t, err, guard.ErrConfirmDisabled)
		assert.Equal(t, guard.Open, g.State())
	}

	g.Type("Laptop-001")
	assert.True(t, g.CanConfirm())

	var got item
	err := g.Confirm(context.Background(), func(_ context.Context, it item) error {
		got = it
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "a-1", got.ID)
	assert.Equal(t, guard.Closed, g.State())
}

func TestGuard_SinTextoRequeridoSiempreHabilitado(t *testing.T) {
	g := guard.New[string]()
	assert.False(t, g.CanConfirm())

	require.NoError(t, g.Open("a-1"))
	assert.True(t, g.CanConfirm())
}

func TestGuard_ReaperturaReiniciaTexto(t *testing.T) {
	g := guard.New[item]()
	require.NoError(t, g.Open(item{ID: "a-1", Name: "Laptop-001"}, guard.RequireInput("Laptop-001")))
	g.Type("Laptop-001")
	require.True(t, g.CanConfirm())

	require.NoError(t, g.Open(item{ID: "a-2", Name: "Monitor-7"}, guard.RequireInput("Monitor-7")))
	assert.Equal(t, "", g.Typed())
	assert.False(t, g.CanConfirm())
	target, ok := g.Target()
	require.True(t, ok)
	assert.Equal(t, "a-2", target.ID)

	g.Dismiss(guard.DismissCancel)
	require.NoError(t, g.Open(item{ID: "a-1"}, guard.RequireInput("Laptop-001")))
	assert.Equal(t, "", g.Typed())
	assert.False(t, g.CanConfirm())
}

func TestGuard_Dismiss(t *testing.T) {
	for _, reason := range []guard.DismissReason{guard.DismissCancel, guard.DismissBackdrop, guard.DismissEscape} {
		g := guard.New[string]()
		require.NoError(t, g.Open("c-1"))
		assert.True(t, g.Dismiss(reason))
		assert.Equal(t, guard.Closed, g.State())
		_, ok := g.Target()
		assert.False(t, ok)
	}

	g := guard.New[string]()
	assert.False(t, g.Dismiss(guard.DismissEscape), "cerrado no se cierra dos veces")
}

func TestGuard_ErrorCierraIgual(t *testing.T) {
	g := guard.New[string]()
	require.NoError(t, g.Open("a-1"))

	boom := errors.New("boom")
	err := g.Confirm(context.Background(), func(context.Context, string) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, guard.Closed, g.State())
	_, ok := g.Target()
	assert.False(t, ok)
}

func TestGuard_ConfirmSinAbrir(t *testing.T) {
	g := guard.New[string]()
	err := g.Confirm(context.Background(), func(context.Context, string) error { return nil })
	assert.ErrorIs(t, err, guard.ErrNotOpen)
}

func TestGuard_OcupadoDuranteConfirmacion(t *testing.T) {
	g := guard.New[string]()
	require.NoError(t, g.Open("a-1"))

	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = g.Confirm(context.Background(), func(context.Context, string) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	assert.Equal(t, guard.Confirming, g.State())
	assert.ErrorIs(t, g.Confirm(context.Background(), func(context.Context, string) error { return nil }), guard.ErrBusy)
	assert.ErrorIs(t, g.Open("a-2"), guard.ErrBusy)
	assert.False(t, g.Dismiss(guard.DismissBackdrop))
	assert.False(t, g.CanConfirm())

	close(release)
	wg.Wait()
	assert.Equal(t, guard.Closed, g.State())
}
