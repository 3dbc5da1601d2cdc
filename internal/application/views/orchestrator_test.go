package views_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
)

var msgs = views.Messages{Pending: "Guardando...", Success: "Listo", Error: "Falló"}

func TestOrchestrator_Exito(t *testing.T) {
	orch, rec := newOrchestrator()
	var order []string

	err := orch.Execute(context.Background(), msgs,
		func(context.Context) error { order = append(order, "op"); return nil },
		func() {
			order = append(order, "reconcile")
			assert.Equal(t, []string{"pending"}, rec.kinds(), "se reconcilia antes de notificar éxito")
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"op", "reconcile"}, order)
	ev := rec.all()
	require.Len(t, ev, 2)
	assert.Equal(t, views.NotifyPending, ev[0].n.Kind)
	assert.Equal(t, "Guardando...", ev[0].n.Message)
	assert.Equal(t, views.NotifySuccess, ev[1].n.Kind)
	assert.Equal(t, "Listo", ev[1].n.Message)
	assert.Equal(t, ev[0].n.Key, ev[1].n.Key, "el éxito reemplaza a la pendiente")
}

func TestOrchestrator_ErrorConMensajeDelServidor(t *testing.T) {
	orch, rec := newOrchestrator()
	remote := &domain.RemoteError{Status: 400, Kind: domain.ErrInvalidInput, Message: "name: el nombre es obligatorio"}
	reconciled := false

	err := orch.Execute(context.Background(), msgs,
		func(context.Context) error { return remote },
		func() { reconciled = true },
	)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, reconciled, "el estado local no se toca")
	assert.Equal(t, []string{"pending", "error"}, rec.kinds())
	assert.Equal(t, "name: el nombre es obligatorio", rec.last().Message)
}

func TestOrchestrator_ErrorGenerico(t *testing.T) {
	orch, rec := newOrchestrator()

	err := orch.Execute(context.Background(), msgs,
		func(context.Context) error { return fmt.Errorf("%w: connection refused", domain.ErrTransport) },
		nil,
	)

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "Falló", rec.last().Message)
}

func TestOrchestrator_CancelacionSilenciosa(t *testing.T) {
	for _, cause := range []error{context.Canceled, domain.ErrCanceled} {
		orch, rec := newOrchestrator()

		err := orch.Execute(context.Background(), msgs, func(context.Context) error { return cause }, nil)

		assert.ErrorIs(t, err, domain.ErrCanceled)
		assert.Equal(t, []string{"pending", "dismiss"}, rec.kinds())
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "fallback", views.UserMessage(errors.New("x"), "fallback"))
	assert.Equal(t, "fallback", views.UserMessage(&domain.RemoteError{Status: 500, Kind: domain.ErrRemote}, "fallback"))
	wrapped := fmt.Errorf("crear: %w", &domain.RemoteError{Status: 409, Kind: domain.ErrConflict, Message: "duplicado"})
	assert.Equal(t, "duplicado", views.UserMessage(wrapped, "fallback"))
}
