package views

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/domain"
)

// Orchestrator ejecuta mutaciones con el ciclo pendiente/éxito/error.
// Ante un error no toca el estado local; ante una cancelación retira la
// notificación pendiente y no muestra nada más.
type Orchestrator struct {
	notifier Notifier
	log      zerolog.Logger
	seq      atomic.Uint64
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(notifier Notifier, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{notifier: notifier, log: log}
}

// Execute notifica msgs.Pending, ejecuta op y, si tiene éxito, aplica onSuccess
// antes de notificar msgs.Success. Devuelve el error de op.
func (o *Orchestrator) Execute(ctx context.Context, msgs Messages, op func(context.Context) error, onSuccess func()) error {
	key := fmt.Sprintf("op-%d", o.seq.Add(1))
	o.notifier.Notify(Notification{Key: key, Kind: NotifyPending, Message: msgs.Pending})

	if err := op(ctx); err != nil {
		if IsCanceled(err) {
			o.notifier.Dismiss(key)
			return canceled(err)
		}
		o.log.Warn().Err(err).Str("operation", msgs.Pending).Msg("mutación fallida")
		o.notifier.Notify(Notification{Key: key, Kind: NotifyError, Message: UserMessage(err, msgs.Error)})
		return err
	}

	if onSuccess != nil {
		onSuccess()
	}
	o.notifier.Notify(Notification{Key: key, Kind: NotifySuccess, Message: msgs.Success})
	return nil
}

// reportLoadError notifica una lectura fallida de una vista viva.
func (o *Orchestrator) reportLoadError(key, fallback string, err error) {
	o.log.Warn().Err(err).Str("view", key).Msg("lectura fallida")
	o.notifier.Notify(Notification{Key: key, Kind: NotifyError, Message: UserMessage(err, fallback)})
}

// UserMessage devuelve el mensaje del servidor si lo hay; si no, fallback.
func UserMessage(err error, fallback string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}

// IsCanceled indica si err proviene de una cancelación (no es un fallo).
func IsCanceled(err error) bool {
	return errors.Is(err, domain.ErrCanceled) || errors.Is(err, context.Canceled)
}

func canceled(err error) error {
	if err == nil {
		return domain.ErrCanceled
	}
	if errors.Is(err, domain.ErrCanceled) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrCanceled, err)
}
