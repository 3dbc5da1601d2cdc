package views

import (
	"context"
	"sync"
)

// lifetime ciclo de vida de una vista; se cancela con Close.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newLifetime(parent context.Context) *lifetime {
	ctx, cancel := context.WithCancel(parent)
	return &lifetime{ctx: ctx, cancel: cancel}
}

func (l *lifetime) alive() bool { return l.ctx.Err() == nil }

// bind deriva de ctx un contexto que además se cancela cuando la vista se cierra.
func (l *lifetime) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// viewBase estado común de las vistas. mu protege la memoria de la vista concreta.
type viewBase struct {
	backend Backend
	orch    *Orchestrator
	life    *lifetime
	mu      sync.RWMutex
}

func (b *viewBase) init(ctx context.Context, backend Backend, orch *Orchestrator) {
	b.backend = backend
	b.orch = orch
	b.life = newLifetime(ctx)
}

// Close desmonta la vista: cancela lecturas pendientes y descarta las que terminen después.
func (b *viewBase) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.life.cancel()
}

// Closed indica si la vista ya se desmontó.
func (b *viewBase) Closed() bool { return !b.life.alive() }

// apply modifica el estado solo si la vista sigue viva.
func (b *viewBase) apply(fn func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.life.alive() {
		return canceled(nil)
	}
	fn()
	return nil
}

// settle clasifica el resultado de una lectura: cancelada o tardía se silencia,
// cualquier otro error se notifica con fallback.
func (b *viewBase) settle(key, fallback string, err error) error {
	if !b.life.alive() || IsCanceled(err) {
		return canceled(err)
	}
	if err != nil {
		b.orch.reportLoadError(key, fallback, err)
	}
	return err
}

// fetch ejecuta get ligado al ciclo de vida de la vista.
func fetch[T any](ctx context.Context, b *viewBase, key, fallback string, get func(context.Context) (T, error)) (T, error) {
	fctx, done := b.life.bind(ctx)
	defer done()
	v, err := get(fctx)
	if err := b.settle(key, fallback, err); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
