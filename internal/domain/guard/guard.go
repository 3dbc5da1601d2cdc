// Package guard implementa la confirmación de acciones destructivas.
//
// Un Guard es una máquina de estados explícita (Closed, Open, Confirming) que
// retiene el objetivo de la acción, opcionalmente exige que el usuario escriba
// un texto exacto, y garantiza que cada confirmación termina cerrando el diálogo.
package guard

import (
	"context"
	"errors"
	"sync"
)

// State estado del diálogo.
type State int

const (
	Closed State = iota
	Open
	Confirming
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Confirming:
		return "confirming"
	default:
		return "closed"
	}
}

// DismissReason origen de un cierre sin confirmar.
type DismissReason int

const (
	DismissCancel DismissReason = iota
	DismissBackdrop
	DismissEscape
)

var (
	ErrBusy            = errors.New("guard: hay una confirmación en curso")
	ErrNotOpen         = errors.New("guard: el diálogo no está abierto")
	ErrConfirmDisabled = errors.New("guard: el texto de confirmación no coincide")
)

// Option configura una apertura.
type Option func(*openConfig)

type openConfig struct {
	requiredInput string
}

// RequireInput exige que el usuario escriba s tal cual (sensible a mayúsculas).
func RequireInput(s string) Option {
	return func(c *openConfig) { c.requiredInput = s }
}

// Guard protege una acción destructiva sobre un objetivo de tipo T.
// Una vista posee un único Guard; abrirlo de nuevo cambia de objetivo.
type Guard[T any] struct {
	mu       sync.Mutex
	state    State
	target   T
	required string
	typed    string
}

// New crea un Guard cerrado.
func New[T any]() *Guard[T] {
	return &Guard[T]{}
}

// Open abre el diálogo para target. El texto escrito siempre se reinicia.
func (g *Guard[T]) Open(target T, opts ...Option) error {
	cfg := openConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Confirming {
		return ErrBusy
	}
	g.state = Open
	g.target = target
	g.required = cfg.requiredInput
	g.typed = ""
	return nil
}

// Type registra el texto escrito por el usuario. Fuera de Open no tiene efecto.
func (g *Guard[T]) Type(text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Open {
		g.typed = text
	}
}

// Typed devuelve el texto escrito hasta ahora.
func (g *Guard[T]) Typed() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.typed
}

// RequiredInput devuelve el texto exigido, vacío si no hay.
func (g *Guard[T]) RequiredInput() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.required
}

// CanConfirm indica si el botón de confirmar está habilitado.
func (g *Guard[T]) CanConfirm() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canConfirm()
}

func (g *Guard[T]) canConfirm() bool {
	if g.state != Open {
		return false
	}
	return g.required == "" || g.typed == g.required
}

// Dismiss cierra el diálogo sin ejecutar nada. Durante Confirming se ignora.
func (g *Guard[T]) Dismiss(DismissReason) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Open {
		return false
	}
	g.reset()
	return true
}

// Confirm ejecuta action sobre el objetivo. Pase lo que pase, el diálogo
// termina en Closed y sin objetivo. Devuelve el error de action.
func (g *Guard[T]) Confirm(ctx context.Context, action func(context.Context, T) error) error {
	g.mu.Lock()
	switch {
	case g.state == Confirming:
		g.mu.Unlock()
		return ErrBusy
	case g.state != Open:
		g.mu.Unlock()
		return ErrNotOpen
	case !g.canConfirm():
		g.mu.Unlock()
		return ErrConfirmDisabled
	}
	g.state = Confirming
	target := g.target
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.reset()
		g.mu.Unlock()
	}()
	return action(ctx, target)
}

// State devuelve el estado actual.
func (g *Guard[T]) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Target devuelve el objetivo; ok es false si el diálogo está cerrado.
func (g *Guard[T]) Target() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.target, g.state != Closed
}

func (g *Guard[T]) reset() {
	var zero T
	g.state = Closed
	g.target = zero
	g.required = ""
	g.typed = ""
}
