// Package notify implementa la superficie de notificaciones del cliente de terminal.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/application/views"
)

var _ views.Notifier = (*Console)(nil)

// Console escribe una línea por notificación. Las pendientes solo se muestran
// en modo verbose; éxito y error siempre.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	log     zerolog.Logger
	verbose  bool
	pending  map[string]string
	failures int
}

// NewConsole construye el notificador sobre out.
func NewConsole(out io.Writer, log zerolog.Logger, verbose bool) *Console {
	return &Console{out: out, log: log, verbose: verbose, pending: map[string]string{}}
}

// Notify reemplaza la notificación con la misma clave.
func (c *Console) Notify(n views.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch n.Kind {
	case views.NotifyPending:
		c.pending[n.Key] = n.Message
		if c.verbose {
			fmt.Fprintf(c.out, "… %s\n", n.Message)
		}
	case views.NotifySuccess:
		delete(c.pending, n.Key)
		fmt.Fprintf(c.out, "✔ %s\n", n.Message)
	case views.NotifyError:
		delete(c.pending, n.Key)
		c.failures++
		fmt.Fprintf(c.out, "✘ %s\n", n.Message)
	}
	c.log.Debug().Str("key", n.Key).Stringer("kind", n.Kind).Msg(n.Message)
}

// Dismiss retira una notificación pendiente sin mostrar nada.
func (c *Console) Dismiss(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if msg, ok := c.pending[key]; ok {
		delete(c.pending, key)
		c.log.Debug().Str("key", key).Msgf("descartada: %s", msg)
	}
}

// Pending cantidad de notificaciones pendientes sin resolver.
func (c *Console) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Failures cantidad de errores ya mostrados al usuario.
func (c *Console) Failures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}
