// Command activos es el cliente de terminal del registro de activos.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	err = newRootCmd(a).ExecuteContext(ctx)
	switch {
	case err == nil:
	case views.IsCanceled(err):
		os.Exit(130)
	case errors.Is(err, errAborted):
		os.Exit(1)
	default:
		if !a.notified() {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
