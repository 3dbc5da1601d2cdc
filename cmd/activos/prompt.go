package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain/guard"
)

// confirmWith lleva el diálogo de g por la terminal. preset, si no está vacío,
// reemplaza lo que se leería de la entrada (uso no interactivo).
// Devuelve false si el diálogo se descartó.
func confirmWith[T any](a *app, g *guard.Guard[T], question, preset string) bool {
	fmt.Fprintln(a.out, question)

	if required := g.RequiredInput(); required != "" {
		text := preset
		if text == "" {
			fmt.Fprintf(a.out, "Escriba %q para confirmar: ", required)
			line, err := a.readLine()
			if err != nil {
				g.Dismiss(guard.DismissEscape)
				return false
			}
			text = line
		}
		g.Type(text)
		if !g.CanConfirm() {
			fmt.Fprintln(a.out, "El texto no coincide; no se eliminó nada.")
			g.Dismiss(guard.DismissCancel)
			return false
		}
		return true
	}

	if preset != "" {
		return true
	}
	fmt.Fprint(a.out, "¿Confirmar? [s/N]: ")
	line, err := a.readLine()
	if err != nil {
		g.Dismiss(guard.DismissEscape)
		return false
	}
	switch strings.ToLower(line) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	g.Dismiss(guard.DismissCancel)
	return false
}

// readLine lee una línea sin el salto final. Una última línea sin salto es válida.
func (a *app) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
