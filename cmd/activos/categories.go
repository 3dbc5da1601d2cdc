package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Categorías de activos",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Listar categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := views.NewCategoriesView(cmd.Context(), a.client, a.orch)
			defer v.Close()
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			rows := [][]string{}
			for _, c := range v.Categories() {
				rows = append(rows, []string{c.ID, c.Name, strconv.Itoa(len(c.FieldDefinitions))})
			}
			return printRows(a.out, []string{"ID", "Nombre", "Campos"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create NOMBRE",
		Short: "Crear categoría",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewCategoriesView(cmd.Context(), a.client, a.orch)
			defer v.Close()
			v.SetName(args[0])
			return v.Create(cmd.Context())
		},
	})

	var confirmText string
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Eliminar categoría con todos sus campos y activos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v := views.NewCategoriesView(ctx, a.client, a.orch)
			defer v.Close()
			if err := v.Load(ctx); err != nil {
				return err
			}
			for _, c := range v.Categories() {
				if c.ID != args[0] {
					continue
				}
				if err := v.RequestDelete(c); err != nil {
					return err
				}
				question := fmt.Sprintf("Se eliminará la categoría %q con sus %d campo(s) y todos sus activos.", c.Name, len(c.FieldDefinitions))
				if !confirmWith(a, v.Guard(), question, confirmText) {
					return errAborted
				}
				return v.ConfirmDelete(ctx)
			}
			return fmt.Errorf("categoría %s: %w", args[0], domain.ErrNotFound)
		},
	}
	del.Flags().StringVar(&confirmText, "confirm", "", "nombre de la categoría (evita la pregunta interactiva)")
	cmd.AddCommand(del)

	return cmd
}
