package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func newFieldsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Esquema (campos personalizados) de una categoría",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list CATEGORIA_ID",
		Short: "Listar campos en orden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewFieldManagerView(cmd.Context(), a.client, a.orch, args[0])
			defer v.Close()
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			c, _ := v.Category()
			fmt.Fprintf(a.out, "Categoría: %s\n", c.Name)
			rows := [][]string{}
			for _, fd := range c.FieldDefinitions {
				rows = append(rows, []string{fd.ID, fd.Name, string(fd.Kind)})
			}
			return printRows(a.out, []string{"ID", "Nombre", "Tipo"}, rows)
		},
	})

	var kind string
	add := &cobra.Command{
		Use:   "add CATEGORIA_ID NOMBRE",
		Short: "Agregar campo al final del esquema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewFieldManagerView(cmd.Context(), a.client, a.orch, args[0])
			defer v.Close()
			v.SetFieldName(args[1])
			v.SetFieldKind(entity.FieldKind(kind))
			return v.AddField(cmd.Context())
		},
	}
	add.Flags().StringVar(&kind, "kind", string(entity.FieldKindText), "tipo del campo: text, number o date")
	cmd.AddCommand(add)

	var confirmText string
	remove := &cobra.Command{
		Use:   "remove CATEGORIA_ID CAMPO_ID",
		Short: "Eliminar campo y sus valores en todos los activos",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v := views.NewFieldManagerView(ctx, a.client, a.orch, args[0])
			defer v.Close()
			if err := v.Load(ctx); err != nil {
				return err
			}
			c, _ := v.Category()
			fd, ok := c.Field(args[1])
			if !ok {
				return fmt.Errorf("campo %s: %w", args[1], domain.ErrNotFound)
			}
			if err := v.RequestRemove(fd); err != nil {
				return err
			}
			question := fmt.Sprintf("Se eliminará el campo %q y su valor en todos los activos de %q.", fd.Name, c.Name)
			if !confirmWith(a, v.Guard(), question, confirmText) {
				return errAborted
			}
			return v.ConfirmRemove(ctx)
		},
	}
	remove.Flags().StringVar(&confirmText, "confirm", "", "nombre del campo (evita la pregunta interactiva)")
	cmd.AddCommand(remove)

	return cmd
}
