package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

func newAssetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Activos de una categoría",
	}
	cmd.AddCommand(
		newAssetsListCmd(a),
		newAssetsShowCmd(a),
		newAssetsCreateCmd(a),
		newAssetsUpdateCmd(a),
		newAssetsDeleteCmd(a),
		newAssetsReportCmd(a),
	)
	return cmd
}

func newAssetsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list CATEGORIA_ID",
		Short: "Tabla de activos con una columna por campo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewAssetListView(cmd.Context(), a.client, a.orch, args[0])
			defer v.Close()
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			c, _ := v.Category()
			fmt.Fprintf(a.out, "Categoría: %s (%d activo(s))\n", c.Name, len(v.Assets()))
			return printAssetTable(a.out, v.Table())
		},
	}
}

func newAssetsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show CATEGORIA_ID ACTIVO_ID",
		Short: "Ver un activo campo por campo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewAssetFormView(cmd.Context(), a.client, a.orch, args[0], args[1])
			defer v.Close()
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			rows := [][]string{{schema.LabelPatrimonio, v.Patrimonio()}}
			for _, fd := range v.Fields() {
				text := v.Value(fd.ID)
				if text == "" {
					text = schema.NotAvailable
				}
				rows = append(rows, []string{fd.Name, text})
			}
			return printRows(a.out, []string{"Campo", "Valor"}, rows)
		},
	}
}

// formFlags flags comunes de alta y edición.
type formFlags struct {
	patrimonio string
	set        []string
}

func (f *formFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.patrimonio, "patrimonio", "", "etiqueta de inventario")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "valor de un campo: CAMPO_ID=VALOR (repetible; VALOR vacío lo borra)")
}

// apply vuelca los flags sobre el formulario ya cargado.
func (f *formFlags) apply(cmd *cobra.Command, v *views.AssetFormView) error {
	if cmd.Flags().Changed("patrimonio") {
		v.SetPatrimonio(f.patrimonio)
	}
	for _, kv := range f.set {
		id, value, ok := strings.Cut(kv, "=")
		if !ok {
			return domain.Invalid("set", fmt.Sprintf("%q no tiene la forma CAMPO_ID=VALOR", kv))
		}
		if err := v.SetValue(strings.TrimSpace(id), value); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printSaved(_ context.Context, asset entity.Asset) {
	fmt.Fprintf(a.out, "%s\t%s\n", asset.ID, asset.Patrimonio)
}

func newAssetsCreateCmd(a *app) *cobra.Command {
	var flags formFlags
	cmd := &cobra.Command{
		Use:   "create CATEGORIA_ID",
		Short: "Crear activo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := views.NewAssetFormView(cmd.Context(), a.client, a.orch, args[0], "")
			defer v.Close()
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			if err := flags.apply(cmd, v); err != nil {
				return err
			}
			v.OnSaved = a.printSaved
			return v.Submit(cmd.Context())
		},
	}
	flags.bind(cmd)
	return cmd
}

func newAssetsUpdateCmd(a *app) *cobra.Command {
	var flags formFlags
	cmd := &cobra.Command{
		Use:   "update CATEGORIA_ID ACTIVO_ID",
		Short: "Editar activo; los campos no indicados conservan su valor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(flags.set) == 0 && cmd.Flags().Changed("patrimonio") {
				return a.patchPatrimonio(cmd.Context(), args[0], args[1], flags.patrimonio)
			}
			v := views.NewAssetFormView(cmd.Context(), a.client, a.orch, args[0], args[1])
			defer v.Close()
			if err := v.Load(cmd.Context()); err != nil {
				return err
			}
			if err := flags.apply(cmd, v); err != nil {
				return err
			}
			v.OnSaved = a.printSaved
			return v.Submit(cmd.Context())
		},
	}
	flags.bind(cmd)
	return cmd
}

// patchPatrimonio cambia solo la etiqueta con PATCH; los valores no viajan.
// category_id va en el cuerpo para que el servidor rechace un activo de otra categoría.
func (a *app) patchPatrimonio(ctx context.Context, categoryID, assetID, patrimonio string) error {
	patrimonio = strings.TrimSpace(patrimonio)
	if patrimonio == "" {
		return domain.Invalid("patrimonio", "el patrimonio es obligatorio")
	}
	in := dto.PatchAssetRequest{CategoryID: &categoryID, Patrimonio: &patrimonio}
	var saved entity.Asset
	err := a.orch.Execute(ctx, views.MsgUpdateAsset,
		func(ctx context.Context) error {
			out, opErr := a.client.PatchAsset(ctx, assetID, in)
			saved = out
			return opErr
		},
		nil,
	)
	if err != nil {
		return err
	}
	a.printSaved(ctx, saved)
	return nil
}

func newAssetsDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete CATEGORIA_ID ACTIVO_ID",
		Short: "Eliminar activo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v := views.NewAssetListView(ctx, a.client, a.orch, args[0])
			defer v.Close()
			if err := v.Load(ctx); err != nil {
				return err
			}
			for _, asset := range v.Assets() {
				if asset.ID != args[1] {
					continue
				}
				if err := v.RequestDelete(asset); err != nil {
					return err
				}
				preset := ""
				if yes {
					preset = "s"
				}
				if !confirmWith(a, v.Guard(), fmt.Sprintf("Se eliminará el activo %q.", asset.Patrimonio), preset) {
					return errAborted
				}
				return v.ConfirmDelete(ctx)
			}
			return fmt.Errorf("activo %s: %w", args[1], domain.ErrNotFound)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no preguntar")
	return cmd
}

func newAssetsReportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report CATEGORIA_ID",
		Short: "Descargar la tabla de activos en PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.client.Report(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("activos_%s_%s.pdf", args[0], time.Now().Format("20060102"))
			}
			if err := os.WriteFile(out, content, 0o644); err != nil {
				return fmt.Errorf("guardar reporte: %w", err)
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "archivo de salida")
	return cmd
}
