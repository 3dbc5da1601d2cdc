package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

// printRows escribe una tabla alineada.
func printRows(out io.Writer, headers []string, rows [][]string) error {
	w := newTabWriter(out)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	return w.Flush()
}

// printAssetTable escribe la tabla de activos. La columna de acciones muestra el
// ID del activo, que es lo que reciben los demás comandos.
func printAssetTable(out io.Writer, table schema.Table) error {
	headers := table.Headers()
	for i, c := range table.Columns {
		if c.Kind == schema.ColumnActions {
			headers[i] = "ID"
		}
	}
	rows := make([][]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		line := make([]string, 0, len(r.Cells)+2)
		line = append(line, r.Patrimonio)
		for _, c := range r.Cells {
			line = append(line, cellText(c))
		}
		line = append(line, r.AssetID)
		rows = append(rows, line)
	}
	return printRows(out, headers, rows)
}

// cellText marca las insignias de estado con su clase.
func cellText(c schema.Cell) string {
	if !c.Badge {
		return c.Text
	}
	return fmt.Sprintf("[%s] %s", badgeLabel(c.Class), c.Text)
}

func badgeLabel(class schema.StatusClass) string {
	switch class {
	case schema.StatusActive:
		return "activo"
	case schema.StatusInactive:
		return "inactivo"
	case schema.StatusMaintenance:
		return "mantenimiento"
	default:
		return "-"
	}
}
