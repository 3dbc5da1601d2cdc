// Package pdf genera el reporte de activos de una categoría.
//
// Layout (A4 horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Categoría + fecha de emisión + total de activos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Patrimonio | campo 1 | campo 2 | ... (orden esquema) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

var _ ports.AssetReportGenerator = (*MarotoReportGenerator)(nil)

// ContentType tipo MIME de los documentos generados.
const ContentType = "application/pdf"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}

	statusColors = map[schema.StatusClass]*props.Color{
		schema.StatusActive:      {Red: 22, Green: 128, Blue: 61},
		schema.StatusInactive:    {Red: 185, Green: 28, Blue: 28},
		schema.StatusMaintenance: {Red: 180, Green: 115, Blue: 0},
		schema.StatusDefault:     colorGray,
	}
)

// Ancho relativo de cada columna en la grilla.
const colSpan = 2

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.AssetReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// Generate dibuja la tabla tal como la muestra el cliente, sin la columna de acciones.
func (g *MarotoReportGenerator) Generate(category entity.Category, table schema.Table) ([]byte, string, error) {
	cols := dataColumns(table)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(len(cols) * colSpan).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Activos - "+category.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(category, len(table.Rows), g.now(), len(cols)*colSpan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(cols))
	m.AddRows(tableRows(table)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(cols) * colSpan))

	doc, err := m.Generate()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), ContentType, nil
}

// dataColumns descarta la columna de acciones.
func dataColumns(table schema.Table) []schema.Column {
	out := make([]schema.Column, 0, len(table.Columns))
	for _, c := range table.Columns {
		if c.Kind != schema.ColumnActions {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		out = append(out, schema.Column{Kind: schema.ColumnPatrimonio, Label: schema.LabelPatrimonio})
	}
	return out
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(category entity.Category, total int, at time.Time, grid int) core.Row {
	left := grid / 2
	if left == 0 {
		left = grid
	}
	r := row.New(16).Add(
		col.New(left).Add(
			text.New(category.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d activo(s)", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
	if right := grid - left; right > 0 {
		r.Add(col.New(right).Add(
			text.New("REPORTE DE ACTIVOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+at.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		))
	}
	return r
}

func tableHeaderRow(cols []schema.Column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(colSpan).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por activo. Las celdas de estado se colorean por clase.
func tableRows(table schema.Table) []core.Row {
	rows := make([]core.Row, 0, len(table.Rows))
	for _, r := range table.Rows {
		cells := make([]core.Col, 0, len(r.Cells)+1)
		cells = append(cells, col.New(colSpan).Add(text.New(r.Patrimonio, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
		})))
		for _, c := range r.Cells {
			p := props.Text{Size: 8, Top: 1, Left: 1, Right: 1}
			if c.Badge {
				p.Style = fontstyle.Bold
				p.Color = statusColor(c.Class)
			}
			cells = append(cells, col.New(colSpan).Add(text.New(c.Text, p)))
		}
		rows = append(rows, row.New(7).Add(cells...))
	}
	return rows
}

func footerRow(grid int) core.Row {
	return row.New(8).Add(col.New(grid).Add(
		text.New("Los campos sin valor se muestran como "+schema.NotAvailable+".", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(class schema.StatusClass) *props.Color {
	if c, ok := statusColors[class]; ok {
		return c
	}
	return colorGray
}
