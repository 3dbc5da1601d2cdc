package schema

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// ColumnKind distingue las columnas fijas de las del esquema.
type ColumnKind int

const (
	ColumnPatrimonio ColumnKind = iota
	ColumnField
	ColumnActions
)

// Column cabecera de la tabla.
type Column struct {
	Kind              ColumnKind
	Label             string
	FieldDefinitionID string // solo ColumnField
	FieldKind         entity.FieldKind
}

// Cell celda de una columna de esquema. Text es el valor almacenado sin formato.
type Cell struct {
	FieldDefinitionID string
	Text              string
	Badge             bool
	Class             StatusClass // solo si Badge
}

// Row fila de un activo. Cells sigue el orden de las columnas de esquema.
type Row struct {
	AssetID    string
	Patrimonio string
	Cells      []Cell
}

// Table vista tabular de los activos de una categoría.
type Table struct {
	Columns []Column
	Rows    []Row
}

// Etiquetas de las columnas fijas.
const (
	LabelPatrimonio = "Patrimonio"
	LabelActions    = "Acciones"
)

// BuildTable proyecta assets sobre defs: patrimonio, una columna por definición
// en orden, y acciones.
func BuildTable(defs []entity.FieldDefinition, assets []entity.Asset) Table {
	cols := make([]Column, 0, len(defs)+2)
	cols = append(cols, Column{Kind: ColumnPatrimonio, Label: LabelPatrimonio})
	for _, d := range defs {
		cols = append(cols, Column{
			Kind:              ColumnField,
			Label:             d.Name,
			FieldDefinitionID: d.ID,
			FieldKind:         d.Kind,
		})
	}
	cols = append(cols, Column{Kind: ColumnActions, Label: LabelActions})

	rows := make([]Row, 0, len(assets))
	for _, a := range assets {
		cells := make([]Cell, 0, len(defs))
		for _, d := range defs {
			cells = append(cells, BuildCell(a, d))
		}
		rows = append(rows, Row{AssetID: a.ID, Patrimonio: a.Patrimonio, Cells: cells})
	}
	return Table{Columns: cols, Rows: rows}
}

// BuildCell resuelve una celda.
func BuildCell(asset entity.Asset, def entity.FieldDefinition) Cell {
	c := Cell{FieldDefinitionID: def.ID, Text: DisplayValue(asset, def)}
	if IsStatusField(def) {
		c.Badge = true
		c.Class = ClassifyStatus(c.Text)
	}
	return c
}

// Headers devuelve las etiquetas de columna en orden.
func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Label
	}
	return out
}
