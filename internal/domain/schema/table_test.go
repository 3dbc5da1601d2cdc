package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

var (
	defMarca  = entity.FieldDefinition{ID: "f-marca", CategoryID: "c-1", Name: "Marca", Kind: entity.FieldKindText}
	defStatus = entity.FieldDefinition{ID: "f-status", CategoryID: "c-1", Name: "Status", Kind: entity.FieldKindText}
	defCompra = entity.FieldDefinition{ID: "f-compra", CategoryID: "c-1", Name: "Compra", Kind: entity.FieldKindDate}
)

func TestBuildTable_ColumnasEnOrden(t *testing.T) {
	defs := []entity.FieldDefinition{defMarca, defStatus, defCompra}

	table := schema.BuildTable(defs, nil)

	assert.Equal(t, []string{schema.LabelPatrimonio, "Marca", "Status", "Compra", schema.LabelActions}, table.Headers())
	require.Len(t, table.Columns, 5)
	assert.Equal(t, schema.ColumnPatrimonio, table.Columns[0].Kind)
	assert.Equal(t, schema.ColumnActions, table.Columns[4].Kind)
	assert.Equal(t, "f-status", table.Columns[2].FieldDefinitionID)
	assert.Empty(t, table.Rows)
}

func TestBuildTable_ValorAusenteEsNA(t *testing.T) {
	defs := []entity.FieldDefinition{defMarca, defCompra}
	assets := []entity.Asset{{
		ID:          "a-1",
		Patrimonio:  "Laptop-001",
		FieldValues: []entity.FieldValue{{FieldDefinitionID: "f-marca", Value: "Dell"}},
	}}

	table := schema.BuildTable(defs, assets)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "Laptop-001", row.Patrimonio)
	assert.Equal(t, "Dell", row.Cells[0].Text)
	assert.Equal(t, "N/A", row.Cells[1].Text)
}

func TestBuildTable_ValorVacioEsNA(t *testing.T) {
	assets := []entity.Asset{{ID: "a-1", FieldValues: []entity.FieldValue{{FieldDefinitionID: "f-marca", Value: ""}}}}

	table := schema.BuildTable([]entity.FieldDefinition{defMarca}, assets)

	assert.Equal(t, schema.NotAvailable, table.Rows[0].Cells[0].Text)
}

func TestBuildTable_ValorHuerfanoSeIgnora(t *testing.T) {
	// valor que referencia una definición de otra categoría o ya eliminada
	assets := []entity.Asset{{ID: "a-1", FieldValues: []entity.FieldValue{{FieldDefinitionID: "f-otra", Value: "x"}}}}

	table := schema.BuildTable([]entity.FieldDefinition{defMarca}, assets)

	require.Len(t, table.Rows[0].Cells, 1)
	assert.Equal(t, schema.NotAvailable, table.Rows[0].Cells[0].Text)
}

func TestBuildTable_DuplicadoGanaElPrimero(t *testing.T) {
	assets := []entity.Asset{{ID: "a-1", FieldValues: []entity.FieldValue{
		{FieldDefinitionID: "f-marca", Value: "HP"},
		{FieldDefinitionID: "f-marca", Value: "Lenovo"},
	}}}

	table := schema.BuildTable([]entity.FieldDefinition{defMarca}, assets)

	assert.Equal(t, "HP", table.Rows[0].Cells[0].Text)
}

func TestBuildTable_InsigniaDeEstado(t *testing.T) {
	defs := []entity.FieldDefinition{defMarca, defStatus}
	assets := []entity.Asset{
		{ID: "a-1", FieldValues: []entity.FieldValue{{FieldDefinitionID: "f-status", Value: "MANUTENÇÃO"}}},
		{ID: "a-2"},
	}

	table := schema.BuildTable(defs, assets)

	marca := table.Rows[0].Cells[0]
	assert.False(t, marca.Badge)

	status := table.Rows[0].Cells[1]
	assert.True(t, status.Badge)
	assert.Equal(t, schema.StatusMaintenance, status.Class)
	assert.Equal(t, "MANUTENÇÃO", status.Text, "el valor almacenado no se modifica")

	sinValor := table.Rows[1].Cells[1]
	assert.True(t, sinValor.Badge)
	assert.Equal(t, schema.NotAvailable, sinValor.Text)
	assert.Equal(t, schema.StatusDefault, sinValor.Class)
}

func TestBuildTable_TiposNoFormatean(t *testing.T) {
	defNum := entity.FieldDefinition{ID: "f-num", Name: "Valor", Kind: entity.FieldKindNumber}
	assets := []entity.Asset{{ID: "a-1", FieldValues: []entity.FieldValue{
		{FieldDefinitionID: "f-num", Value: "1500.50"},
		{FieldDefinitionID: "f-compra", Value: "2024-02-30"},
	}}}

	table := schema.BuildTable([]entity.FieldDefinition{defNum, defCompra}, assets)

	assert.Equal(t, "1500.50", table.Rows[0].Cells[0].Text)
	assert.Equal(t, "2024-02-30", table.Rows[0].Cells[1].Text)
}
