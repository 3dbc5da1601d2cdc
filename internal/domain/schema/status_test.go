package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		in   string
		want schema.StatusClass
	}{
		{"Active", schema.StatusActive},
		{"ATIVO", schema.StatusActive},
		{"ativo", schema.StatusActive},
		{"inactive", schema.StatusInactive},
		{"Inativo", schema.StatusInactive},
		{"Maintenance", schema.StatusMaintenance},
		{"manutenção", schema.StatusMaintenance},
		{"MANUTENÇÃO", schema.StatusMaintenance},
		{"anything-else", schema.StatusDefault},
		{"", schema.StatusDefault},
		{schema.NotAvailable, schema.StatusDefault},
		{" active", schema.StatusDefault},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, schema.ClassifyStatus(tc.in))
		})
	}
}

func TestIsStatusField(t *testing.T) {
	assert.True(t, schema.IsStatusField(entity.FieldDefinition{Name: "status"}))
	assert.True(t, schema.IsStatusField(entity.FieldDefinition{Name: "STATUS"}))
	assert.True(t, schema.IsStatusField(entity.FieldDefinition{Name: "Status", Kind: entity.FieldKindNumber}))
	assert.False(t, schema.IsStatusField(entity.FieldDefinition{Name: "estado"}))
	assert.False(t, schema.IsStatusField(entity.FieldDefinition{Name: "status "}))
}
