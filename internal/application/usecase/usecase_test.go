package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

const (
	owner  = "u-1"
	intrus = "u-2"
)

type fixture struct {
	store      *memory.Store
	categories *usecase.CategoryUseCase
	fields     *usecase.FieldUseCase
	assets     *usecase.AssetUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	return &fixture{
		store:      s,
		categories: usecase.NewCategoryUseCase(s.Categories(), s.FieldDefinitions()),
		fields:     usecase.NewFieldUseCase(s.Categories(), s.FieldDefinitions()),
		assets:     usecase.NewAssetUseCase(s.Categories(), s.FieldDefinitions(), s.Assets()),
	}
}

// laptops crea la categoría Laptops con Marca (text), Valor (number) y Status (text).
func (f *fixture) laptops(t *testing.T) (dto.CategoryResponse, []dto.FieldDefinitionResponse) {
	t.Helper()
	ctx := context.Background()
	c, err := f.categories.Create(ctx, owner, dto.CreateCategoryRequest{Name: "Laptops"})
	require.NoError(t, err)
	var defs []dto.FieldDefinitionResponse
	for _, in := range []dto.CreateFieldDefinitionRequest{
		{Name: "Marca"},
		{Name: "Valor", Kind: "number"},
		{Name: "Status", Kind: "text"},
	} {
		fd, err := f.fields.Add(ctx, owner, c.ID, in)
		require.NoError(t, err)
		defs = append(defs, *fd)
	}
	return *c, defs
}
