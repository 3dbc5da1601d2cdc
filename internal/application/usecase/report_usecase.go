package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/ports"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

// Report documento generado listo para enviar.
type Report struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportUseCase exporta la tabla de activos de una categoría con el mismo
// renderizado que usa el cliente (N/A, insignias de estado).
type ReportUseCase struct {
	categories *CategoryUseCase
	assets     repository.AssetRepository
	generator  ports.AssetReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(categories *CategoryUseCase, assets repository.AssetRepository, generator ports.AssetReportGenerator) *ReportUseCase {
	return &ReportUseCase{categories: categories, assets: assets, generator: generator}
}

// CategoryReport genera el reporte de la categoría indicada.
func (uc *ReportUseCase) CategoryReport(ctx context.Context, ownerID, categoryID string) (*Report, error) {
	resp, err := uc.categories.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	category := resp.Entity()

	list, err := uc.assets.List(ctx, repository.AssetFilter{OwnerID: ownerID, CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	assets := make([]entity.Asset, 0, len(list))
	for _, a := range list {
		assets = append(assets, *a)
	}

	table := schema.BuildTable(category.FieldDefinitions, assets)
	content, contentType, err := uc.generator.Generate(category, table)
	if err != nil {
		return nil, fmt.Errorf("generar reporte: %w", err)
	}
	return &Report{
		Filename:    reportFilename(category.Name, time.Now()),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func reportFilename(name string, at time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, name)
	if slug == "" {
		slug = "categoria"
	}
	return fmt.Sprintf("activos_%s_%s.pdf", slug, at.Format("20060102"))
}
