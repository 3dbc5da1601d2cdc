package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	FieldUC    *usecase.FieldUseCase
	AssetUC    *usecase.AssetUseCase
	ReportUC   *usecase.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas requieren Bearer Token; el dueño
// de los recursos es el user_id del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	fieldHandler := NewFieldHandler(deps.FieldUC)
	assetHandler := NewAssetHandler(deps.AssetUC)

	// Categories
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)

	// Esquema de una categoría
	categories.Get("/:id/fields", fieldHandler.ListByCategory)
	categories.Post("/:id/fields", fieldHandler.Add)

	// Reporte PDF (opcional)
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		categories.Get("/:id/report", reportHandler.CategoryReport)
	}

	// Field definitions
	fields := api.Group("/fields")
	fields.Get("/:id", fieldHandler.GetByID)
	fields.Delete("/:id", fieldHandler.Delete)

	// Assets
	assets := api.Group("/assets")
	assets.Get("/", assetHandler.List)
	assets.Post("/", assetHandler.Create)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Patch("/:id", assetHandler.Patch)
	assets.Delete("/:id", assetHandler.Delete)
}
