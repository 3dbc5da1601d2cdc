package ports

import (
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/schema"
)

// AssetReportGenerator define el puerto de salida para exportar la tabla de
// activos de una categoría. Cualquier adaptador (PDF, CSV, mock) debe
// implementar esta interfaz; la aplicación solo entrega la tabla ya proyectada.
type AssetReportGenerator interface {
	// Generate devuelve el documento y su tipo MIME.
	Generate(category entity.Category, table schema.Table) (content []byte, contentType string, err error)
}
