// Package schema proyecta activos sobre el esquema dinámico de su categoría.
//
// Los valores de un activo son una colección indexada por ID de definición de
// campo. Nada aquí asume que el esquema y los valores estén sincronizados: un
// valor huérfano se ignora y un campo sin valor se muestra como NotAvailable.
package schema

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// NotAvailable es el texto de una celda sin valor.
const NotAvailable = "N/A"

// Lookup busca el valor de fieldDefinitionID. Si hay duplicados gana el primero.
func Lookup(values []entity.FieldValue, fieldDefinitionID string) (string, bool) {
	for _, fv := range values {
		if fv.FieldDefinitionID == fieldDefinitionID {
			return fv.Value, true
		}
	}
	return "", false
}

// DisplayValue devuelve el texto a mostrar; ausente o vacío es NotAvailable.
func DisplayValue(asset entity.Asset, def entity.FieldDefinition) string {
	v, ok := Lookup(asset.FieldValues, def.ID)
	if !ok || v == "" {
		return NotAvailable
	}
	return v
}
