package schema

import (
	"golang.org/x/text/cases"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// StatusClass clase visual de la insignia de estado.
type StatusClass string

const (
	StatusActive      StatusClass = "status-active"
	StatusInactive    StatusClass = "status-inactive"
	StatusMaintenance StatusClass = "status-maintenance"
	StatusDefault     StatusClass = "status-default"
)

const statusFieldName = "status"

// Vocabulario bilingüe (inglés/portugués), ya en forma plegada.
var statusVocabulary = map[string]StatusClass{
	"active":      StatusActive,
	"ativo":       StatusActive,
	"inactive":    StatusInactive,
	"inativo":     StatusInactive,
	"maintenance": StatusMaintenance,
	"manutenção":  StatusMaintenance,
}

// fold compara sin distinguir mayúsculas. cases.Caser no es seguro entre
// goroutines, así que se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}

// IsStatusField indica si la definición recibe insignia ("status", sin importar mayúsculas).
func IsStatusField(def entity.FieldDefinition) bool {
	return fold(def.Name) == statusFieldName
}

// ClassifyStatus clasifica un valor; lo no reconocido es StatusDefault.
func ClassifyStatus(value string) StatusClass {
	if class, ok := statusVocabulary[fold(value)]; ok {
		return class
	}
	return StatusDefault
}
