// Package views es el núcleo del cliente: vistas que cargan agregados del
// servicio de datos, los proyectan con schema, protegen los borrados con un
// guard y ejecutan las mutaciones a través del Orchestrator.
//
// Cada vista tiene un ciclo de vida. Close cancela las lecturas en curso y a
// partir de ese momento toda lectura que termine se descarta sin notificar;
// el error devuelto cumple errors.Is(err, domain.ErrCanceled).
package views

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Backend contrato que el núcleo espera del servicio de datos.
// Las implementaciones devuelven domain.ErrCanceled (envuelto) cuando ctx se cancela
// y *domain.RemoteError para respuestas de error del servidor.
type Backend interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id string) (entity.Category, error)
	CreateCategory(ctx context.Context, name string) (entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	AddFieldDefinition(ctx context.Context, categoryID, name string, kind entity.FieldKind) (entity.FieldDefinition, error)
	RemoveFieldDefinition(ctx context.Context, fieldID string) error

	ListAssets(ctx context.Context, categoryID string) ([]entity.Asset, error)
	GetAsset(ctx context.Context, id string) (entity.Asset, error)
	CreateAsset(ctx context.Context, categoryID, patrimonio string, values []entity.FieldValue) (entity.Asset, error)
	UpdateAsset(ctx context.Context, id, patrimonio string, values []entity.FieldValue) (entity.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

// NotificationKind fase de una notificación.
type NotificationKind int

const (
	NotifyPending NotificationKind = iota
	NotifySuccess
	NotifyError
)

func (k NotificationKind) String() string {
	switch k {
	case NotifySuccess:
		return "success"
	case NotifyError:
		return "error"
	default:
		return "pending"
	}
}

// Notification mensaje visible para el usuario. Una notificación con la misma
// Key reemplaza a la anterior (pendiente -> éxito/error).
type Notification struct {
	Key     string
	Kind    NotificationKind
	Message string
}

// Notifier superficie de notificaciones del host.
type Notifier interface {
	Notify(n Notification)
	Dismiss(key string)
}
