package views

// Messages textos de una mutación en sus tres fases.
type Messages struct {
	Pending string
	Success string
	Error   string // se usa si el servidor no envía un mensaje propio
}

// Textos fijos por operación.
var (
	MsgCreateCategory = Messages{
		Pending: "Creando categoría...",
		Success: "¡Categoría creada con éxito!",
		Error:   "No fue posible crear la categoría.",
	}
	MsgDeleteCategory = Messages{
		Pending: "Eliminando categoría...",
		Success: "¡Categoría eliminada con éxito!",
		Error:   "No fue posible eliminar la categoría.",
	}
	MsgAddField = Messages{
		Pending: "Agregando campo...",
		Success: "¡Campo creado con éxito!",
		Error:   "No fue posible crear el campo.",
	}
	MsgRemoveField = Messages{
		Pending: "Eliminando campo...",
		Success: "¡Campo eliminado con éxito!",
		Error:   "No fue posible eliminar el campo.",
	}
	MsgCreateAsset = Messages{
		Pending: "Creando activo...",
		Success: "¡Activo creado con éxito!",
		Error:   "No fue posible crear el activo.",
	}
	MsgUpdateAsset = Messages{
		Pending: "Guardando activo...",
		Success: "¡Activo actualizado con éxito!",
		Error:   "No fue posible actualizar el activo.",
	}
	MsgDeleteAsset = Messages{
		Pending: "Eliminando activo...",
		Success: "¡Activo eliminado con éxito!",
		Error:   "No fue posible eliminar el activo.",
	}
)

// Textos de error de lectura.
const (
	msgLoadCategories   = "No fue posible cargar las categorías."
	msgReloadCategories = "No fue posible recargar las categorías."
	msgLoadCategory     = "No fue posible cargar la categoría."
	msgReloadFields     = "No fue posible recargar los campos."
	msgLoadAssets       = "No fue posible cargar los activos."
	msgLoadAsset        = "No fue posible cargar el activo."
)
