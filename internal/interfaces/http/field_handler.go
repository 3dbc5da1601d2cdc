package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// FieldHandler maneja las definiciones de campo de una categoría.
type FieldHandler struct {
	uc *usecase.FieldUseCase
}

// NewFieldHandler construye el handler.
func NewFieldHandler(uc *usecase.FieldUseCase) *FieldHandler {
	return &FieldHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar campo al esquema
// @Tags         fields
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la categoría"
// @Param        body  body  dto.CreateFieldDefinitionRequest  true  "Nombre y tipo (text, number, date)"
// @Success      201   {object}  dto.FieldDefinitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/fields [post]
func (h *FieldHandler) Add(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateFieldDefinitionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCategory godoc
// @Summary      Listar el esquema de una categoría (orden de creación)
// @Tags         fields
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {array}   dto.FieldDefinitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/fields [get]
func (h *FieldHandler) ListByCategory(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.ListByCategory(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener definición de campo
// @Tags         fields
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la definición"
// @Success      200  {object}  dto.FieldDefinitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fields/{id} [get]
func (h *FieldHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar definición de campo (y sus valores)
// @Tags         fields
// @Security     Bearer
// @Param        id   path  string  true  "ID de la definición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fields/{id} [delete]
func (h *FieldHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
