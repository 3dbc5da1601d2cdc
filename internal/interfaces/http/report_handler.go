package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// ReportHandler exporta documentos de una categoría.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CategoryReport godoc
// @Summary      Reporte PDF de los activos de una categoría
// @Tags         categories
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/report [get]
func (h *ReportHandler) CategoryReport(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	rep, err := h.uc.CategoryReport(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, rep.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rep.Filename))
	return c.Send(rep.Content)
}
