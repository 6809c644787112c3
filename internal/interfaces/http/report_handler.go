package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/application/usecase"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
)

// ReportHandler maneja consulta, creación y edición de reportes (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Lookup godoc
// @Summary      Consultar reportes por número de cédula
// @Tags         personas
// @Produce      json
// @Param        cedula  path  string  true  "número de documento del sujeto"
// @Success      200  {object}  dto.LookupReportsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/personas/{cedula} [get]
func (h *ReportHandler) Lookup(c *fiber.Ctx) error {
	cedula := c.Params("cedula")
	out, err := h.uc.Lookup(cedula, GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear un reporte individual
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "numero_documento, nombres, apellidos, placa"
// @Success      201  {object}  dto.CreateReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/personas [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NumeroDocumento == "" || in.Nombres == "" || in.Apellidos == "" || in.Placa == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Campos requeridos: numero_documento, nombres, apellidos, placa",
		})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Edit godoc
// @Summary      Editar un reporte (solo el creador o un admin)
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "id del reporte"
// @Param        body  body  map[string]any  true  "campos a actualizar"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personas/{id} [put]
func (h *ReportHandler) Edit(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Edit(id, GetUserID(c), GetUserRol(c), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Reporte no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tiene permisos para editar este reporte"})
		case errors.Is(err, domain.ErrNoFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No hay campos para actualizar"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Reporte actualizado exitosamente"})
}
