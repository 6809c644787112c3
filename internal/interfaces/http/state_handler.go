package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/application/usecase"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
)

// StateHandler CRUD del estado conversacional del bot (protegido).
type StateHandler struct {
	uc *usecase.StateUseCase
}

// NewStateHandler construye el handler de estado conversacional.
func NewStateHandler(uc *usecase.StateUseCase) *StateHandler {
	return &StateHandler{uc: uc}
}

// Get godoc
// @Summary      Consultar estado de conversación de un celular
// @Tags         estado
// @Produce      json
// @Param        celular  path  string  true  "celular"
// @Success      200  {object}  dto.StateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estado-usuario/{celular} [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("celular"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Sin estado para ese celular"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar estado de conversación
// @Tags         estado
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertStateRequest  true  "celular, estado, opcion"
// @Success      200  {object}  dto.StateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estado-usuario [post]
func (h *StateHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertStateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// En PUT el celular viene en el path.
	if p := c.Params("celular"); p != "" {
		in.Celular = p
	}
	if in.Celular == "" || in.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Campos requeridos: celular, estado"})
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar estado de conversación (reinicio del diálogo)
// @Tags         estado
// @Produce      json
// @Param        celular  path  string  true  "celular"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/estado-usuario/{celular} [delete]
func (h *StateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("celular")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Estado eliminado"})
}
