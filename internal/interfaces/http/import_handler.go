package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/bulkload"
	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/infrastructure/excel"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportHandler maneja la plantilla y la importación masiva autenticada por header.
type ImportHandler struct {
	pipeline *bulkload.Pipeline
}

// NewImportHandler construye el handler de importación.
func NewImportHandler(pipeline *bulkload.Pipeline) *ImportHandler {
	return &ImportHandler{pipeline: pipeline}
}

// Template godoc
// @Summary      Descargar plantilla Excel para importación masiva
// @Tags         importacion
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/plantilla-excel [get]
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	return sendTemplate(c, bulkload.SchemaPlano, "plantilla_reportes")
}

// Import godoc
// @Summary      Importar reportes masivos desde Excel
// @Tags         importacion
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo .xlsx con las columnas de la plantilla"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/importar-excel [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	return runImport(c, h.pipeline, bulkload.SchemaPlano, GetUserID(c))
}

// sendTemplate genera y descarga la plantilla de la variante indicada.
func sendTemplate(c *fiber.Ctx, schema bulkload.Schema, prefix string) error {
	data, err := excel.BuildTemplate(schema)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// runImport parsea el archivo subido y delega al pipeline a nombre del usuario dado.
func runImport(c *fiber.Ctx, pipeline *bulkload.Pipeline, schema bulkload.Schema, reportanteID int64) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No se proporcionó archivo"})
	}
	file, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No fue posible leer el archivo"})
	}
	defer file.Close()

	rows, err := excel.ParseUpload(fh.Filename, file, schema)
	if err != nil {
		if errors.Is(err, excel.ErrExtension) || errors.Is(err, excel.ErrEmptyFile) || errors.Is(err, excel.ErrUnreadable) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		// Encabezado sin las columnas obligatorias
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: err.Error()})
	}

	res := pipeline.Run(rows, schema, fmt.Sprintf("%d", reportanteID))

	detalle := make([]dto.RowDetail, 0, len(res.Detalle))
	for _, d := range res.Detalle {
		detalle = append(detalle, dto.RowDetail{Fila: d.Fila, Mensaje: d.Mensaje})
	}
	return c.JSON(dto.ImportResultResponse{
		Message:    "Importación completada",
		Total:      res.Total,
		Insertados: res.Insertados,
		Fallidos:   res.Fallidos,
		Detalle:    detalle,
	})
}
