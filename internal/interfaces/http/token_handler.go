package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/bulkload"
	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/application/uploadtoken"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
)

//go:embed pages/*.html
var pagesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(pagesFS, "pages/*.html"))

// uploadPageData datos que la página de carga incrusta para el cliente.
type uploadPageData struct {
	Token       string
	Celular     string
	Expira      string
	TemplateURL string
	ImportURL   string
}

// TokenHandler maneja la emisión de tokens de carga y el flujo web asociado.
type TokenHandler struct {
	uc       *uploadtoken.UseCase
	pipeline *bulkload.Pipeline
}

// NewTokenHandler construye el handler del flujo con token.
func NewTokenHandler(uc *uploadtoken.UseCase, pipeline *bulkload.Pipeline) *TokenHandler {
	return &TokenHandler{uc: uc, pipeline: pipeline}
}

// Issue godoc
// @Summary      Generar token de carga masiva para el usuario autenticado
// @Tags         token
// @Produce      json
// @Success      200  {object}  dto.IssueTokenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/generar-token-carga [post]
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	out, err := h.uc.Issue(GetUserCelular(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado o inactivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UploadPage godoc
// @Summary      Página web de carga masiva autorizada por token
// @Tags         token
// @Produce      html
// @Param        token  path  string  true  "token de carga"
// @Success      200  {string}  string
// @Failure      403  {string}  string
// @Failure      404  {string}  string
// @Router       /carga-masiva/{token} [get]
func (h *TokenHandler) UploadPage(c *fiber.Ctx) error {
	token := c.Params("token")
	tok, err := h.uc.Validate(token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenNotFound):
			return renderPage(c, fiber.StatusNotFound, "token_error.html", fiber.Map{
				"Title": "Token inválido", "Message": "El enlace de carga no existe o fue reemplazado por uno más reciente.",
			})
		case errors.Is(err, domain.ErrTokenExpired):
			return renderPage(c, fiber.StatusForbidden, "token_error.html", fiber.Map{
				"Title": "Token expirado", "Message": "El enlace de carga venció. Solicite un nuevo token.",
			})
		default:
			return renderPage(c, fiber.StatusInternalServerError, "token_error.html", fiber.Map{
				"Title": "Error", "Message": "No fue posible validar el enlace. Intente de nuevo.",
			})
		}
	}
	return renderPage(c, fiber.StatusOK, "upload.html", uploadPageData{
		Token:       tok.Token,
		Celular:     tok.Celular,
		Expira:      tok.Expira.Format("2006-01-02 15:04"),
		TemplateURL: "/api/plantilla-excel-token/" + tok.Token,
		ImportURL:   "/api/importar-excel-token/" + tok.Token,
	})
}

// Template godoc
// @Summary      Descargar plantilla Excel de la variante con token
// @Tags         token
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        token  path  string  true  "token de carga"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plantilla-excel-token/{token} [get]
func (h *TokenHandler) Template(c *fiber.Ctx) error {
	if err := h.validateAPI(c); err != nil {
		return err
	}
	return sendTemplate(c, bulkload.SchemaToken, "plantilla_conductores")
}

// Import godoc
// @Summary      Importar reportes masivos con token de carga
// @Tags         token
// @Accept       multipart/form-data
// @Produce      json
// @Param        token  path      string  true  "token de carga"
// @Param        file   formData  file    true  "archivo .xlsx con las columnas de la plantilla"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/importar-excel-token/{token} [post]
func (h *TokenHandler) Import(c *fiber.Ctx) error {
	user, _, err := h.uc.ResolveUser(c.Params("token"))
	if err != nil {
		return tokenError(c, err)
	}
	return runImport(c, h.pipeline, bulkload.SchemaToken, user.ID)
}

// validateAPI valida el token del path para endpoints JSON.
func (h *TokenHandler) validateAPI(c *fiber.Ctx) error {
	if _, err := h.uc.Validate(c.Params("token")); err != nil {
		return tokenError(c, err)
	}
	return nil
}

func tokenError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TOKEN_NOT_FOUND", Message: "Token no encontrado"})
	case errors.Is(err, domain.ErrTokenExpired):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "Token expirado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado o inactivo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func renderPage(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error interno")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
