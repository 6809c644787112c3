package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// HeaderCelular cabecera con la identidad del solicitante.
const HeaderCelular = "X-User-Celular"

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID      = "user_id"
	LocalUserNombres = "user_nombres"
	LocalUserRol     = "user_rol"
	LocalUserCelular = "user_celular"
)

// AuthMiddleware resuelve la cabecera X-User-Celular contra la tabla de usuarios
// activos y expone la identidad vía c.Locals, sin mutar la petición.
func AuthMiddleware(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		celular := c.Get(HeaderCelular)
		if celular == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_HEADER", Message: "Número de celular requerido en headers (X-User-Celular)",
			})
		}
		user, err := users.FindActiveByCelular(celular)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "INTERNAL", Message: err.Error(),
			})
		}
		if user == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "USER_NOT_FOUND", Message: "Usuario no encontrado o inactivo",
			})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserNombres, user.Nombres)
		c.Locals(LocalUserRol, user.Rol)
		c.Locals(LocalUserCelular, user.Celular)
		return c.Next()
	}
}

// GetUserID devuelve el id del usuario autenticado (después del middleware).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUserRol devuelve el rol del usuario autenticado.
func GetUserRol(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserRol).(string)
	return v
}

// GetUserCelular devuelve el celular del usuario autenticado.
func GetUserCelular(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserCelular).(string)
	return v
}
