package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado o inactivo")
	ErrUserExists    = errors.New("ya existe un usuario con ese celular o email")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrTokenNotFound = errors.New("token no encontrado")
	ErrTokenExpired  = errors.New("token expirado")
	ErrNoFields      = errors.New("no hay campos para actualizar")
)
