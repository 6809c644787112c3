package entity

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)

// User representa un usuario del sistema, identificado por su número de celular.
type User struct {
	ID           int64
	Username     string // email/login, único junto con Celular
	Nombres      string
	Celular      string
	Rol          string // admin, usuario
	PasswordHash string // bcrypt, nunca en plano después de persistir
	Activo       bool
}
