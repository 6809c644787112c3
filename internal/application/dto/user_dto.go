package dto

// VerifyUserRequest entrada para verificar existencia por celular.
type VerifyUserRequest struct {
	Celular string `json:"celular" validate:"required"`
}

// VerifyUserResponse salida de la verificación. Usuario solo viene si Exists.
type VerifyUserResponse struct {
	Exists  bool          `json:"exists"`
	Usuario *UserResponse `json:"usuario,omitempty"`
	Message string        `json:"message,omitempty"`
}

// CreateUserRequest entrada para registro (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,email"`
	Nombres  string `json:"nombres" validate:"required,min=1,max=200"`
	Celular  string `json:"celular" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserResponse salida del registro con el id generado.
type CreateUserResponse struct {
	IDUser  int64  `json:"id_user"`
	Message string `json:"message"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Celular string `json:"celular,omitempty"`
	Rol     string `json:"rol"`
	Activo  bool   `json:"activo"`
}
