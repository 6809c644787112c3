package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// UserUseCase registro y verificación de usuarios por celular.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Verify indica si existe un usuario con ese celular, activo o no.
func (uc *UserUseCase) Verify(celular string) (*dto.VerifyUserResponse, error) {
	user, err := uc.repo.FindByCelular(celular)
	if err != nil {
		return nil, fmt.Errorf("verificar usuario: %w", err)
	}
	if user == nil {
		return &dto.VerifyUserResponse{Exists: false, Message: "Usuario no encontrado"}, nil
	}
	return &dto.VerifyUserResponse{
		Exists: true,
		Usuario: &dto.UserResponse{
			ID:     user.ID,
			Nombre: user.Nombres,
			Email:  user.Username,
			Rol:    user.Rol,
			Activo: user.Activo,
		},
	}, nil
}

// Register crea un usuario con rol "usuario" y password hasheado con bcrypt.
// La unicidad de celular/username se pre-chequea sobre activos e inactivos.
func (uc *UserUseCase) Register(in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	exists, err := uc.repo.ExistsByCelularOrUsername(in.Celular, in.Username)
	if err != nil {
		return nil, fmt.Errorf("pre-chequeo de unicidad: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de password: %w", err)
	}

	user := &entity.User{
		Username:     in.Username,
		Nombres:      in.Nombres,
		Celular:      in.Celular,
		Rol:          entity.RoleUsuario,
		PasswordHash: string(hash),
		Activo:       true,
	}
	id, err := uc.repo.Create(user)
	if err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{IDUser: id, Message: "Usuario creado exitosamente"}, nil
}
