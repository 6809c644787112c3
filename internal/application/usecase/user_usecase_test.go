package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/application/usecase"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users  []*entity.User
	nextID int64
}

func (f *fakeUserRepo) Create(u *entity.User) (int64, error) {
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.users = append(f.users, &cp)
	return cp.ID, nil
}

func (f *fakeUserRepo) FindByCelular(celular string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Celular == celular {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindActiveByCelular(celular string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Celular == celular && u.Activo {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByCelularOrUsername(celular, username string) (bool, error) {
	for _, u := range f.users {
		if u.Celular == celular || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func TestRegister_CreaUsuarioConPasswordHasheado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Register(dto.CreateUserRequest{
		Username: "maria@example.com",
		Nombres:  "Maria Lopez",
		Celular:  "3001234567",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.IDUser)

	u := repo.users[0]
	assert.Equal(t, entity.RoleUsuario, u.Rol)
	assert.True(t, u.Activo)
	assert.NotEqual(t, "secreto123", u.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreto123")))
}

func TestRegister_CelularDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Register(dto.CreateUserRequest{
		Username: "maria@example.com",
		Nombres:  "Maria",
		Celular:  "3001234567",
		Password: "x",
	})
	require.NoError(t, err)

	// Mismo celular, distinto username.
	_, err = uc.Register(dto.CreateUserRequest{
		Username: "otra@example.com",
		Nombres:  "Otra",
		Celular:  "3001234567",
		Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	// Mismo username, distinto celular.
	_, err = uc.Register(dto.CreateUserRequest{
		Username: "maria@example.com",
		Nombres:  "Maria 2",
		Celular:  "3009999999",
		Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Len(t, repo.users, 1)
}

func TestVerify_UsuarioExistente(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.Create(&entity.User{
		Username: "maria@example.com",
		Nombres:  "Maria Lopez",
		Celular:  "3001234567",
		Rol:      entity.RoleAdmin,
		Activo:   true,
	})
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Verify("3001234567")
	require.NoError(t, err)
	assert.True(t, out.Exists)
	require.NotNil(t, out.Usuario)
	assert.Equal(t, "Maria Lopez", out.Usuario.Nombre)
	assert.Equal(t, entity.RoleAdmin, out.Usuario.Rol)
}

func TestVerify_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})

	out, err := uc.Verify("3000000000")
	require.NoError(t, err)
	assert.False(t, out.Exists)
	assert.Nil(t, out.Usuario)
}

func TestVerify_UsuarioInactivoTambienSeReporta(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.Create(&entity.User{Username: "ex@example.com", Celular: "3005555555", Activo: false})
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Verify("3005555555")
	require.NoError(t, err)
	assert.True(t, out.Exists)
	assert.False(t, out.Usuario.Activo)
}
