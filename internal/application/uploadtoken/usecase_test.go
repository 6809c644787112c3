package uploadtoken_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohanrv1/infotaxi-api/internal/application/uploadtoken"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
)

// fakeTokenRepo un slot por celular, como la tabla real.
type fakeTokenRepo struct {
	byCelular map[string]*entity.UploadToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byCelular: make(map[string]*entity.UploadToken)}
}

func (f *fakeTokenRepo) Upsert(t *entity.UploadToken) error {
	cp := *t
	f.byCelular[t.Celular] = &cp
	return nil
}

func (f *fakeTokenRepo) FindByToken(token string) (*entity.UploadToken, error) {
	for _, t := range f.byCelular {
		if t.Token == token {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeUserRepo usuarios indexados por celular.
type fakeUserRepo struct {
	byCelular map[string]*entity.User
}

func (f *fakeUserRepo) Create(*entity.User) (int64, error) { return 0, nil }

func (f *fakeUserRepo) FindByCelular(celular string) (*entity.User, error) {
	return f.byCelular[celular], nil
}

func (f *fakeUserRepo) FindActiveByCelular(celular string) (*entity.User, error) {
	u := f.byCelular[celular]
	if u == nil || !u.Activo {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByCelularOrUsername(string, string) (bool, error) { return false, nil }

const testCelular = "3007471199"

func buildUseCase(t *testing.T, now *time.Time) (*uploadtoken.UseCase, *fakeTokenRepo, *fakeUserRepo) {
	t.Helper()
	tokens := newFakeTokenRepo()
	users := &fakeUserRepo{byCelular: map[string]*entity.User{
		testCelular: {ID: 7, Celular: testCelular, Nombres: "Ana Prueba", Rol: entity.RoleUsuario, Activo: true},
	}}
	uc := uploadtoken.New(tokens, users, uploadtoken.Config{
		TTL:     24 * time.Hour,
		BaseURL: "http://localhost:8080",
	}).WithClock(func() time.Time { return *now })
	return uc, tokens, users
}

func TestIssue_GeneraTokenConURLYExpiracion(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	uc, tokens, _ := buildUseCase(t, &now)

	out, err := uc.Issue(testCelular)
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "http://localhost:8080/carga-masiva/"+out.Token, out.URL)
	assert.Contains(t, out.Message, "24 horas")

	stored := tokens.byCelular[testCelular]
	require.NotNil(t, stored)
	assert.Equal(t, now.Add(24*time.Hour), stored.Expira)
}

func TestIssue_UsuarioInactivo_Falla(t *testing.T) {
	now := time.Now()
	uc, _, users := buildUseCase(t, &now)
	users.byCelular[testCelular].Activo = false

	_, err := uc.Issue(testCelular)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestValidate_VigenteYLuegoExpirado(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	uc, _, _ := buildUseCase(t, &now)

	out, err := uc.Issue(testCelular)
	require.NoError(t, err)

	// Inmediatamente después de emitir: vigente.
	tok, err := uc.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, testCelular, tok.Celular)

	// Justo en el límite sigue siendo válido.
	now = now.Add(24 * time.Hour)
	_, err = uc.Validate(out.Token)
	assert.NoError(t, err)

	// Un segundo después de la expiración: rechazado, la fila se conserva.
	now = now.Add(time.Second)
	_, err = uc.Validate(out.Token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestValidate_TokenDesconocido(t *testing.T) {
	now := time.Now()
	uc, _, _ := buildUseCase(t, &now)

	_, err := uc.Validate("no-existe")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestIssue_NuevaEmisionReemplazaALaAnterior(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	uc, _, _ := buildUseCase(t, &now)

	primero, err := uc.Issue(testCelular)
	require.NoError(t, err)
	segundo, err := uc.Issue(testCelular)
	require.NoError(t, err)
	require.NotEqual(t, primero.Token, segundo.Token)

	// Solo el token más reciente es localizable.
	_, err = uc.Validate(primero.Token)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	_, err = uc.Validate(segundo.Token)
	assert.NoError(t, err)
}

func TestResolveUser_DevuelveDuenoDelToken(t *testing.T) {
	now := time.Now()
	uc, _, _ := buildUseCase(t, &now)

	out, err := uc.Issue(testCelular)
	require.NoError(t, err)

	user, tok, err := uc.ResolveUser(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, testCelular, tok.Celular)
}

func TestResolveUser_UsuarioDesactivadoDespuesDeEmitir(t *testing.T) {
	now := time.Now()
	uc, _, users := buildUseCase(t, &now)

	out, err := uc.Issue(testCelular)
	require.NoError(t, err)

	users.byCelular[testCelular].Activo = false
	_, _, err = uc.ResolveUser(out.Token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
