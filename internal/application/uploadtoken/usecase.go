package uploadtoken

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// Config parámetros de emisión.
type Config struct {
	TTL     time.Duration // vigencia del token
	BaseURL string        // base absoluta para la URL de carga, sin slash final
}

// UseCase emite y valida tokens de carga masiva. El token es reutilizable
// hasta su expiración natural; no hay revocación explícita.
type UseCase struct {
	tokens repository.TokenRepository
	users  repository.UserRepository
	cfg    Config
	now    func() time.Time
}

// New construye el caso de uso.
func New(tokens repository.TokenRepository, users repository.UserRepository, cfg Config) *UseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &UseCase{tokens: tokens, users: users, cfg: cfg, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Issue genera un token aleatorio para el celular y lo persiste, reemplazando
// cualquier token anterior del mismo número.
func (uc *UseCase) Issue(celular string) (*dto.IssueTokenResponse, error) {
	user, err := uc.users.FindActiveByCelular(celular)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := uc.now()
	tok := &entity.UploadToken{
		Celular: celular,
		Token:   uuid.NewString(),
		Expira:  now.Add(uc.cfg.TTL),
		Creado:  now,
	}
	if err := uc.tokens.Upsert(tok); err != nil {
		return nil, fmt.Errorf("guardar token: %w", err)
	}

	return &dto.IssueTokenResponse{
		Token:   tok.Token,
		URL:     uc.cfg.BaseURL + "/carga-masiva/" + tok.Token,
		Expira:  tok.Expira.Format("2006-01-02 15:04:05"),
		Message: fmt.Sprintf("Token válido por %d horas", int(uc.cfg.TTL.Hours())),
	}, nil
}

// Validate busca el token y verifica su vigencia. La fila expirada se conserva,
// solo deja de pasar la validación.
func (uc *UseCase) Validate(token string) (*entity.UploadToken, error) {
	tok, err := uc.tokens.FindByToken(token)
	if err != nil {
		return nil, fmt.Errorf("buscar token: %w", err)
	}
	if tok == nil {
		return nil, domain.ErrTokenNotFound
	}
	if !tok.Vigente(uc.now()) {
		return nil, domain.ErrTokenExpired
	}
	return tok, nil
}

// ResolveUser valida el token y resuelve el usuario activo dueño del celular,
// para delegar la importación a nombre de ese usuario.
func (uc *UseCase) ResolveUser(token string) (*entity.User, *entity.UploadToken, error) {
	tok, err := uc.Validate(token)
	if err != nil {
		return nil, nil, err
	}
	user, err := uc.users.FindActiveByCelular(tok.Celular)
	if err != nil {
		return nil, nil, fmt.Errorf("buscar usuario del token: %w", err)
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	return user, tok, nil
}
