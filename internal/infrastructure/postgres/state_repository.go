package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo estado conversacional sobre PostgreSQL.
type StateRepo struct {
	pool *pgxpool.Pool
}

// NewStateRepository construye el adaptador del estado conversacional.
func NewStateRepository(pool *pgxpool.Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

// Get devuelve el estado de un celular.
func (r *StateRepo) Get(celular string) (*entity.ConversationState, error) {
	var s entity.ConversationState
	err := r.pool.QueryRow(context.Background(),
		`SELECT celular, estado, opcion, actualizado FROM estado_conversacion WHERE celular = $1`,
		celular,
	).Scan(&s.Celular, &s.Estado, &s.Opcion, &s.Actualizado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estado: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza el estado del celular.
func (r *StateRepo) Upsert(state *entity.ConversationState) error {
	query := `
		INSERT INTO estado_conversacion (celular, estado, opcion, actualizado)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (celular) DO UPDATE
		SET estado = EXCLUDED.estado, opcion = EXCLUDED.opcion, actualizado = EXCLUDED.actualizado`
	_, err := r.pool.Exec(context.Background(), query,
		state.Celular, state.Estado, state.Opcion, state.Actualizado,
	)
	if err != nil {
		return fmt.Errorf("upsert estado: %w", err)
	}
	return nil
}

// Delete borra el estado del celular.
func (r *StateRepo) Delete(celular string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM estado_conversacion WHERE celular = $1`, celular)
	if err != nil {
		return fmt.Errorf("delete estado: %w", err)
	}
	return nil
}

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo tokens de carga masiva sobre PostgreSQL. Entidad separada del
// estado conversacional: la búsqueda es una lectura directa por token.
type TokenRepo struct {
	pool *pgxpool.Pool
}

// NewTokenRepository construye el adaptador de tokens de carga.
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Upsert guarda el token del celular, reemplazando cualquier emisión anterior.
func (r *TokenRepo) Upsert(token *entity.UploadToken) error {
	query := `
		INSERT INTO tokens_carga (celular, token, expira, creado)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (celular) DO UPDATE
		SET token = EXCLUDED.token, expira = EXCLUDED.expira, creado = EXCLUDED.creado`
	_, err := r.pool.Exec(context.Background(), query,
		token.Celular, token.Token, token.Expira, token.Creado,
	)
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

// FindByToken lectura directa por token.
func (r *TokenRepo) FindByToken(token string) (*entity.UploadToken, error) {
	var t entity.UploadToken
	err := r.pool.QueryRow(context.Background(),
		`SELECT celular, token, expira, creado FROM tokens_carga WHERE token = $1`,
		token,
	).Scan(&t.Celular, &t.Token, &t.Expira, &t.Creado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}
