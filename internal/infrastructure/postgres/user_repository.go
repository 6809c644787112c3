package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y devuelve el id generado.
func (r *UserRepo) Create(user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, nombres, celular, rol, password_hash, isactive)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_user`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		user.Username, user.Nombres, user.Celular, user.Rol, user.PasswordHash, user.Activo,
	).Scan(&id)
	if err != nil {
		// Carrera entre el pre-chequeo y el insert si hay índice único en BD.
		if isUniqueViolation(err) {
			return 0, domain.ErrUserExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// FindByCelular obtiene un usuario por celular sin importar su estado.
func (r *UserRepo) FindByCelular(celular string) (*entity.User, error) {
	query := `
		SELECT id_user, username, nombres, celular, rol, password_hash, isactive
		FROM users WHERE celular = $1 LIMIT 1`
	return r.scanOne(query, celular)
}

// FindActiveByCelular obtiene un usuario activo por celular.
func (r *UserRepo) FindActiveByCelular(celular string) (*entity.User, error) {
	query := `
		SELECT id_user, username, nombres, celular, rol, password_hash, isactive
		FROM users WHERE celular = $1 AND isactive = TRUE LIMIT 1`
	return r.scanOne(query, celular)
}

// ExistsByCelularOrUsername pre-chequeo de unicidad sobre activos e inactivos.
func (r *UserRepo) ExistsByCelularOrUsername(celular, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE celular = $1 OR username = $2)`,
		celular, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Username, &u.Nombres, &u.Celular, &u.Rol, &u.PasswordHash, &u.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

var _ repository.QueryCounterRepository = (*QueryCounterRepo)(nil)

// QueryCounterRepo contador de consultas por usuario sobre PostgreSQL.
type QueryCounterRepo struct {
	pool *pgxpool.Pool
}

// NewQueryCounterRepository construye el adaptador del contador.
func NewQueryCounterRepository(pool *pgxpool.Pool) *QueryCounterRepo {
	return &QueryCounterRepo{pool: pool}
}

// Increment suma 1 al contador del usuario, creando la fila si es su primera consulta.
func (r *QueryCounterRepo) Increment(userID int64) error {
	query := `
		INSERT INTO consultas (user_id, count) VALUES ($1, 1)
		ON CONFLICT (user_id) DO UPDATE SET count = consultas.count + 1`
	_, err := r.pool.Exec(context.Background(), query, userID)
	if err != nil {
		return fmt.Errorf("increment consultas: %w", err)
	}
	return nil
}

// Get devuelve el contador del usuario. nil si nunca ha consultado.
func (r *QueryCounterRepo) Get(userID int64) (*entity.QueryCounter, error) {
	var c entity.QueryCounter
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, user_id, count FROM consultas WHERE user_id = $1`,
		userID,
	).Scan(&c.ID, &c.UserID, &c.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultas: %w", err)
	}
	return &c, nil
}
