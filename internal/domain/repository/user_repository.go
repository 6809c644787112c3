package repository

import "github.com/gohanrv1/infotaxi-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y devuelve el id generado.
	Create(user *entity.User) (int64, error)
	// FindByCelular busca por celular sin importar el estado. nil si no existe.
	FindByCelular(celular string) (*entity.User, error)
	// FindActiveByCelular busca por celular solo entre usuarios activos. nil si no existe.
	FindActiveByCelular(celular string) (*entity.User, error)
	// ExistsByCelularOrUsername pre-chequeo de unicidad (activos e inactivos).
	ExistsByCelularOrUsername(celular, username string) (bool, error)
}

// QueryCounterRepository lleva el contador de consultas por usuario.
type QueryCounterRepository interface {
	// Increment suma 1 al contador del usuario, creando la fila si no existe.
	Increment(userID int64) error
	// Get devuelve el contador del usuario. nil si nunca ha consultado.
	Get(userID int64) (*entity.QueryCounter, error)
}
