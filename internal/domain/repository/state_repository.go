package repository

import "github.com/gohanrv1/infotaxi-api/internal/domain/entity"

// StateRepository define el puerto de persistencia para ConversationState.
type StateRepository interface {
	// Get devuelve el estado de un celular. nil si no hay estado guardado.
	Get(celular string) (*entity.ConversationState, error)
	// Upsert inserta o reemplaza el estado del celular, refrescando Actualizado.
	Upsert(state *entity.ConversationState) error
	// Delete borra el estado para reiniciar la conversación.
	Delete(celular string) error
}

// TokenRepository define el puerto de persistencia para UploadToken.
// Un solo slot por celular: Upsert reemplaza cualquier token anterior.
type TokenRepository interface {
	Upsert(token *entity.UploadToken) error
	// FindByToken lectura directa por token. nil si no existe.
	FindByToken(token string) (*entity.UploadToken, error)
}
