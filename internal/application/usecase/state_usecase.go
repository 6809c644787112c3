package usecase

import (
	"fmt"
	"time"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// StateUseCase estado conversacional del bot de mensajería, por celular.
type StateUseCase struct {
	repo repository.StateRepository
	now  func() time.Time
}

// NewStateUseCase construye el caso de uso.
func NewStateUseCase(repo repository.StateRepository) *StateUseCase {
	return &StateUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *StateUseCase) WithClock(now func() time.Time) *StateUseCase {
	uc.now = now
	return uc
}

// Get devuelve el estado actual de un celular.
func (uc *StateUseCase) Get(celular string) (*dto.StateResponse, error) {
	state, err := uc.repo.Get(celular)
	if err != nil {
		return nil, fmt.Errorf("consultar estado: %w", err)
	}
	if state == nil {
		return nil, domain.ErrNotFound
	}
	return toStateResponse(state), nil
}

// Upsert crea o reemplaza el estado del celular, refrescando la marca de tiempo.
func (uc *StateUseCase) Upsert(in dto.UpsertStateRequest) (*dto.StateResponse, error) {
	state := &entity.ConversationState{
		Celular:     in.Celular,
		Estado:      in.Estado,
		Opcion:      in.Opcion,
		Actualizado: uc.now(),
	}
	if err := uc.repo.Upsert(state); err != nil {
		return nil, fmt.Errorf("guardar estado: %w", err)
	}
	return toStateResponse(state), nil
}

// Delete borra el estado del celular para reiniciar la conversación.
func (uc *StateUseCase) Delete(celular string) error {
	if err := uc.repo.Delete(celular); err != nil {
		return fmt.Errorf("borrar estado: %w", err)
	}
	return nil
}

func toStateResponse(s *entity.ConversationState) *dto.StateResponse {
	return &dto.StateResponse{
		Celular:     s.Celular,
		Estado:      s.Estado,
		Opcion:      s.Opcion,
		Actualizado: s.Actualizado.Format(time.RFC3339),
	}
}
