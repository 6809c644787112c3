package entity

import "time"

// ConversationState guarda la posición de diálogo del bot de mensajería para un celular.
type ConversationState struct {
	Celular     string
	Estado      string
	Opcion      int
	Actualizado time.Time
}
