package dto

// UpsertStateRequest entrada para crear o actualizar el estado de conversación.
type UpsertStateRequest struct {
	Celular string `json:"celular" validate:"required"`
	Estado  string `json:"estado" validate:"required"`
	Opcion  int    `json:"opcion"`
}

// StateResponse salida del estado de conversación de un celular.
type StateResponse struct {
	Celular     string `json:"celular"`
	Estado      string `json:"estado"`
	Opcion      int    `json:"opcion"`
	Actualizado string `json:"actualizado"`
}
