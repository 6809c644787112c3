package entity

import "time"

// UploadToken autoriza una carga masiva sin autenticación por header, acotada en el tiempo.
// Hay un único slot por celular: una nueva emisión reemplaza al token anterior.
type UploadToken struct {
	Celular string
	Token   string
	Expira  time.Time
	Creado  time.Time
}

// Vigente indica si el token sigue siendo válido en el instante dado.
func (t UploadToken) Vigente(now time.Time) bool {
	return !now.After(t.Expira)
}
