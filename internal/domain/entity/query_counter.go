package entity

// QueryCounter acumula las consultas de cédulas realizadas por un usuario.
type QueryCounter struct {
	ID     int64
	UserID int64
	Count  int64
}
