package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de un reporte cuando la fuente no los trae.
const (
	DefaultVehiculoAfiliado = "ADMICARS"
	DefaultEstado           = "ACTIVA"
)

// Report es un reporte ("persona") contra un sujeto identificado por cédula.
// NumeroDocumento no es único: un mismo sujeto puede acumular reportes en el tiempo.
type Report struct {
	ID               int64
	FechaReporte     time.Time
	NumeroDocumento  string
	Nombres          string
	Apellidos        string
	FechaCierre      *time.Time
	Placa            string
	ValorReporte     decimal.Decimal
	Descripcion      string
	VehiculoAfiliado string
	Estado           string
	ReportanteID     string // id del usuario creador, almacenado como texto
}
