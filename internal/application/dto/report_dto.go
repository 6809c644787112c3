package dto

import "github.com/shopspring/decimal"

// CreateReportRequest entrada para crear un reporte individual.
type CreateReportRequest struct {
	NumeroDocumento  string          `json:"numero_documento" validate:"required"`
	Nombres          string          `json:"nombres" validate:"required"`
	Apellidos        string          `json:"apellidos" validate:"required"`
	Placa            string          `json:"placa" validate:"required"`
	ValorReporte     decimal.Decimal `json:"valor_reporte"`
	Descripcion      string          `json:"descripcion"`
	VehiculoAfiliado string          `json:"vehiculo_afiliado"`
	Estado           string          `json:"estado"`
}

// CreateReportResponse salida de la creación con el id generado.
type CreateReportResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ReportResponse salida de un reporte.
type ReportResponse struct {
	ID               int64           `json:"id"`
	FechaReporte     string          `json:"fecha_reporte"`
	NumeroDocumento  string          `json:"numero_documento"`
	Nombres          string          `json:"nombres"`
	Apellidos        string          `json:"apellidos"`
	FechaCierre      *string         `json:"fecha_cierre"`
	Placa            string          `json:"placa"`
	ValorReporte     decimal.Decimal `json:"valor_reporte"`
	Descripcion      string          `json:"descripcion"`
	VehiculoAfiliado string          `json:"vehiculo_afiliado"`
	Estado           string          `json:"estado"`
}

// LookupReportsResponse salida de la consulta por cédula.
type LookupReportsResponse struct {
	Found         bool             `json:"found"`
	TotalReportes int              `json:"total_reportes,omitempty"`
	Reportes      []ReportResponse `json:"reportes,omitempty"`
	Message       string           `json:"message,omitempty"`
}
