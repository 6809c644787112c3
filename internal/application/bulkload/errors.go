package bulkload

import "errors"

// Motivos de rechazo por fila. El texto llega tal cual al detalle del resultado.
var (
	errMandatoryEmpty = errors.New("campos obligatorios vacíos (documento, nombres, apellidos)")
	errValorInvalido  = errors.New("valor del reporte no es numérico")
	errFechaInvalida  = errors.New("fecha de inicio inválida (use AAAA-MM-DD)")
)
