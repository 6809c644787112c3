package dto

// RowDetail detalle de una fila fallida durante la importación.
// Fila es el número visible en el archivo (la fila 1 es el encabezado).
type RowDetail struct {
	Fila    int    `json:"fila"`
	Mensaje string `json:"mensaje"`
}

// ImportResultResponse resultado agregado de una importación masiva.
type ImportResultResponse struct {
	Message    string      `json:"message"`
	Total      int         `json:"total"`
	Insertados int         `json:"insertados"`
	Fallidos   int         `json:"fallidos"`
	Detalle    []RowDetail `json:"detalle_errores"`
}
