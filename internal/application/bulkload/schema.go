package bulkload

import (
	"fmt"
	"strings"
)

// Field identifica una columna lógica del reporte, independiente del nombre
// que lleve en la plantilla de cada variante.
type Field string

const (
	FieldDocumento        Field = "documento"
	FieldNombres          Field = "nombres"
	FieldApellidos        Field = "apellidos"
	FieldPlaca            Field = "placa"
	FieldValor            Field = "valor"
	FieldDescripcion      Field = "descripcion"
	FieldFechaInicio      Field = "fecha_inicio"
	FieldVehiculoAfiliado Field = "vehiculo_afiliado"
)

// Column describe una columna de la plantilla: nombre visible, campo lógico,
// valor de ejemplo para la fila 2 y ancho sugerido.
type Column struct {
	Name    string
	Field   Field
	Example string
	Width   float64
}

// Schema define una variante de plantilla: columnas ordenadas y el subconjunto
// obligatorio que debe existir en el encabezado para aceptar el archivo.
type Schema struct {
	Sheet    string
	Columns  []Column
	Required []string
}

// SchemaPlano es la variante del endpoint autenticado por header.
var SchemaPlano = Schema{
	Sheet: "Plantilla Reportes",
	Columns: []Column{
		{Name: "Numero_Documento", Field: FieldDocumento, Example: "1234567890", Width: 20},
		{Name: "Nombres", Field: FieldNombres, Example: "JUAN", Width: 18},
		{Name: "Apellidos", Field: FieldApellidos, Example: "PEREZ GOMEZ", Width: 18},
		{Name: "Placa", Field: FieldPlaca, Example: "ABC123", Width: 12},
		{Name: "Valor_Reporte", Field: FieldValor, Example: "50000", Width: 15},
		{Name: "Descripcion_Reporte", Field: FieldDescripcion, Example: "REPORTE NEGATIVO POR TARIFAS", Width: 35},
	},
	Required: []string{"Numero_Documento", "Nombres", "Apellidos", "Placa"},
}

// SchemaToken es la variante del flujo de carga con token.
var SchemaToken = Schema{
	Sheet: "Plantilla Conductores",
	Columns: []Column{
		{Name: "Documento Conductor", Field: FieldDocumento, Example: "1234567890", Width: 20},
		{Name: "Nombre Conductor", Field: FieldNombres, Example: "JUAN", Width: 18},
		{Name: "Apellidos Conductor", Field: FieldApellidos, Example: "PEREZ GOMEZ", Width: 20},
		{Name: "Fecha Inicio Reporte", Field: FieldFechaInicio, Example: "2024-01-15", Width: 20},
		{Name: "Placa Vehiculo", Field: FieldPlaca, Example: "ABC123", Width: 15},
		{Name: "Valor del Reporte", Field: FieldValor, Example: "50000", Width: 17},
		{Name: "Descripcion del Reporte", Field: FieldDescripcion, Example: "REPORTE NEGATIVO POR TARIFAS", Width: 35},
		{Name: "Vehiculo Afiliado", Field: FieldVehiculoAfiliado, Example: "ADMICARS", Width: 17},
	},
	Required: []string{"Documento Conductor", "Nombre Conductor", "Apellidos Conductor", "Placa Vehiculo"},
}

// ColumnFor devuelve el nombre de columna de esta variante para un campo lógico.
func (s Schema) ColumnFor(f Field) (string, bool) {
	for _, c := range s.Columns {
		if c.Field == f {
			return c.Name, true
		}
	}
	return "", false
}

// ValidateHeader verifica que todas las columnas obligatorias estén en el encabezado.
func (s Schema) ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, req := range s.Required {
		if !present[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("columnas requeridas: %s", strings.Join(s.Required, ", "))
	}
	return nil
}

// Row es una fila ya parseada: nombre de columna -> valor de celda crudo.
type Row map[string]string

// Get devuelve el valor recortado de un campo lógico según la variante.
func (r Row) Get(s Schema, f Field) string {
	name, ok := s.ColumnFor(f)
	if !ok {
		return ""
	}
	return strings.TrimSpace(r[name])
}
