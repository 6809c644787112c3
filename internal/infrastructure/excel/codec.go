package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/bulkload"
)

// Errores del codec, mapeados a 400 en el handler.
var (
	ErrExtension  = errors.New("formato no válido, use .xlsx o .xls")
	ErrEmptyFile  = errors.New("archivo vacío")
	ErrUnreadable = errors.New("no fue posible procesar el archivo")
)

// headerFillColor color de relleno del encabezado de las plantillas.
const headerFillColor = "4472C4"

// ValidExtension verifica que el nombre del archivo termine en .xlsx o .xls.
func ValidExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls")
}

// BuildTemplate genera la plantilla de una variante: encabezado con estilo,
// una fila de ejemplo y anchos de columna predefinidos.
func BuildTemplate(schema bulkload.Schema) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := schema.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de encabezado: %w", err)
	}

	for i, col := range schema.Columns {
		headerCell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, headerCell, col.Name); err != nil {
			return nil, fmt.Errorf("columna %s: %w", col.Name, err)
		}
		exampleCell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, exampleCell, col.Example); err != nil {
			return nil, fmt.Errorf("ejemplo %s: %w", col.Name, err)
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
			return nil, fmt.Errorf("ancho %s: %w", col.Name, err)
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(schema.Columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("aplicar estilo: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseUpload lee un archivo subido y lo convierte en filas para el pipeline.
// Valida extensión y presencia de las columnas obligatorias de la variante.
func ParseUpload(filename string, r io.Reader, schema bulkload.Schema) ([]bulkload.Row, error) {
	if filename == "" {
		return nil, ErrEmptyFile
	}
	if !ValidExtension(filename) {
		return nil, ErrExtension
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrUnreadable
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrUnreadable
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrUnreadable
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	header := rows[0]
	if err := schema.ValidateHeader(header); err != nil {
		return nil, err
	}

	var parsed []bulkload.Row
	for _, cells := range rows[1:] {
		if allBlank(cells) {
			continue
		}
		row := make(bulkload.Row, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		parsed = append(parsed, row)
	}
	return parsed, nil
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
