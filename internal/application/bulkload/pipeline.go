package bulkload

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// headerOffset convierte el índice de fila de datos (base 0) al número visible
// en el archivo: la fila 1 es el encabezado, los datos empiezan en la 2.
const headerOffset = 2

// RowError describe el fallo de una fila concreta.
type RowError struct {
	Fila    int
	Mensaje string
}

// Result agrega el desenlace de una importación. Fallidos cuenta todas las
// filas rechazadas aunque Detalle esté acotado.
type Result struct {
	Total      int
	Insertados int
	Fallidos   int
	Detalle    []RowError
}

// Pipeline inserta filas parseadas como reportes, tolerando fallos por fila.
// Cada inserción confirma por sí sola: un fallo no revierte las filas previas.
type Pipeline struct {
	reports    repository.ReportRepository
	maxDetails int
	now        func() time.Time
}

// NewPipeline construye el pipeline. maxDetails acota la lista de errores
// detallados del resultado (<=0 usa 10).
func NewPipeline(reports repository.ReportRepository, maxDetails int) *Pipeline {
	if maxDetails <= 0 {
		maxDetails = 10
	}
	return &Pipeline{reports: reports, maxDetails: maxDetails, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run procesa las filas en orden. reportanteID es el id del usuario que importa,
// registrado como creador de cada reporte.
func (p *Pipeline) Run(rows []Row, schema Schema, reportanteID string) *Result {
	res := &Result{Total: len(rows)}

	for i, row := range rows {
		fila := i + headerOffset

		report, err := p.buildReport(row, schema, reportanteID)
		if err == nil {
			_, err = p.reports.Create(report)
		}
		if err != nil {
			res.Fallidos++
			if len(res.Detalle) < p.maxDetails {
				res.Detalle = append(res.Detalle, RowError{Fila: fila, Mensaje: err.Error()})
			}
			continue
		}
		res.Insertados++
	}
	return res
}

// buildReport arma la entidad desde la fila, aplicando los valores por defecto
// para las columnas opcionales ausentes.
func (p *Pipeline) buildReport(row Row, schema Schema, reportanteID string) (*entity.Report, error) {
	documento := row.Get(schema, FieldDocumento)
	nombres := row.Get(schema, FieldNombres)
	apellidos := row.Get(schema, FieldApellidos)
	if documento == "" || nombres == "" || apellidos == "" {
		return nil, errMandatoryEmpty
	}

	valor := decimal.Zero
	if raw := row.Get(schema, FieldValor); raw != "" {
		var err error
		valor, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, errValorInvalido
		}
	}

	fecha := p.now()
	if raw := row.Get(schema, FieldFechaInicio); raw != "" {
		parsed, err := parseFecha(raw)
		if err != nil {
			return nil, errFechaInvalida
		}
		fecha = parsed
	}

	afiliado := row.Get(schema, FieldVehiculoAfiliado)
	if afiliado == "" {
		afiliado = entity.DefaultVehiculoAfiliado
	}

	return &entity.Report{
		FechaReporte:     fecha,
		NumeroDocumento:  documento,
		Nombres:          nombres,
		Apellidos:        apellidos,
		Placa:            row.Get(schema, FieldPlaca),
		ValorReporte:     valor,
		Descripcion:      row.Get(schema, FieldDescripcion),
		VehiculoAfiliado: afiliado,
		Estado:           entity.DefaultEstado,
		ReportanteID:     reportanteID,
	}, nil
}

// fechaLayouts formatos aceptados para Fecha Inicio Reporte.
var fechaLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"}

func parseFecha(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range fechaLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
