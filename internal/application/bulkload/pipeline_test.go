package bulkload_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohanrv1/infotaxi-api/internal/application/bulkload"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
)

// fakeReportRepo repositorio en memoria para el pipeline.
type fakeReportRepo struct {
	created []*entity.Report
	failOn  func(r *entity.Report) error
}

func (f *fakeReportRepo) Create(r *entity.Report) (int64, error) {
	if f.failOn != nil {
		if err := f.failOn(r); err != nil {
			return 0, err
		}
	}
	f.created = append(f.created, r)
	return int64(len(f.created)), nil
}

func (f *fakeReportRepo) GetByID(int64) (*entity.Report, error)            { return nil, nil }
func (f *fakeReportRepo) ListByDocumento(string) ([]*entity.Report, error) { return nil, nil }
func (f *fakeReportRepo) UpdateFields(int64, map[string]any) error         { return nil }

// rowPlano arma una fila con los nombres de columna de la variante plana.
func rowPlano(doc, nombres, apellidos, placa, valor, descripcion string) bulkload.Row {
	return bulkload.Row{
		"Numero_Documento":    doc,
		"Nombres":             nombres,
		"Apellidos":           apellidos,
		"Placa":               placa,
		"Valor_Reporte":       valor,
		"Descripcion_Reporte": descripcion,
	}
}

func TestPipeline_FilaValidaInsertaConDefaults(t *testing.T) {
	repo := &fakeReportRepo{}
	fixed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	p := bulkload.NewPipeline(repo, 10).WithClock(func() time.Time { return fixed })

	res := p.Run([]bulkload.Row{
		rowPlano("1234567890", "JUAN", "PEREZ", "ABC123", "50000", "REPORTE NEGATIVO"),
	}, bulkload.SchemaPlano, "7")

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.Insertados)
	assert.Equal(t, 0, res.Fallidos)
	assert.Empty(t, res.Detalle)

	require.Len(t, repo.created, 1)
	r := repo.created[0]
	assert.Equal(t, "1234567890", r.NumeroDocumento)
	assert.Equal(t, "ADMICARS", r.VehiculoAfiliado, "vehículo afiliado por defecto")
	assert.Equal(t, "ACTIVA", r.Estado, "estado por defecto")
	assert.Equal(t, fixed, r.FechaReporte, "fecha por defecto = ahora")
	assert.Equal(t, "7", r.ReportanteID)
	assert.True(t, r.ValorReporte.Equal(decimal.NewFromInt(50000)))
}

func TestPipeline_ObligatoriosVacios_RechazaSinInsertar(t *testing.T) {
	repo := &fakeReportRepo{}
	p := bulkload.NewPipeline(repo, 10)

	res := p.Run([]bulkload.Row{
		rowPlano("", "JUAN", "PEREZ", "ABC123", "0", ""),     // sin documento
		rowPlano("111", "", "PEREZ", "ABC123", "0", ""),      // sin nombres
		rowPlano("222", "ANA", "", "ABC123", "0", ""),        // sin apellidos
		rowPlano("333", "LUIS", "DIAZ", "XYZ789", "1000", ""), // válida
	}, bulkload.SchemaPlano, "1")

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, res.Insertados)
	assert.Equal(t, 3, res.Fallidos)
	require.Len(t, repo.created, 1, "solo la fila válida se persiste")

	// La fila 1 del archivo es el encabezado: la primera de datos es la 2.
	require.Len(t, res.Detalle, 3)
	assert.Equal(t, 2, res.Detalle[0].Fila)
	assert.Equal(t, 3, res.Detalle[1].Fila)
	assert.Equal(t, 4, res.Detalle[2].Fila)
	assert.Contains(t, res.Detalle[0].Mensaje, "obligatorios")
}

func TestPipeline_ValorNoNumerico_Rechaza(t *testing.T) {
	repo := &fakeReportRepo{}
	p := bulkload.NewPipeline(repo, 10)

	res := p.Run([]bulkload.Row{
		rowPlano("111", "JUAN", "PEREZ", "ABC123", "cincuenta mil", ""),
	}, bulkload.SchemaPlano, "1")

	assert.Equal(t, 1, res.Fallidos)
	assert.Empty(t, repo.created)
	assert.Contains(t, res.Detalle[0].Mensaje, "numérico")
}

func TestPipeline_ErrorDeInsercion_ContinuaConLasDemas(t *testing.T) {
	repo := &fakeReportRepo{
		failOn: func(r *entity.Report) error {
			if r.NumeroDocumento == "222" {
				return errors.New("violación de constraint")
			}
			return nil
		},
	}
	p := bulkload.NewPipeline(repo, 10)

	res := p.Run([]bulkload.Row{
		rowPlano("111", "A", "B", "P1", "0", ""),
		rowPlano("222", "C", "D", "P2", "0", ""),
		rowPlano("333", "E", "F", "P3", "0", ""),
	}, bulkload.SchemaPlano, "1")

	assert.Equal(t, 2, res.Insertados)
	assert.Equal(t, 1, res.Fallidos)
	require.Len(t, res.Detalle, 1)
	assert.Equal(t, 3, res.Detalle[0].Fila)
	assert.Contains(t, res.Detalle[0].Mensaje, "constraint")
}

func TestPipeline_DetalleAcotado_FallidosCompletos(t *testing.T) {
	repo := &fakeReportRepo{}
	p := bulkload.NewPipeline(repo, 3)

	rows := make([]bulkload.Row, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, rowPlano("", "", "", "", "", "")) // todas inválidas
	}
	res := p.Run(rows, bulkload.SchemaPlano, "1")

	assert.Equal(t, 8, res.Fallidos, "fallidos cuenta todas las filas rechazadas")
	assert.Len(t, res.Detalle, 3, "el detalle se acota al tope configurado")
}

func TestPipeline_Reimportar_DuplicaSinDeduplicar(t *testing.T) {
	repo := &fakeReportRepo{}
	p := bulkload.NewPipeline(repo, 10)
	rows := []bulkload.Row{rowPlano("123", "JUAN", "PEREZ", "ABC123", "100", "")}

	res1 := p.Run(rows, bulkload.SchemaPlano, "1")
	res2 := p.Run(rows, bulkload.SchemaPlano, "1")

	assert.Equal(t, 1, res1.Insertados)
	assert.Equal(t, 1, res2.Insertados)
	assert.Len(t, repo.created, 2, "reimportar el mismo archivo duplica los reportes")
}

func TestPipeline_VarianteToken_FechaYAfiliado(t *testing.T) {
	repo := &fakeReportRepo{}
	p := bulkload.NewPipeline(repo, 10)

	res := p.Run([]bulkload.Row{
		{
			"Documento Conductor":     "999",
			"Nombre Conductor":        "MARIA",
			"Apellidos Conductor":     "LOPEZ",
			"Fecha Inicio Reporte":    "2024-01-15",
			"Placa Vehiculo":          "QWE456",
			"Valor del Reporte":       "75000.50",
			"Descripcion del Reporte": "REPORTE POR TARIFAS",
			"Vehiculo Afiliado":       "COOTAXI",
		},
		{
			"Documento Conductor":  "888",
			"Nombre Conductor":     "PEDRO",
			"Apellidos Conductor":  "RUIZ",
			"Fecha Inicio Reporte": "no-es-fecha",
		},
	}, bulkload.SchemaToken, "4")

	assert.Equal(t, 1, res.Insertados)
	assert.Equal(t, 1, res.Fallidos)
	require.Len(t, repo.created, 1)

	r := repo.created[0]
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), r.FechaReporte)
	assert.Equal(t, "COOTAXI", r.VehiculoAfiliado, "el afiliado de la celda gana al default")
	assert.True(t, r.ValorReporte.Equal(decimal.RequireFromString("75000.50")))
	assert.Contains(t, res.Detalle[0].Mensaje, "fecha")
}

func TestSchema_ValidateHeader(t *testing.T) {
	completo := []string{"Numero_Documento", "Nombres", "Apellidos", "Placa", "Valor_Reporte", "Descripcion_Reporte"}
	assert.NoError(t, bulkload.SchemaPlano.ValidateHeader(completo))

	sinPlaca := []string{"Numero_Documento", "Nombres", "Apellidos", "Valor_Reporte"}
	err := bulkload.SchemaPlano.ValidateHeader(sinPlaca)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Placa")

	// Columnas opcionales ausentes no invalidan el archivo.
	soloObligatorias := []string{"Numero_Documento", "Nombres", "Apellidos", "Placa"}
	assert.NoError(t, bulkload.SchemaPlano.ValidateHeader(soloObligatorias))
}
