package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gohanrv1/infotaxi-api/internal/application/dto"
	"github.com/gohanrv1/infotaxi-api/internal/domain"
	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// editableColumns columnas de personas que el endpoint de edición acepta.
// La clave es la forma normalizada (minúsculas, sin guiones bajos) con la que
// se comparan los campos que envíe el cliente, en cualquier variante de escritura.
var editableColumns = map[string]string{
	"nombres":            "nombres",
	"apellidos":          "apellidos",
	"placa":              "placa",
	"valorreporte":       "valor_reporte",
	"descripcionreporte": "descripcion_reporte",
	"descripcion":        "descripcion_reporte",
	"estado":             "estado",
	"fechacierre":        "fecha_cierre",
}

// ReportUseCase consulta, creación y edición de reportes.
type ReportUseCase struct {
	reports  repository.ReportRepository
	counters repository.QueryCounterRepository
	// countMisses controla si una consulta sin resultados también suma al contador.
	countMisses bool
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, counters repository.QueryCounterRepository, countMisses bool) *ReportUseCase {
	return &ReportUseCase{reports: reports, counters: counters, countMisses: countMisses, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// Lookup lista los reportes de una cédula, más recientes primero, y suma la
// consulta al contador del usuario cuando hay resultados.
func (uc *ReportUseCase) Lookup(cedula string, userID int64) (*dto.LookupReportsResponse, error) {
	reports, err := uc.reports.ListByDocumento(cedula)
	if err != nil {
		return nil, fmt.Errorf("consultar reportes: %w", err)
	}
	if len(reports) == 0 {
		if uc.countMisses {
			if err := uc.counters.Increment(userID); err != nil {
				return nil, fmt.Errorf("contador de consultas: %w", err)
			}
		}
		return &dto.LookupReportsResponse{Found: false, Message: "No se encontraron reportes para esta cédula"}, nil
	}

	if err := uc.counters.Increment(userID); err != nil {
		return nil, fmt.Errorf("contador de consultas: %w", err)
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toReportResponse(r))
	}
	return &dto.LookupReportsResponse{Found: true, TotalReportes: len(out), Reportes: out}, nil
}

// Create crea un reporte individual. Nombres, apellidos y placa se guardan en mayúsculas.
func (uc *ReportUseCase) Create(reportanteID int64, in dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	afiliado := in.VehiculoAfiliado
	if afiliado == "" {
		afiliado = entity.DefaultVehiculoAfiliado
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.DefaultEstado
	}

	report := &entity.Report{
		FechaReporte:     uc.now(),
		NumeroDocumento:  in.NumeroDocumento,
		Nombres:          strings.ToUpper(in.Nombres),
		Apellidos:        strings.ToUpper(in.Apellidos),
		Placa:            strings.ToUpper(in.Placa),
		ValorReporte:     in.ValorReporte,
		Descripcion:      in.Descripcion,
		VehiculoAfiliado: afiliado,
		Estado:           estado,
		ReportanteID:     strconv.FormatInt(reportanteID, 10),
	}
	id, err := uc.reports.Create(report)
	if err != nil {
		return nil, err
	}
	return &dto.CreateReportResponse{ID: id, Message: "Reporte creado exitosamente"}, nil
}

// Edit actualiza un reporte. Solo el creador o un admin pueden hacerlo, y solo
// sobre la lista blanca de columnas; los nombres de campo del cliente se aceptan
// en cualquier combinación de mayúsculas y guiones bajos.
func (uc *ReportUseCase) Edit(id int64, callerID int64, callerRol string, in map[string]any) error {
	report, err := uc.reports.GetByID(id)
	if err != nil {
		return fmt.Errorf("buscar reporte: %w", err)
	}
	if report == nil {
		return domain.ErrNotFound
	}

	esAdmin := callerRol == entity.RoleAdmin
	esCreador := report.ReportanteID == strconv.FormatInt(callerID, 10)
	if !esAdmin && !esCreador {
		return domain.ErrForbidden
	}

	fields := make(map[string]any)
	for key, value := range in {
		if col, ok := editableColumns[normalizeKey(key)]; ok {
			fields[col] = value
		}
	}
	if len(fields) == 0 {
		return domain.ErrNoFields
	}

	if err := uc.reports.UpdateFields(id, fields); err != nil {
		return fmt.Errorf("actualizar reporte: %w", err)
	}
	return nil
}

// normalizeKey minúsculas y sin guiones bajos, para comparar nombres de campo.
func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(k), "_", "")
}

func toReportResponse(r *entity.Report) dto.ReportResponse {
	var cierre *string
	if r.FechaCierre != nil {
		s := r.FechaCierre.Format("2006-01-02")
		cierre = &s
	}
	return dto.ReportResponse{
		ID:               r.ID,
		FechaReporte:     r.FechaReporte.Format("2006-01-02"),
		NumeroDocumento:  r.NumeroDocumento,
		Nombres:          r.Nombres,
		Apellidos:        r.Apellidos,
		FechaCierre:      cierre,
		Placa:            r.Placa,
		ValorReporte:     r.ValorReporte,
		Descripcion:      r.Descripcion,
		VehiculoAfiliado: r.VehiculoAfiliado,
		Estado:           r.Estado,
	}
}
