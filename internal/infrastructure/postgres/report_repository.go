package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gohanrv1/infotaxi-api/internal/domain/entity"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de persistencia para reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Create inserta un reporte y devuelve el id generado. Sin transacción
// envolvente: cada fila de una importación confirma por separado.
func (r *ReportRepo) Create(report *entity.Report) (int64, error) {
	query := `
		INSERT INTO personas (
			fecha_reporte, numero_documento, nombres, apellidos, fecha_cierre,
			placa, valor_reporte, descripcion_reporte, vehiculo_afiliado, estado, reportante_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		report.FechaReporte, report.NumeroDocumento, report.Nombres, report.Apellidos,
		report.FechaCierre, report.Placa, report.ValorReporte, report.Descripcion,
		report.VehiculoAfiliado, report.Estado, report.ReportanteID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert persona: %w", err)
	}
	return id, nil
}

// GetByID obtiene un reporte por id.
func (r *ReportRepo) GetByID(id int64) (*entity.Report, error) {
	query := selectReport + ` WHERE id = $1`
	var rep entity.Report
	err := r.pool.QueryRow(context.Background(), query, id).Scan(scanTargets(&rep)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return &rep, nil
}

// ListByDocumento lista los reportes de una cédula, más recientes primero.
func (r *ReportRepo) ListByDocumento(numeroDocumento string) ([]*entity.Report, error) {
	query := selectReport + ` WHERE numero_documento = $1 ORDER BY fecha_reporte DESC`
	rows, err := r.pool.Query(context.Background(), query, numeroDocumento)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(scanTargets(&rep)...); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// UpdateFields arma el UPDATE dinámico con las columnas ya resueltas por el
// caso de uso. Las claves son nombres de columna canónicos, nunca entrada cruda.
func (r *ReportRepo) UpdateFields(id int64, fields map[string]any) error {
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	args = append(args, id)
	for col, val := range fields {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	query := fmt.Sprintf("UPDATE personas SET %s WHERE id = $1", strings.Join(sets, ", "))
	if _, err := r.pool.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	return nil
}

const selectReport = `
	SELECT id, fecha_reporte, numero_documento, nombres, apellidos, fecha_cierre,
	       placa, valor_reporte, descripcion_reporte, vehiculo_afiliado, estado, reportante_id
	FROM personas`

func scanTargets(rep *entity.Report) []any {
	return []any{
		&rep.ID, &rep.FechaReporte, &rep.NumeroDocumento, &rep.Nombres, &rep.Apellidos,
		&rep.FechaCierre, &rep.Placa, &rep.ValorReporte, &rep.Descripcion,
		&rep.VehiculoAfiliado, &rep.Estado, &rep.ReportanteID,
	}
}
