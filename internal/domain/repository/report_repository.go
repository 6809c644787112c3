package repository

import "github.com/gohanrv1/infotaxi-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report.
type ReportRepository interface {
	// Create inserta un reporte y devuelve el id generado. Cada inserción es
	// su propia unidad atómica: la importación masiva confirma fila a fila.
	Create(report *entity.Report) (int64, error)
	// GetByID obtiene un reporte por id. nil si no existe.
	GetByID(id int64) (*entity.Report, error)
	// ListByDocumento lista los reportes de una cédula, más recientes primero.
	ListByDocumento(numeroDocumento string) ([]*entity.Report, error)
	// UpdateFields actualiza columnas ya resueltas por el caso de uso
	// (clave = nombre de columna canónico).
	UpdateFields(id int64, fields map[string]any) error
}
