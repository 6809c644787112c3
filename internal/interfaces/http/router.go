package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gohanrv1/infotaxi-api/internal/application/bulkload"
	"github.com/gohanrv1/infotaxi-api/internal/application/uploadtoken"
	"github.com/gohanrv1/infotaxi-api/internal/application/usecase"
	"github.com/gohanrv1/infotaxi-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC   *usecase.UserUseCase
	ReportUC *usecase.ReportUseCase
	StateUC  *usecase.StateUseCase
	TokenUC  *uploadtoken.UseCase
	Pipeline *bulkload.Pipeline
	UserRepo repository.UserRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.UserRepo)

	// Usuarios (público)
	userHandler := NewUserHandler(deps.UserUC)
	api.Post("/verificar-usuario", userHandler.Verify)
	api.Post("/usuarios", userHandler.Register)

	// Personas / reportes (protegido por header X-User-Celular)
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/personas/:cedula", auth, reportHandler.Lookup)
	api.Post("/personas", auth, reportHandler.Create)
	api.Put("/personas/:id", auth, reportHandler.Edit)

	// Importación masiva (protegido)
	importHandler := NewImportHandler(deps.Pipeline)
	api.Get("/plantilla-excel", auth, importHandler.Template)
	api.Post("/importar-excel", auth, importHandler.Import)

	// Flujo de carga con token
	tokenHandler := NewTokenHandler(deps.TokenUC, deps.Pipeline)
	api.Post("/generar-token-carga", auth, tokenHandler.Issue)
	api.Get("/plantilla-excel-token/:token", tokenHandler.Template)
	api.Post("/importar-excel-token/:token", tokenHandler.Import)
	app.Get("/carga-masiva/:token", tokenHandler.UploadPage)

	// Estado conversacional del bot (protegido)
	stateHandler := NewStateHandler(deps.StateUC)
	api.Get("/estado-usuario/:celular", auth, stateHandler.Get)
	api.Post("/estado-usuario", auth, stateHandler.Upsert)
	api.Put("/estado-usuario/:celular", auth, stateHandler.Upsert)
	api.Delete("/estado-usuario/:celular", auth, stateHandler.Delete)
}
