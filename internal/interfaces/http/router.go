package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventar/internal/application/export"
	"github.com/jhoicas/inventar/internal/application/form"
	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	Records       *appinventory.RecordRepository
	Table         *appinventory.TableRenderer
	Form          *form.Controller
	Export        *export.UseCase
	PreferencesUC *usecase.PreferencesUseCase
}

// Router registra la página y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	pageHandler := NewPageHandler(deps.AppName, deps.Records, deps.Table, deps.Form, deps.PreferencesUC)
	app.Get("/", pageHandler.Index)

	api := app.Group("/api")

	// Records
	records := api.Group("/records")
	recordHandler := NewRecordHandler(deps.Records, deps.Table)
	records.Get("/", recordHandler.List)
	records.Post("/", recordHandler.Upsert)
	records.Delete("/", recordHandler.Clear)
	records.Get("/:id", recordHandler.GetByID)
	records.Delete("/:id", recordHandler.Delete)

	// Export
	exports := api.Group("/export")
	exportHandler := NewExportHandler(deps.Export)
	exports.Get("/", exportHandler.HTML)
	exports.Get("/pdf", exportHandler.PDF)
	exports.Get("/xml", exportHandler.XML)

	// Modal de alta/edición
	forms := api.Group("/form")
	formHandler := NewFormHandler(deps.Form, deps.Records)
	forms.Get("/", formHandler.View)
	forms.Post("/new", formHandler.OpenNew)
	forms.Post("/edit/:id", formHandler.OpenExisting)
	forms.Post("/input", formHandler.Input)
	forms.Post("/submit", formHandler.Submit)
	forms.Post("/cancel", formHandler.Cancel)
	forms.Post("/delete", formHandler.PressDelete)
	forms.Post("/clear", formHandler.PressClearAll)

	// Preferencias
	prefs := api.Group("/preferences")
	prefsHandler := NewPreferencesHandler(deps.PreferencesUC)
	prefs.Get("/", prefsHandler.Get)
	prefs.Put("/", prefsHandler.Update)
	prefs.Post("/theme", prefsHandler.ToggleTheme)
	prefs.Post("/visited", prefsHandler.MarkVisited)
}
