package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventar/internal/application/form"
	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/application/usecase"
	"github.com/jhoicas/inventar/internal/domain/entity"
)

// EmptyMessage texto que reemplaza a la tabla cuando no hay productos.
const EmptyMessage = "Nu există produse în inventar."

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	AppName      string
	Query        string
	EmptyMessage string
	Table        appinventory.TableView
	Form         form.View
	Preferences  entity.Preferences
}

// PageHandler renderiza la página principal: tabla (o mensaje vacío), buscador y modal.
type PageHandler struct {
	appName string
	repo    *appinventory.RecordRepository
	table   *appinventory.TableRenderer
	ctrl    *form.Controller
	prefs   *usecase.PreferencesUseCase
}

// NewPageHandler construye el handler.
func NewPageHandler(appName string, repo *appinventory.RecordRepository, table *appinventory.TableRenderer, ctrl *form.Controller, prefs *usecase.PreferencesUseCase) *PageHandler {
	return &PageHandler{appName: appName, repo: repo, table: table, ctrl: ctrl, prefs: prefs}
}

// Index GET /
func (h *PageHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	q := c.Query("q")

	records, err := h.repo.Filter(ctx, q)
	if err != nil {
		return writeError(c, err)
	}
	prefs, err := h.prefs.Get(ctx, c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	err = indexTemplate.Execute(&buf, indexPage{
		AppName:      h.appName,
		Query:        q,
		EmptyMessage: EmptyMessage,
		Table:        h.table.Render(records),
		Form:         h.ctrl.View(),
		Preferences:  prefs,
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
