package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventar/internal/application/export"
	"github.com/jhoicas/inventar/internal/infrastructure/metrics"
)

// ExportHandler sirve los exports del inventario.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// exportRequest lee title, q y la clase de dispositivo: device explícito o, si no, width en px.
func exportRequest(c *fiber.Ctx) export.Request {
	device := export.DeviceDesktop
	if d := c.Query("device"); d != "" {
		device = export.ParseDeviceClass(d)
	} else if w := c.QueryInt("width", 0); w > 0 {
		device = export.DeviceClassForWidth(w)
	}
	return export.Request{Title: c.Query("title"), Device: device, Query: c.Query("q")}
}

// HTML godoc
// @Summary      Export imprimible (HTML + script de captura a PDF)
// @Tags         export
// @Produce      html
// @Param        title   query  string  false  "Título"
// @Param        device  query  string  false  "mobile-tablet | desktop"
// @Param        width   query  int     false  "Ancho de pantalla en px (si no se envía device)"
// @Param        q       query  string  false  "Exportar solo lo que coincide con la búsqueda"
// @Success      200  {string}  string
// @Router       /api/export [get]
func (h *ExportHandler) HTML(c *fiber.Ctx) error {
	out, err := h.uc.HTML(c.UserContext(), exportRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	metrics.ExportsTotal.WithLabelValues("html").Inc()
	c.Type("html", "utf-8")
	return c.SendString(out)
}

// PDF godoc
// @Summary      Export PDF generado en el servidor
// @Tags         export
// @Produce      application/pdf
// @Param        title   query  string  false  "Título"
// @Param        device  query  string  false  "mobile-tablet | desktop"
// @Param        q       query  string  false  "Búsqueda"
// @Success      200  {file}  binary
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	b, name, err := h.uc.PDF(c.UserContext(), exportRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	metrics.ExportsTotal.WithLabelValues("pdf").Inc()
	return sendAttachment(c, "application/pdf", name, b)
}

// XML godoc
// @Summary      Export como hoja de cálculo XML (SpreadsheetML)
// @Tags         export
// @Produce      application/xml
// @Param        title   query  string  false  "Título"
// @Param        q       query  string  false  "Búsqueda"
// @Success      200  {file}  binary
// @Router       /api/export/xml [get]
func (h *ExportHandler) XML(c *fiber.Ctx) error {
	b, name, err := h.uc.Sheet(c.UserContext(), export.Request{Title: c.Query("title"), Query: c.Query("q")})
	if err != nil {
		return writeError(c, err)
	}
	metrics.ExportsTotal.WithLabelValues("xml").Inc()
	return sendAttachment(c, "application/vnd.ms-excel", name, b)
}

func sendAttachment(c *fiber.Ctx, contentType, name string, b []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(b)
}
