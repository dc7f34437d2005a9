package export_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventar/internal/application/export"
	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func records() []entity.Record {
	return []entity.Record{
		{ID: "id-widget", ProductName: "Widget", SKU: dec("4"), UnitPrice: dec("2.5"), TotalPrice: dec("10")},
		{ID: "id-gadget", ProductName: "Gadget & co", SKU: dec("3"), UnitPrice: dec("0.1"), TotalPrice: dec("0.3")},
	}
}

func TestRenderExport_CabecerasFilasYTotal(t *testing.T) {
	html, err := export.RenderExport(records(), "Stoc <iunie>", export.DeviceDesktop, "RON")
	require.NoError(t, err)

	for _, h := range export.Headers() {
		assert.Contains(t, html, h)
	}
	assert.Contains(t, html, "Stoc &lt;iunie&gt;", "el título se escapa")
	assert.Contains(t, html, "Gadget &amp; co")
	assert.Contains(t, html, ">10.30<", "total de la fila TOTAL")
	assert.NotContains(t, html, "id-widget", "el id no se exporta")
	assert.Contains(t, html, "downloadPDF()")

	assert.Less(t, strings.Index(html, "Widget"), strings.Index(html, "Gadget"), "mantiene el orden de entrada")
}

func TestRenderExport_DispositivoSoloCambiaTamanos(t *testing.T) {
	desktop, err := export.RenderExport(records(), "T", export.DeviceDesktop, "RON")
	require.NoError(t, err)
	mobile, err := export.RenderExport(records(), "T", export.DeviceMobileTablet, "RON")
	require.NoError(t, err)

	assert.Contains(t, desktop, "font-size: 16px")
	assert.Contains(t, mobile, "font-size: 22px")

	strip := func(s string) string {
		for _, px := range []string{"12", "14", "16", "18", "20", "22", "24"} {
			s = strings.ReplaceAll(s, "font-size: "+px+"px", "font-size: Npx")
		}
		return s
	}
	assert.Equal(t, strip(desktop), strip(mobile))
}

func TestRenderExport_ListaVacia(t *testing.T) {
	html, err := export.RenderExport(nil, "Vacío", export.DeviceDesktop, "RON")
	require.NoError(t, err)
	assert.Contains(t, html, export.HeaderProductName)
	assert.Contains(t, html, ">0.00<")
}

// El total del export y el de la tabla en pantalla salen de la misma función.
func TestRenderExport_TotalCoincideConTabla(t *testing.T) {
	recs := records()
	doc := export.NewDocument(recs, "T", export.DeviceDesktop, "RON")
	assert.True(t, doc.Total.Equal(inventory.TotalOf(recs)))
	assert.Equal(t, inventory.TotalOf(recs).StringFixed(2), doc.TotalText())
}

func TestDeviceClassForWidth(t *testing.T) {
	assert.Equal(t, export.DeviceMobileTablet, export.DeviceClassForWidth(767))
	assert.Equal(t, export.DeviceDesktop, export.DeviceClassForWidth(768))
	assert.Equal(t, export.DeviceDesktop, export.ParseDeviceClass("tv"))
	assert.Equal(t, export.DeviceMobileTablet, export.ParseDeviceClass("mobile-tablet"))
}

func TestTranslateHeader(t *testing.T) {
	assert.Equal(t, "Cantitate", export.TranslateHeader("sku"))
	assert.Equal(t, "Title", export.TranslateHeader("id"))
}
