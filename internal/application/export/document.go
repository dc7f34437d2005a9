package export

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
)

// DeviceClass clase de dispositivo para el export; solo cambia tamaños de fuente.
type DeviceClass string

const (
	DeviceMobileTablet DeviceClass = "mobile-tablet"
	DeviceDesktop      DeviceClass = "desktop"

	// TabletWidthThreshold ancho (px) por debajo del cual se considera móvil/tablet.
	TabletWidthThreshold = 768
)

// DeviceClassForWidth clasifica el ancho de pantalla.
func DeviceClassForWidth(px int) DeviceClass {
	if px < TabletWidthThreshold {
		return DeviceMobileTablet
	}
	return DeviceDesktop
}

// ParseDeviceClass acepta "mobile-tablet" o "desktop"; cualquier otro valor es desktop.
func ParseDeviceClass(s string) DeviceClass {
	if DeviceClass(s) == DeviceMobileTablet {
		return DeviceMobileTablet
	}
	return DeviceDesktop
}

// Vocabulario fijo de cabeceras del export.
const (
	HeaderProductName = "Nume produs"
	HeaderQuantity    = "Cantitate"
	HeaderUnitPrice   = "Preț / produs"
	HeaderTotalPrice  = "Preț Total"
	fallbackHeader    = "Title"
)

var headerWords = map[string]string{
	"productName": HeaderProductName,
	"sku":         HeaderQuantity,
	"unitPrice":   HeaderUnitPrice,
	"totalPrice":  HeaderTotalPrice,
}

// TranslateHeader traduce el nombre de campo a su cabecera visible.
func TranslateHeader(field string) string {
	if w, ok := headerWords[field]; ok {
		return w
	}
	return fallbackHeader
}

// Headers cabeceras en el orden de las columnas (el id no se exporta).
func Headers() []string {
	return []string{
		TranslateHeader("productName"),
		TranslateHeader("sku"),
		TranslateHeader("unitPrice"),
		TranslateHeader("totalPrice"),
	}
}

// Line fila del export ya formateada.
type Line struct {
	ProductName string
	Quantity    string
	UnitPrice   string
	TotalPrice  string
}

// Document contenido común a todos los formatos de export: mismas filas, mismo total.
type Document struct {
	Title    string
	Device   DeviceClass
	Currency string
	Lines    []Line
	Total    decimal.Decimal
}

// TotalText total con 2 decimales.
func (d Document) TotalText() string {
	return d.Total.StringFixed(inventory.MoneyPlaces)
}

// NewDocument construye el documento desde los registros (en su orden) usando TotalOf para el total.
func NewDocument(records []entity.Record, title string, device DeviceClass, currency string) Document {
	lines := make([]Line, 0, len(records))
	for _, r := range records {
		lines = append(lines, Line{
			ProductName: r.ProductName,
			Quantity:    r.SKU.String(),
			UnitPrice:   r.UnitPrice.StringFixed(inventory.MoneyPlaces),
			TotalPrice:  r.TotalPrice.StringFixed(inventory.MoneyPlaces),
		})
	}
	return Document{
		Title:    title,
		Device:   device,
		Currency: currency,
		Lines:    lines,
		Total:    inventory.TotalOf(records),
	}
}
