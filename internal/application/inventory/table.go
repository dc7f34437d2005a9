package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/inventory"
)

// TotalLabel texto de la fila de total.
const TotalLabel = "TOTAL"

// TableRow fila visible: nombre tal cual y total con sufijo de moneda (alineado a la derecha).
// EditRecord es el registro completo que abre el formulario de edición al seleccionar la fila.
type TableRow struct {
	ProductName string
	TotalPrice  string
	EditRecord  entity.Record
}

// TotalRow fila final con la suma de la tabla.
type TotalRow struct {
	Label      string
	TotalPrice string
	Amount     decimal.Decimal
}

// TableView proyección de la lista en tabla. Empty indica al llamador que debe mostrar el
// mensaje de "sin productos" en lugar de la tabla; el renderer no decide esa visibilidad.
type TableView struct {
	Rows  []TableRow
	Total *TotalRow
	Empty bool
}

// TableRenderer construye la vista de tabla desde cero en cada llamada (idempotente).
type TableRenderer struct {
	currency string
}

// NewTableRenderer construye el renderer con el sufijo de moneda (p. ej. "RON").
func NewTableRenderer(currency string) *TableRenderer {
	return &TableRenderer{currency: currency}
}

// Render proyecta records en filas + fila de total.
func (t *TableRenderer) Render(records []entity.Record) TableView {
	view := TableView{Rows: make([]TableRow, 0, len(records))}
	if len(records) == 0 {
		view.Empty = true
		return view
	}
	for _, r := range records {
		view.Rows = append(view.Rows, TableRow{
			ProductName: r.ProductName,
			TotalPrice:  inventory.FormatMoney(r.TotalPrice, t.currency),
			EditRecord:  r,
		})
	}
	total := inventory.TotalOf(records)
	view.Total = &TotalRow{
		Label:      TotalLabel,
		TotalPrice: inventory.FormatMoney(total, t.currency),
		Amount:     total,
	}
	return view
}
