// Package pdf implementa el export del inventario a PDF en el servidor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO del export                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nume produs | Cantitate | Preț / produs | Preț Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventar/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(ctx context.Context, doc export.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := baseFontSize(doc.Device)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: base}).
		WithTitle(nonEmpty(doc.Title, "Inventory"), true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc.Title, base))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(base))
	for _, r := range tableLineRows(doc.Lines, base) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc, base))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// baseFontSize en móvil/tablet el texto es más grande, igual que en el export HTML.
func baseFontSize(device export.DeviceClass) float64 {
	if device == export.DeviceMobileTablet {
		return 11
	}
	return 9
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, base float64) core.Row {
	return row.New(14).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: base + 5, Align: align.Center,
			Color: colorPrimary, Top: 3,
		})),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow(base float64) core.Row {
	headers := export.Headers()
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: base, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(headers[0], 5, align.Left),
		h(headers[1], 2, align.Center),
		h(headers[2], 2, align.Right),
		h(headers[3], 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableLineRows: una fila por producto, en el orden recibido.
func tableLineRows(lines []export.Line, base float64) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(l.ProductName,
				props.Text{Size: base, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Quantity,
				props.Text{Size: base, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.UnitPrice,
				props.Text{Size: base, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(l.TotalPrice,
				props.Text{Size: base, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalRow: TOTAL a la izquierda, importe con moneda a la derecha.
func totalRow(doc export.Document, base float64) core.Row {
	amount := doc.TotalText()
	if doc.Currency != "" {
		amount += " " + doc.Currency
	}
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: base + 1, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(3).Add(text.New(amount, props.Text{
			Style: fontstyle.Bold, Size: base + 1, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
