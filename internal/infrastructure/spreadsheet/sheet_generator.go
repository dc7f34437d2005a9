// Package spreadsheet genera el export del inventario como hoja de cálculo XML
// (SpreadsheetML 2003), legible por Excel y LibreOffice sin dependencias binarias.
package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventar/internal/application/export"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	maxSheetName  = 31
	defaultSheet  = "Inventory"
)

var _ export.SheetGenerator = (*SheetGenerator)(nil)

// SheetGenerator implementa export.SheetGenerator con etree.
type SheetGenerator struct{}

// NewSheetGenerator construye el generador.
func NewSheetGenerator() *SheetGenerator { return &SheetGenerator{} }

// GenerateInventorySheet escribe título, cabeceras, una fila por producto y la fila TOTAL.
// Cantidades e importes van como celdas numéricas.
func (g *SheetGenerator) GenerateInventorySheet(ctx context.Context, doc export.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	x.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := x.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	styles := wb.CreateElement("Styles")
	bold := styles.CreateElement("Style")
	bold.CreateAttr("ss:ID", "bold")
	bold.CreateElement("Font").CreateAttr("ss:Bold", "1")

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheetName(doc.Title))
	table := ws.CreateElement("Table")

	if doc.Title != "" {
		addCell(table.CreateElement("Row"), "String", doc.Title, "bold")
	}

	header := table.CreateElement("Row")
	for _, h := range export.Headers() {
		addCell(header, "String", h, "bold")
	}

	for _, l := range doc.Lines {
		r := table.CreateElement("Row")
		addCell(r, "String", l.ProductName, "")
		addCell(r, "Number", l.Quantity, "")
		addCell(r, "Number", l.UnitPrice, "")
		addCell(r, "Number", l.TotalPrice, "")
	}

	total := table.CreateElement("Row")
	addCell(total, "String", "TOTAL", "bold")
	// la celda del total ocupa las columnas intermedias
	addCell(total, "Number", doc.TotalText(), "bold").CreateAttr("ss:Index", "4")

	x.Indent(2)
	b, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar: %w", err)
	}
	return b, nil
}

func addCell(row *etree.Element, typ, value, style string) *etree.Element {
	cell := row.CreateElement("Cell")
	if style != "" {
		cell.CreateAttr("ss:StyleID", style)
	}
	data := cell.CreateElement("Data")
	data.CreateAttr("ss:Type", typ)
	data.SetText(value)
	return cell
}

// sheetName Excel limita el nombre de la hoja a 31 caracteres y prohíbe []:*?/\.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		return defaultSheet
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}
