package export

import "context"

// PDFGenerator genera el PDF del inventario (lo implementa infrastructure/pdf).
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, doc Document) ([]byte, error)
}

// SheetGenerator genera la hoja de cálculo XML del inventario (lo implementa infrastructure/spreadsheet).
type SheetGenerator interface {
	GenerateInventorySheet(ctx context.Context, doc Document) ([]byte, error)
}
