package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/inventar/internal/domain/entity"
)

// RecordSource lo que el export necesita del repositorio: la lista completa o filtrada.
type RecordSource interface {
	List(ctx context.Context) ([]entity.Record, error)
	Filter(ctx context.Context, query string) ([]entity.Record, error)
}

// Request parámetros de un export. Query vacía exporta toda la lista; si no, lo mismo que muestra la búsqueda.
type Request struct {
	Title  string
	Device DeviceClass
	Query  string
}

// UseCase genera los exports (HTML imprimible, PDF, hoja XML) a partir de la lista actual.
type UseCase struct {
	source   RecordSource
	pdf      PDFGenerator
	sheet    SheetGenerator
	currency string
}

// NewUseCase construye el caso de uso inyectando el repositorio y los generadores.
func NewUseCase(source RecordSource, pdf PDFGenerator, sheet SheetGenerator, currency string) *UseCase {
	return &UseCase{source: source, pdf: pdf, sheet: sheet, currency: currency}
}

func (uc *UseCase) document(ctx context.Context, req Request) (Document, error) {
	var (
		records []entity.Record
		err     error
	)
	if req.Query == "" {
		records, err = uc.source.List(ctx)
	} else {
		records, err = uc.source.Filter(ctx, req.Query)
	}
	if err != nil {
		return Document{}, fmt.Errorf("export: obtener productos: %w", err)
	}
	return NewDocument(records, req.Title, req.Device, uc.currency), nil
}

// HTML devuelve el fragmento imprimible.
func (uc *UseCase) HTML(ctx context.Context, req Request) (string, error) {
	doc, err := uc.document(ctx, req)
	if err != nil {
		return "", err
	}
	return RenderDocument(doc)
}

// PDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *UseCase) PDF(ctx context.Context, req Request) ([]byte, string, error) {
	doc, err := uc.document(ctx, req)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInventoryPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación pdf: %w", err)
	}
	return b, FileName(req.Title, "pdf"), nil
}

// Sheet devuelve la hoja XML (SpreadsheetML) y el nombre de archivo sugerido.
// La hoja no depende del dispositivo: req.Device se ignora.
func (uc *UseCase) Sheet(ctx context.Context, req Request) ([]byte, string, error) {
	req.Device = DeviceDesktop
	doc, err := uc.document(ctx, req)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.sheet.GenerateInventorySheet(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación xml: %w", err)
	}
	return b, FileName(req.Title, "xml"), nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName deriva un nombre de archivo seguro del título. Título vacío = "inventory".
func FileName(title, ext string) string {
	base := strings.Trim(unsafeFileChars.ReplaceAllString(strings.TrimSpace(title), "_"), "_.")
	if base == "" {
		base = "inventory"
	}
	return base + "." + ext
}
