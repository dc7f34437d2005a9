package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jhoicas/inventar/internal/domain/entity"
)

// fontSizes tamaños (px) por clase de dispositivo.
type fontSizes struct {
	Title, Table, Header, Cell, Total int
}

var sizesByDevice = map[DeviceClass]fontSizes{
	DeviceMobileTablet: {Title: 22, Table: 20, Header: 20, Cell: 18, Total: 24},
	DeviceDesktop:      {Title: 16, Table: 14, Header: 14, Cell: 12, Total: 18},
}

// El script final captura el fragmento con html2canvas y lo descarga como PDF con jsPDF.
var exportTemplate = template.Must(template.New("export").Parse(`<div id="generatedHTMLTable" style="text-align: start; margin-top: 20px !important; padding-top: 20px !important">
<h2 style="margin: auto; width: 97%; border-collapse: collapse; font-size: {{.Sizes.Title}}px;">{{.Doc.Title}}</h2>
<table style="margin: auto; width: 97%; border-collapse: collapse; font-size: {{.Sizes.Table}}px;">
<tr>{{range $i, $h := .Headers}}<th style="padding: 40px 0 30px 0; text-align: {{if eq $i 0}}start{{else}}center{{end}}; border-bottom: solid 1px black; font-size: {{$.Sizes.Header}}px;">{{$h}}</th>{{end}}</tr>
{{range .Doc.Lines}}<tr><td style="padding: 4px; text-align: start; border-bottom: solid 1px gray; font-size: {{$.Sizes.Cell}}px;">{{.ProductName}}</td><td style="padding: 4px; text-align: center; border-bottom: solid 1px gray; font-size: {{$.Sizes.Cell}}px;">{{.Quantity}}</td><td style="padding: 4px; text-align: center; border-bottom: solid 1px gray; font-size: {{$.Sizes.Cell}}px;">{{.UnitPrice}}</td><td style="padding: 4px; text-align: center; border-bottom: solid 1px gray; font-size: {{$.Sizes.Cell}}px;">{{.TotalPrice}}</td></tr>
{{end}}<tr><td style="padding: 30px 0 0 0; text-align: start; font-weight: 600; font-size: {{.Sizes.Total}}px;">{{.TotalLabel}}</td><td style="padding: 30px 0 0 0; text-align: center; font-weight: 600; font-size: {{.Sizes.Total}}px;"></td><td style="padding: 30px 0 0 0; text-align: center; font-weight: 600; font-size: {{.Sizes.Total}}px;"></td><td style="padding: 30px 0 0 0; text-align: center; font-weight: 600; font-size: {{.Sizes.Total}}px;">{{.Doc.TotalText}}</td></tr>
</table>
</div>
<script src="https://cdnjs.cloudflare.com/ajax/libs/jspdf/2.5.1/jspdf.umd.min.js"></script>
<script src="https://html2canvas.hertzen.com/dist/html2canvas.min.js"></script>
<script>
window.jsPDF = window.jspdf.jsPDF;
function downloadPDF() {
  html2canvas(document.getElementById('generatedHTMLTable'), { allowTaint: true, useCORS: true, scale: 2 }).then(function (canvas) {
    var img = canvas.toDataURL('image/png', 1.0);
    var doc = new jsPDF({ orientation: 'portrait', unit: 'in', format: 'a4', precision: 10 });
    var w = doc.internal.pageSize.getWidth();
    doc.addImage(img, 'PNG', 0, 0, w, canvas.height * w / canvas.width);
    doc.save({{.FileName}});
  });
}
alert('Apasă pe OK pentru a descarcă PDF-ul');
downloadPDF();
</script>`))

// PDFFileName nombre del archivo que descarga el navegador.
const PDFFileName = "inventory.pdf"

// RenderExport genera el fragmento HTML listo para imprimir/PDF. Es una función pura de sus entradas:
// no lee el almacén; el llamador pasa la lista completa o la ya filtrada.
func RenderExport(records []entity.Record, title string, device DeviceClass, currency string) (string, error) {
	doc := NewDocument(records, title, device, currency)
	return RenderDocument(doc)
}

// RenderDocument renderiza un Document ya construido.
func RenderDocument(doc Document) (string, error) {
	sizes, ok := sizesByDevice[doc.Device]
	if !ok {
		sizes = sizesByDevice[DeviceDesktop]
	}
	var buf bytes.Buffer
	err := exportTemplate.Execute(&buf, struct {
		Doc        Document
		Sizes      fontSizes
		Headers    []string
		TotalLabel string
		FileName   string
	}{doc, sizes, Headers(), "TOTAL", PDFFileName})
	if err != nil {
		return "", fmt.Errorf("export: renderizar html: %w", err)
	}
	return buf.String(), nil
}
