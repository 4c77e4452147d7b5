package gofpdf

import (
	"bytes"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fazzer/go_backend/internal/domain/quote"
)

// A4 portrait, millimeters. All coordinates are fixed; the layout is not
// derived from the data.
const (
	pageWidth  = 210
	headerH    = 40
	marginLeft = 15
	tableTop   = 85
	bodyBottom = 280
	footerY    = 290

	docTitle    = "ORÇAMENTO"
	brandFooter = "Serralheria Fazzer - Qualidade e Confiança"
)

// Brand palette, same RGB values the print layout has always used.
var (
	colorDark   = [3]int{26, 26, 26}
	colorAccent = [3]int{217, 4, 41}
)

// Table column widths in mm, summing to the 180mm content width.
var colWidths = [5]float64{80, 15, 30, 30, 25}

var colHeaders = [5]string{"Descrição do Serviço", "Qtd", "Mão de Obra (R$)", "Material (R$)", "Total (R$)"}

// Fixed metadata date so that identical inputs produce byte-identical output.
var metaDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(n quote.Normalized, logo []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Orçamento Serralheria Fazzer", true)
	pdf.SetCreationDate(metaDate)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	drawHeader(pdf, tr, n.Date, logo)
	drawClientPanel(pdf, tr, n)
	finalY := drawItemsTable(pdf, tr, n.Items)

	// Total block plus signatures need ~75mm below the table end.
	if finalY+75 > footerY {
		pdf.AddPage()
		finalY = 20
	}
	drawTotalBlock(pdf, tr, n.Total, finalY)
	drawSignatures(pdf, tr, finalY)
	drawFooter(pdf, tr)

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, date string, logo []byte) {
	pdf.SetFillColor(colorDark[0], colorDark[1], colorDark[2])
	pdf.Rect(0, 0, pageWidth, headerH, "F")

	// Red accent line closing the band.
	pdf.SetDrawColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetLineWidth(1)
	pdf.Line(0, headerH, pageWidth, headerH)
	pdf.SetLineWidth(0.2)

	if len(logo) > 0 {
		opts := gofpdf.ImageOptions{ImageType: imageType(logo)}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
		pdf.ImageOptions("logo", 10, 5, 50, 30, false, opts, 0, "")
	}

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, 190, 15, tr("Data: "+date))
	pdf.SetFont("Helvetica", "B", 22)
	textRight(pdf, 190, 25, tr(docTitle))
}

func drawClientPanel(pdf *gofpdf.Fpdf, tr func(string) string, n quote.Normalized) {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(250, 250, 250)
	pdf.RoundedRect(15, 50, 180, 25, 3, "1234", "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 60, tr("Dados do Cliente:"))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 68, tr(n.ClientName))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(110, 60, tr("Contato:"))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(110, 68, tr(n.ClientPhone))
}

// drawItemsTable paints the header row and one grid row per item, moving to a
// fresh page when a row would cross the bottom margin. It returns the vertical
// position after the last row.
func drawItemsTable(pdf *gofpdf.Fpdf, tr func(string) string, items []quote.LineItem) float64 {
	y := drawTableHead(pdf, tr, tableTop)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(200, 200, 200)
	for _, it := range items {
		// SplitText wants raw UTF-8; cp1252 translation happens per line at
		// draw time.
		descLines := pdf.SplitText(it.Description, colWidths[0]-4)
		if len(descLines) == 0 {
			descLines = []string{""}
		}
		rowH := float64(len(descLines))*5 + 3

		if y+rowH > bodyBottom {
			pdf.AddPage()
			y = drawTableHead(pdf, tr, 20)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetDrawColor(200, 200, 200)
		}

		cells := [5]string{
			"", // description drawn line by line below
			it.Quantity.Display(),
			tr(quote.FormatMoney(it.LaborCost)),
			tr(quote.FormatMoney(it.MaterialCost)),
			tr(quote.FormatCurrency(quote.LineTotal(it))),
		}

		x := float64(marginLeft)
		for c, w := range colWidths {
			pdf.Rect(x, y, w, rowH, "D")
			if c == 0 {
				for li, line := range descLines {
					pdf.Text(x+2, y+6+float64(li)*5, tr(line))
				}
			} else {
				textCenter(pdf, x+w/2, y+6, cells[c])
			}
			x += w
		}
		y += rowH
	}
	return y
}

func drawTableHead(pdf *gofpdf.Fpdf, tr func(string) string, y float64) float64 {
	const headH = 8
	pdf.SetFillColor(colorDark[0], colorDark[1], colorDark[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)

	x := float64(marginLeft)
	for c, w := range colWidths {
		pdf.Rect(x, y, w, headH, "F")
		textCenter(pdf, x+w/2, y+5.5, tr(colHeaders[c]))
		x += w
	}
	return y + headH
}

func drawTotalBlock(pdf *gofpdf.Fpdf, tr func(string) string, total string, finalY float64) {
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(120, finalY+10, 75, 20, "F")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.Text(125, finalY+23, tr("VALOR TOTAL"))
	pdf.SetTextColor(0, 0, 0)
	textRight(pdf, 190, finalY+23, tr(quote.CurrencySymbol+" "+total))
}

func drawSignatures(pdf *gofpdf.Fpdf, tr func(string) string, finalY float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(20, finalY+60, 90, finalY+60)
	pdf.Line(120, finalY+60, 190, finalY+60)

	pdf.SetFont("Helvetica", "", 10)
	textCenter(pdf, 55, finalY+65, tr("Assinatura do Responsável"))
	textCenter(pdf, 155, finalY+65, tr("Assinatura do Cliente"))
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	textCenter(pdf, 105, footerY, tr(brandFooter))
}

// textRight draws s ending at x, textCenter centered on x, both at baseline y.
func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func textCenter(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

func imageType(data []byte) string {
	if len(data) > 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return "JPG"
	}
	return "PNG"
}
