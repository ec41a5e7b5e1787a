package report

import (
	"time"

	"github.com/go-pdf/fpdf"
)

// Примитивы разметки PDF: заголовки, абзацы и таблицы с серой шапкой,
// повторяющие вид исходных отчётов.

func newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	return pdf
}

func title(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, text, "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func generatedAt(pdf *fpdf.Fpdf, t time.Time) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+t.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func paragraph(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
}

func table(pdf *fpdf.Fpdf, headers []string, rows [][]string) {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
}
