package gofpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"cbl-crm/go_backend/internal/domain/quote"
)

const font = "Helvetica"

type Generator struct {
	CompanyName string
}

func New(companyName string) *Generator { return &Generator{CompanyName: companyName} }

// Generate renders the quotation sheet. Amounts are printed as they stand on
// the quote, so callers price it first.
func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+q.Number, true)
	// Core fonts are cp1252; caller text arrives as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(font, "B", 16)
	pdf.Cell(0, 10, "Quotation")
	pdf.Ln(10)

	pdf.SetFont(font, "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("No. %s dated %s", q.Number, q.CreatedAt.Format("02.01.2006"))))
	pdf.Ln(6)

	if c := q.Customer; c.Name != "" || c.Company != "" {
		pdf.Cell(0, 6, tr(trim(fmt.Sprintf("Client: %s %s %s", c.Name, c.Company, c.Phone), 90)))
		pdf.Ln(6)
		if c.GSTIN != "" {
			pdf.Cell(0, 6, tr("GSTIN: "+c.GSTIN))
			pdf.Ln(6)
		}
	}

	pdf.Ln(4)
	pdf.SetFont(font, "B", 10)
	cols := []float64{62, 16, 24, 18, 24, 14, 32}
	for i, h := range []string{"Item", "Qty", "Rate", "Disc %", "Disc", "GST %", "Total"} {
		pdf.CellFormat(cols[i], 7, h, "B", 0, align(i), false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont(font, "", 9)
	for _, it := range q.Items {
		row := []string{
			trim(it.Name, 36),
			it.Quantity.String(),
			money(it.UnitRate),
			it.DiscountPercent.String(),
			money(it.DiscountedValue),
			it.GSTPercent.String(),
			money(it.TotalPrice),
		}
		for i, v := range row {
			pdf.CellFormat(cols[i], 6, tr(v), "", 0, align(i), false, 0, "")
		}
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont(font, "", 10)
	totals := [][2]string{
		{"Sub total", money(q.Totals.SubTotal)},
		{"GST", money(q.Totals.TotalTax)},
	}
	for _, t := range totals {
		pdf.CellFormat(158, 6, t[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, t[1], "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(158, 7, "Grand total (INR)", "T", 0, "R", false, 0, "")
	pdf.CellFormat(32, 7, money(q.Totals.GrandTotal), "T", 0, "R", false, 0, "")
	pdf.Ln(10)

	if q.Comment != "" {
		pdf.SetFont(font, "", 9)
		pdf.MultiCell(0, 5, tr(q.Comment), "", "L", false)
		pdf.Ln(2)
	}
	if g.CompanyName != "" {
		pdf.SetFont(font, "", 9)
		pdf.Cell(0, 5, tr(g.CompanyName))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation %s: %w", q.Number, err)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
