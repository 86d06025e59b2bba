package report

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfDescWidth = 120
	pdfCostWidth = 70
	pdfLineH     = 7
)

// PDF renders the estimate as a one-document A4 summary the customer can
// download before submitting.
func PDF(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator maps £, – and ² into it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(190, 10, tr("Exceptional Building Services: Estimate"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if d.Reference != "" {
		pdf.Cell(95, 6, tr("Reference: "+d.Reference))
	} else {
		pdf.Cell(95, 6, "")
	}
	pdf.Cell(95, 6, tr("Date: "+d.SubmittedAt.Format("2 January 2006")))
	pdf.Ln(6)
	pdf.Cell(190, 6, tr("Property: "+PropertyLabel(d.PropertyType)))
	pdf.Ln(10)

	for _, s := range d.Sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(26, 26, 26)
		pdf.SetTextColor(200, 167, 74)
		pdf.CellFormat(pdfDescWidth, pdfLineH, tr(fmt.Sprintf("%s (%s–%s days)", s.Name, Days(s.DaysLow), Days(s.DaysHigh))), "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfCostWidth, pdfLineH, tr(costRange(s.CostLow, s.CostHigh)), "1", 1, "R", true, 0, "")
		pdf.SetTextColor(0, 0, 0)

		for _, room := range s.Rooms {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(pdfDescWidth, 6, tr(room.Title), "LR", 0, "L", false, 0, "")
			pdf.CellFormat(pdfCostWidth, 6, tr(costRange(room.CostLow, room.CostHigh)), "LR", 1, "R", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			for _, b := range room.Bullets {
				pdf.CellFormat(pdfDescWidth, 5, tr("  • "+b), "LR", 0, "L", false, 0, "")
				pdf.CellFormat(pdfCostWidth, 5, "", "LR", 1, "", false, 0, "")
			}
		}
		pdf.CellFormat(190, 0, "", "T", 1, "", false, 0, "")
		pdf.Ln(3)
	}

	q := d.Quote
	pdf.SetFont("Arial", "", 10)
	for _, a := range q.Additionals {
		row(pdf, tr(fmt.Sprintf("%s × %s", a.Label, humanize.Ftoa(a.Quantity))), tr(Money(a.Total)))
	}
	if q.MaterialsLow != 0 || q.MaterialsHigh != 0 {
		label := "Materials"
		if !q.MaterialsIncluded {
			label += " (not included in total)"
		}
		row(pdf, label, tr(costRange(q.MaterialsLow, q.MaterialsHigh)))
	}
	if q.DesignManagement.Amount != 0 {
		row(pdf, tr(fmt.Sprintf("%s (%s%%)", q.DesignManagement.Label, humanize.Ftoa(q.DesignManagement.Percent))), tr(Money(q.DesignManagement.Amount)))
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	row(pdf, fmt.Sprintf("Total estimate: %d days (~%d weeks)", q.DurationDays, q.ProjectWeeks), tr(costRange(q.TotalLow, q.TotalHigh)))

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(190, 4, "This is a ballpark estimate based on the details provided. A site survey is required for a fixed quotation.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func row(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.CellFormat(pdfDescWidth, pdfLineH, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfCostWidth, pdfLineH, amount, "", 1, "R", false, 0, "")
}

func costRange(low, high float64) string {
	return Money(low) + " – " + Money(high)
}
