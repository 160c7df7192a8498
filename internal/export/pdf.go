// Package export provides functionality for exporting tree calculations
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/mverbeek/treestack/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	silhouetteH  = 110.0 // vertical space reserved for the silhouette drawing
)

// ExportPDF generates a PDF document for a tree calculation: a scaled
// front silhouette of the stacked layers, the full cut list table, and a
// material summary with any warnings.
func ExportPDF(path string, calc model.TreeCalculation, stock model.StockDimensions, tree model.TreeDimensions) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Core fonts are cp1252; translate so the degree and dash glyphs survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Layered Tree Cut List — %.0f x %.0f mm target", tree.BaseWidth, tree.TargetHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr(title), "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Stock: %.0f x %.0f x %.0f mm | Layers: %d usable of %d | Cut angle: %.1f° | Actual height: %.0f mm",
		stock.Depth, stock.Height, stock.Length,
		calc.NumberOfLayers, calc.TotalLayers, calc.CutAngle, calc.ActualHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, tr(stats), "", 0, "L", false, 0, "")

	y := drawAreaTop
	y = drawSilhouette(pdf, calc, y)
	y = drawCutListTable(pdf, tr, calc, y+8)
	drawSummary(pdf, tr, calc, y+8)

	return pdf.OutputFileAndClose(path)
}

// drawSilhouette renders the front view of the stacked layers as a column
// of trapezoids, centered horizontally, scaled to fit the reserved area.
// Returns the Y coordinate below the drawing.
func drawSilhouette(pdf *fpdf.Fpdf, calc model.TreeCalculation, startY float64) float64 {
	if len(calc.Pieces) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetXY(marginLeft, startY)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, "No usable layers to draw.", "", 0, "L", false, 0, "")
		return startY + 8
	}

	baseWidth := calc.Pieces[0].Length
	stackHeight := calc.ActualHeight

	drawWidth := pageWidth - marginLeft - marginRight
	scale := math.Min(drawWidth/baseWidth, silhouetteH/stackHeight)

	centerX := marginLeft + drawWidth/2
	bottomY := startY + stackHeight*scale

	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 70, 40)
	pdf.SetLineWidth(0.3)

	for i, p := range calc.Pieces {
		inset := layerInset(p) * scale
		halfBottom := p.Length / 2 * scale
		halfTop := halfBottom - inset
		if halfTop < 0 {
			halfTop = 0
		}

		yBottom := bottomY - float64(i)*p.Height*scale
		yTop := yBottom - p.Height*scale

		pdf.Polygon([]fpdf.PointType{
			{X: centerX - halfBottom, Y: yBottom},
			{X: centerX + halfBottom, Y: yBottom},
			{X: centerX + halfTop, Y: yTop},
			{X: centerX - halfTop, Y: yTop},
		}, "FD")
	}

	// Width annotation under the base layer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	widthLabel := fmt.Sprintf("%.0f mm", baseWidth)
	labelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(centerX-labelW/2, bottomY+1)
	pdf.CellFormat(labelW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return bottomY + 6
}

// layerInset returns the horizontal inset per side of a layer's front
// profile caused by the angled cut, capped at half the length.
func layerInset(p model.TreePiece) float64 {
	if p.CutAngle <= 0 {
		return p.Length / 2
	}
	inset := p.Height / math.Tan(p.CutAngle*math.Pi/180)
	if inset > p.Length/2 {
		inset = p.Length / 2
	}
	return inset
}

// drawCutListTable renders the per-piece table. Returns Y below the table.
func drawCutListTable(pdf *fpdf.Fpdf, tr func(string) string, calc model.TreeCalculation, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Cut List", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 35, 30, 30, 30, 35}
	headers := []string{"Layer", "Length (mm)", "Depth (mm)", "Height (mm)", "Angle", "Note"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	rows := make([]model.TreePiece, 0, len(calc.Pieces)+1)
	rows = append(rows, calc.Pieces...)
	if calc.StarPlatform != nil {
		rows = append(rows, *calc.StarPlatform)
	}

	for i, p := range rows {
		note := ""
		if calc.StarPlatform != nil && p.LayerNumber == calc.StarPlatform.LayerNumber {
			note = "topper platform"
		}
		rowData := []string{
			fmt.Sprintf("%d", p.LayerNumber+1),
			fmt.Sprintf("%.1f", p.Length),
			fmt.Sprintf("%.0f", p.Depth),
			fmt.Sprintf("%.0f", p.Height),
			fmt.Sprintf("%.1f°", p.CutAngle),
			note,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 5.5, tr(cell), "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 5.5

		// Start a new page when the table runs off the bottom.
		if y > pageHeight-marginBottom-20 {
			pdf.AddPage()
			y = marginTop
		}
	}

	return y
}

// drawSummary renders the material totals and any warnings.
func drawSummary(pdf *fpdf.Fpdf, tr func(string) string, calc model.TreeCalculation, y float64) {
	if y > pageHeight-marginBottom-60 {
		pdf.AddPage()
		y = marginTop
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Summary", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Usable layers", fmt.Sprintf("%d", calc.NumberOfLayers)},
		{"Visible stack length", fmt.Sprintf("%.2f m", calc.UsableLinearM)},
		{"Topper platform", fmt.Sprintf("%.2f m", calc.StarPlatformM)},
		{"Total stock length", fmt.Sprintf("%.2f m", calc.TotalLinearM)},
		{"Stock pieces to buy", fmt.Sprintf("%d", calc.NumberOfStockPieces)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if calc.HasWarnings() {
		y += 4
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Warnings", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range calc.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.MultiCell(pageWidth-marginLeft-marginRight-5, 5, "- "+w, "", "L", false)
			y = pdf.GetY() + 1
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, tr("Generated by TreeStack — Layered Tree Planner"), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
