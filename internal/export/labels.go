package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/mverbeek/treestack/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	LayerNumber int     `json:"layer"`
	Length      float64 `json:"length_mm"`
	Depth       float64 `json:"depth_mm"`
	Height      float64 `json:"height_mm"`
	CutAngle    float64 `json:"cut_angle_deg"`
	Platform    bool    `json:"platform"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per cut piece
// including the topper platform. Each label carries the layer number,
// piece dimensions, and a QR code encoding the piece metadata as JSON,
// so a phone scan at the saw identifies the piece. Labels are laid out
// on a standard label sheet format (Avery 5160).
func ExportLabels(path string, calc model.TreeCalculation) error {
	labels := CollectLabelInfos(calc)
	if len(labels) == 0 {
		return fmt.Errorf("no pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	// Core fonts are cp1252; translate so the degree glyph survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for layer %d: %w", label.LayerNumber, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_layer_%d", info.LayerNumber)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	title := fmt.Sprintf("Layer %d", info.LayerNumber+1)
	if info.Platform {
		title = "Topper platform"
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.0f x %.0f mm", info.Length, info.Depth, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, tr(fmt.Sprintf("Cut both ends at %.1f°", info.CutAngle)), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a calculation for use
// in testing or alternative export formats. The platform piece, when
// present, is appended last.
func CollectLabelInfos(calc model.TreeCalculation) []LabelInfo {
	var labels []LabelInfo
	for _, p := range calc.Pieces {
		labels = append(labels, LabelInfo{
			LayerNumber: p.LayerNumber,
			Length:      p.Length,
			Depth:       p.Depth,
			Height:      p.Height,
			CutAngle:    p.CutAngle,
		})
	}
	if calc.StarPlatform != nil {
		p := calc.StarPlatform
		labels = append(labels, LabelInfo{
			LayerNumber: p.LayerNumber,
			Length:      p.Length,
			Depth:       p.Depth,
			Height:      p.Height,
			CutAngle:    p.CutAngle,
			Platform:    true,
		})
	}
	return labels
}
