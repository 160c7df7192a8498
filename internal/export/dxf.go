package export

import (
	"fmt"

	"github.com/mverbeek/treestack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// dxfGap is the spacing between piece outlines in the drawing, in mm.
const dxfGap = 20.0

// ExportDXF writes a 2D cutting drawing: the front profile of every piece
// (trapezoid with both ends at the cut angle), laid out in a vertical
// column with the base layer at the bottom. The platform piece is included
// so the drawing covers the complete material list. This is a drawing
// export for templates and documentation, not machine toolpaths.
func ExportDXF(path string, calc model.TreeCalculation) error {
	pieces := make([]model.TreePiece, 0, len(calc.Pieces)+1)
	pieces = append(pieces, calc.Pieces...)
	if calc.StarPlatform != nil {
		pieces = append(pieces, *calc.StarPlatform)
	}
	if len(pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("CUTS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}

	y := 0.0
	for _, p := range pieces {
		if err := drawPieceProfile(d, p, y); err != nil {
			return fmt.Errorf("failed to draw layer %d: %w", p.LayerNumber, err)
		}
		y += p.Height + dxfGap
	}

	return d.SaveAs(path)
}

// drawPieceProfile draws one trapezoid outline with its bottom-left-ish
// origin at (0, baseY). Pieces are left-aligned so the angled ends are
// easy to compare across layers.
func drawPieceProfile(d *drawing.Drawing, p model.TreePiece, baseY float64) error {
	inset := layerInset(p)
	topLeft := inset
	topRight := p.Length - inset
	if topRight < topLeft {
		topLeft = p.Length / 2
		topRight = topLeft
	}

	lines := [][4]float64{
		{0, baseY, p.Length, baseY},                            // bottom
		{p.Length, baseY, topRight, baseY + p.Height},          // right cut
		{topRight, baseY + p.Height, topLeft, baseY + p.Height}, // top
		{topLeft, baseY + p.Height, 0, baseY},                  // left cut
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
