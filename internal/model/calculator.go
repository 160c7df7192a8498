package model

import (
	"fmt"
	"math"
)

// Calculate derives the full layer stack for a tree from stock and target
// dimensions. manualAngle, when non-nil, replaces the computed cut angle
// wholesale; it never changes the per-layer taper, so an override can
// produce a geometrically inconsistent but user-intended cut list.
//
// Calculate is total over finite inputs: degenerate dimensions yield a 0
// degree angle and empty or single-slab results rather than an error.
// Callers are expected to run ValidateInputs first.
func Calculate(stock StockDimensions, tree TreeDimensions, manualAngle *float64) TreeCalculation {
	calc := TreeCalculation{}

	totalLayers := 0
	if stock.Height > 0 {
		totalLayers = int(math.Floor(tree.TargetHeight / stock.Height))
	}
	if totalLayers < 0 {
		totalLayers = 0
	}
	calc.TotalLayers = totalLayers

	if totalLayers < 2 {
		calc.Warnings = append(calc.Warnings,
			fmt.Sprintf("Need at least two layers to reserve a flat topper platform (got %d). "+
				"Increase the target height or use thinner stock.", totalLayers))
	}

	// Achievable height using whole layers, always <= TargetHeight.
	taperHeight := float64(totalLayers) * stock.Height

	calc.CutAngle = cutAngle(taperHeight, tree.BaseWidth)
	if manualAngle != nil {
		calc.CutAngle = *manualAngle
	}

	pieces := make([]TreePiece, 0, totalLayers)
	for i := 0; i < totalLayers; i++ {
		layerHeight := float64(i) * stock.Height
		// taperHeight = totalLayers*stock.Height > 0 whenever the loop runs.
		width := tree.BaseWidth * (1 - layerHeight/taperHeight)
		pieces = append(pieces, TreePiece{
			LayerNumber: i,
			Length:      width,
			CutAngle:    calc.CutAngle,
			Depth:       stock.Depth,
			Height:      stock.Height,
		})
	}

	// The topmost (shortest) piece is held back as the star platform: it
	// stays flat to mount a topper and is excluded from the visible stack,
	// but still counts toward the material totals.
	if len(pieces) > 0 {
		platform := pieces[len(pieces)-1]
		calc.StarPlatform = &platform
		pieces = pieces[:len(pieces)-1]
	}

	calc.Pieces = pieces
	calc.NumberOfLayers = len(pieces)
	calc.ActualHeight = float64(len(pieces)) * stock.Height

	var usableMM float64
	for _, p := range pieces {
		usableMM += p.Length
	}
	var platformMM float64
	if calc.StarPlatform != nil {
		platformMM = calc.StarPlatform.Length
	}
	totalMM := usableMM + platformMM

	calc.UsableLinearM = usableMM / 1000.0
	calc.StarPlatformM = platformMM / 1000.0
	calc.TotalLinearM = totalMM / 1000.0

	if totalMM > 0 && stock.Length > 0 {
		calc.NumberOfStockPieces = int(math.Ceil(totalMM / stock.Length))
	}

	return calc
}

// cutAngle computes the saw angle in degrees from the full taper profile:
// a line from the base outer corner to the apex. Zero taper height or base
// width resolves to 0 degrees instead of relying on atan edge behavior.
func cutAngle(taperHeight, baseWidth float64) float64 {
	if taperHeight <= 0 || baseWidth <= 0 {
		return 0
	}
	return math.Atan(2*taperHeight/baseWidth) * 180.0 / math.Pi
}
