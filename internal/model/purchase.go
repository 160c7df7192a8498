package model

import "math"

// PurchaseEstimate holds the results of a stock purchasing calculation.
type PurchaseEstimate struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`    // Total cut length needed (mm)
	StockLengthMM    float64 `json:"stock_length_mm"`    // Length of one stock piece (mm)
	PiecesExact      float64 `json:"pieces_exact"`       // Exact fractional number of stock pieces
	PiecesMin        int     `json:"pieces_min"`         // Minimum pieces (ceiling of exact)
	PiecesWithWaste  int     `json:"pieces_with_waste"`  // Recommended pieces including waste factor
	WastePercent     float64 `json:"waste_percent"`      // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost    float64 `json:"estimated_cost"`     // Total cost if pricing available
	PricePerPiece    float64 `json:"price_per_piece"`    // Price used for estimation
	SawKerfAllowance float64 `json:"saw_kerf_allowance"` // Kerf added per cut (mm)
}

// CalculatePurchaseEstimate computes how many lengths of stock to buy for a
// calculated tree. Every layer needs two angled cuts, so one kerf width per
// cut end is added to the raw lengths before dividing by the stock length.
func CalculatePurchaseEstimate(calc TreeCalculation, stock StockDimensions, kerfWidth, wastePercent, pricePerPiece float64) PurchaseEstimate {
	totalMM := calc.TotalLinearMM()
	if totalMM > 0 {
		// Two kerf cuts per piece, platform included.
		cuts := calc.NumberOfLayers
		if calc.StarPlatform != nil {
			cuts++
		}
		totalMM += float64(cuts) * 2 * kerfWidth
	}

	est := PurchaseEstimate{
		TotalLinearMM:    totalMM,
		StockLengthMM:    stock.Length,
		WastePercent:     wastePercent,
		PricePerPiece:    pricePerPiece,
		SawKerfAllowance: kerfWidth,
	}

	if stock.Length <= 0 || totalMM <= 0 {
		return est
	}

	est.PiecesExact = totalMM / stock.Length
	est.PiecesMin = int(math.Ceil(est.PiecesExact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	est.PiecesWithWaste = int(math.Ceil(est.PiecesExact * wasteFactor))
	if est.PiecesWithWaste < est.PiecesMin {
		est.PiecesWithWaste = est.PiecesMin
	}

	est.EstimatedCost = float64(est.PiecesWithWaste) * pricePerPiece

	return est
}
