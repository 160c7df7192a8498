package model

import (
	"math"
	"testing"
)

func TestPurchaseEstimateBasic(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 35, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 900}
	calc := Calculate(stock, tree, nil)

	est := CalculatePurchaseEstimate(calc, stock, 3.0, 10.0, 12.50)

	// 25 cut pieces at two kerf cuts each on top of 7800 mm
	expected := 7800.0 + 25*2*3.0
	if math.Abs(est.TotalLinearMM-expected) > 1e-9 {
		t.Errorf("expected %.1f mm with kerf, got %.1f", expected, est.TotalLinearMM)
	}
	if est.PiecesMin < calc.NumberOfStockPieces {
		t.Errorf("kerf allowance should never reduce the piece count: %d < %d",
			est.PiecesMin, calc.NumberOfStockPieces)
	}
	if est.PiecesWithWaste < est.PiecesMin {
		t.Error("pieces with waste should be >= minimum pieces")
	}
	if est.EstimatedCost != float64(est.PiecesWithWaste)*12.50 {
		t.Errorf("expected cost %.2f, got %.2f", float64(est.PiecesWithWaste)*12.50, est.EstimatedCost)
	}
}

func TestPurchaseEstimateZeroMaterial(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 100, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 50}
	calc := Calculate(stock, tree, nil)

	est := CalculatePurchaseEstimate(calc, stock, 3.0, 10.0, 12.50)
	if est.PiecesMin != 0 {
		t.Errorf("expected 0 pieces for zero material, got %d", est.PiecesMin)
	}
	if est.EstimatedCost != 0 {
		t.Errorf("expected 0 cost, got %.2f", est.EstimatedCost)
	}
}

func TestPurchaseEstimateNoWaste(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 35, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 900}
	calc := Calculate(stock, tree, nil)

	est := CalculatePurchaseEstimate(calc, stock, 0, 0, 0)
	if est.PiecesMin != calc.NumberOfStockPieces {
		t.Errorf("without kerf the estimate should match the calculation: %d vs %d",
			est.PiecesMin, calc.NumberOfStockPieces)
	}
	if est.PiecesWithWaste != est.PiecesMin {
		t.Errorf("expected no extra pieces with 0%% waste, got %d vs %d",
			est.PiecesWithWaste, est.PiecesMin)
	}
}
