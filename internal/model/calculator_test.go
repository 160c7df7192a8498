package model

import (
	"math"
	"testing"
)

func TestCalculateDeckingBoardScenario(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 35, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 900}

	calc := Calculate(stock, tree, nil)

	if calc.TotalLayers != 25 {
		t.Errorf("expected 25 total layers, got %d", calc.TotalLayers)
	}
	if calc.NumberOfLayers != 24 {
		t.Errorf("expected 24 usable layers after reserving the platform, got %d", calc.NumberOfLayers)
	}
	if calc.ActualHeight != 24*35 {
		t.Errorf("expected actual height 840, got %.1f", calc.ActualHeight)
	}

	// taperHeight = 875, angle = atan(2*875/600) in degrees
	expectedAngle := math.Atan(2*875.0/600.0) * 180.0 / math.Pi
	if math.Abs(calc.CutAngle-expectedAngle) > 1e-9 {
		t.Errorf("expected cut angle %.4f, got %.4f", expectedAngle, calc.CutAngle)
	}

	if calc.StarPlatform == nil {
		t.Fatal("expected a reserved star platform piece")
	}
	if calc.StarPlatform.LayerNumber != 24 {
		t.Errorf("platform should be the topmost layer (24), got %d", calc.StarPlatform.LayerNumber)
	}

	// Total linear length: sum of 25 tapered widths = 7800 mm -> 4 stock pieces
	if math.Abs(calc.TotalLinearM-7.8) > 1e-9 {
		t.Errorf("expected 7.8 m total, got %.4f m", calc.TotalLinearM)
	}
	if calc.NumberOfStockPieces != 4 {
		t.Errorf("expected 4 stock pieces (ceil(7800/2400)), got %d", calc.NumberOfStockPieces)
	}
}

func TestCalculateLayerCountAndTaperHeight(t *testing.T) {
	cases := []struct {
		stockHeight  float64
		targetHeight float64
		wantLayers   int
	}{
		{35, 900, 25},
		{35, 875, 25},
		{35, 874, 24},
		{18, 500, 27},
		{100, 99, 0},
		{50, 50, 1},
	}
	for _, tc := range cases {
		stock := StockDimensions{Depth: 90, Height: tc.stockHeight, Length: 2400}
		tree := TreeDimensions{BaseWidth: 400, TargetHeight: tc.targetHeight}
		calc := Calculate(stock, tree, nil)
		if calc.TotalLayers != tc.wantLayers {
			t.Errorf("height %.0f / stock %.0f: expected %d layers, got %d",
				tc.targetHeight, tc.stockHeight, tc.wantLayers, calc.TotalLayers)
		}
		if taper := float64(calc.TotalLayers) * tc.stockHeight; taper > tc.targetHeight {
			t.Errorf("taper height %.1f exceeds target %.1f", taper, tc.targetHeight)
		}
	}
}

func TestCalculateMonotonicTaper(t *testing.T) {
	stock := StockDimensions{Depth: 70, Height: 22, Length: 3000}
	tree := TreeDimensions{BaseWidth: 850, TargetHeight: 1200}

	calc := Calculate(stock, tree, nil)

	if len(calc.Pieces) == 0 {
		t.Fatal("expected usable pieces")
	}
	if math.Abs(calc.Pieces[0].Length-tree.BaseWidth) > 1e-9 {
		t.Errorf("bottom piece should equal base width %.0f, got %.4f", tree.BaseWidth, calc.Pieces[0].Length)
	}
	for i := 1; i < len(calc.Pieces); i++ {
		if calc.Pieces[i].Length >= calc.Pieces[i-1].Length {
			t.Errorf("layer %d length %.4f not smaller than layer %d length %.4f",
				i, calc.Pieces[i].Length, i-1, calc.Pieces[i-1].Length)
		}
		if calc.Pieces[i].LayerNumber != i {
			t.Errorf("expected layer number %d, got %d", i, calc.Pieces[i].LayerNumber)
		}
	}

	if calc.StarPlatform == nil {
		t.Fatal("expected a reserved platform")
	}
	for _, p := range calc.Pieces {
		if calc.StarPlatform.Length > p.Length {
			t.Errorf("platform length %.4f should be the smallest, but layer %d is %.4f",
				calc.StarPlatform.Length, p.LayerNumber, p.Length)
		}
	}
}

func TestCalculateManualAngleOverride(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 35, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 900}

	base := Calculate(stock, tree, nil)
	angle := 45.0
	overridden := Calculate(stock, tree, &angle)

	if overridden.CutAngle != 45.0 {
		t.Errorf("expected overridden angle 45, got %.4f", overridden.CutAngle)
	}
	if len(base.Pieces) != len(overridden.Pieces) {
		t.Fatalf("override changed the piece count: %d vs %d", len(base.Pieces), len(overridden.Pieces))
	}
	for i := range base.Pieces {
		if base.Pieces[i].Length != overridden.Pieces[i].Length {
			t.Errorf("override changed layer %d length: %.4f vs %.4f",
				i, base.Pieces[i].Length, overridden.Pieces[i].Length)
		}
		if overridden.Pieces[i].CutAngle != 45.0 {
			t.Errorf("layer %d should carry the overridden angle, got %.4f", i, overridden.Pieces[i].CutAngle)
		}
	}
}

func TestCalculateTooFewLayersWarnsButSucceeds(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 35, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 50} // one layer

	calc := Calculate(stock, tree, nil)

	if calc.TotalLayers != 1 {
		t.Errorf("expected 1 total layer, got %d", calc.TotalLayers)
	}
	if !calc.HasWarnings() {
		t.Error("expected a warning for fewer than two layers")
	}
	// The single layer becomes the platform; the visible stack is empty.
	if calc.NumberOfLayers != 0 {
		t.Errorf("expected 0 usable layers, got %d", calc.NumberOfLayers)
	}
	if calc.StarPlatform == nil {
		t.Fatal("the single layer should be reserved as the platform")
	}
	// The bottom layer always spans the full base width, even when it is
	// the only layer and the taper collapses to a single stock height.
	if calc.StarPlatform.Length != tree.BaseWidth {
		t.Errorf("expected platform length %.0f, got %.1f", tree.BaseWidth, calc.StarPlatform.Length)
	}
	if calc.ActualHeight != 0 {
		t.Errorf("expected 0 actual height, got %.1f", calc.ActualHeight)
	}
}

func TestCalculateZeroLayersIsValid(t *testing.T) {
	stock := StockDimensions{Depth: 90, Height: 100, Length: 2400}
	tree := TreeDimensions{BaseWidth: 600, TargetHeight: 80}

	calc := Calculate(stock, tree, nil)

	if calc.TotalLayers != 0 {
		t.Errorf("expected 0 layers, got %d", calc.TotalLayers)
	}
	if calc.StarPlatform != nil {
		t.Error("no platform should be reserved when no layers exist")
	}
	if !calc.HasWarnings() {
		t.Error("expected a warning")
	}
	if calc.NumberOfStockPieces != 0 {
		t.Errorf("zero material should need 0 stock pieces, got %d", calc.NumberOfStockPieces)
	}
	if calc.TotalLinearM != 0 {
		t.Errorf("expected 0 total length, got %.4f", calc.TotalLinearM)
	}
}

func TestCutAngleDegenerateInputs(t *testing.T) {
	if a := cutAngle(0, 600); a != 0 {
		t.Errorf("zero taper height should give 0 degrees, got %.4f", a)
	}
	if a := cutAngle(875, 0); a != 0 {
		t.Errorf("zero base width should give 0 degrees, got %.4f", a)
	}
	if a := cutAngle(875, 600); a <= 0 || a >= 90 {
		t.Errorf("expected angle in (0, 90), got %.4f", a)
	}
}

func TestStockPiecesCeiling(t *testing.T) {
	// Construct a case where the total is an exact multiple of the stock length.
	stock := StockDimensions{Depth: 90, Height: 100, Length: 300}
	tree := TreeDimensions{BaseWidth: 400, TargetHeight: 300} // 3 layers: 400, 266.67, 133.33

	calc := Calculate(stock, tree, nil)
	// total = 400 + 266.67 + 133.33 = 800 -> ceil(800/300) = 3
	if calc.NumberOfStockPieces != 3 {
		t.Errorf("expected 3 stock pieces, got %d", calc.NumberOfStockPieces)
	}
}
