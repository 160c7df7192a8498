package model

// StockDimensions describes the linear wood stock the tree is cut from,
// as sold at the lumber yard.
type StockDimensions struct {
	Depth  float64 `json:"depth"`  // mm, front-to-back dimension of a layer
	Height float64 `json:"height"` // mm, thickness of one layer
	Length float64 `json:"length"` // mm, length of one piece of stock as sold
}

// TreeDimensions describes the target silhouette of the finished tree.
type TreeDimensions struct {
	BaseWidth    float64 `json:"base_width"`    // mm, width of the bottom layer
	TargetHeight float64 `json:"target_height"` // mm, desired overall height
}

// TreePiece is one physical layer of the tree, cut to length with both
// ends sawn at the shared cut angle.
type TreePiece struct {
	LayerNumber int     `json:"layer_number"` // 0-indexed from the base
	Length      float64 `json:"length"`       // mm, long dimension at this layer
	CutAngle    float64 `json:"cut_angle"`    // degrees, identical for every piece
	Depth       float64 `json:"depth"`        // mm, copied from stock
	Height      float64 `json:"height"`       // mm, copied from stock
}

// TreeCalculation is the full result of a layer calculation. Pieces are
// ordered bottom to top; renderers rely on that order for stacking.
type TreeCalculation struct {
	Pieces              []TreePiece `json:"pieces"`                  // usable layers, bottom to top
	NumberOfLayers      int         `json:"number_of_layers"`        // count of usable pieces
	TotalLayers         int         `json:"total_layers"`            // layers before reserving the platform
	ActualHeight        float64     `json:"actual_height"`           // mm, height of the visible stack
	CutAngle            float64     `json:"cut_angle"`               // degrees
	StarPlatform        *TreePiece  `json:"star_platform,omitempty"` // reserved topmost piece, nil if none
	Warnings            []string    `json:"warnings,omitempty"`
	UsableLinearM       float64     `json:"usable_linear_m"`        // meters of stock in the visible stack
	StarPlatformM       float64     `json:"star_platform_m"`        // meters reserved for the platform
	TotalLinearM        float64     `json:"total_linear_m"`         // meters including the platform
	NumberOfStockPieces int         `json:"number_of_stock_pieces"` // whole stock lengths to buy
}

// HasWarnings reports whether the calculation produced any advisory messages.
func (c TreeCalculation) HasWarnings() bool {
	return len(c.Warnings) > 0
}

// TotalLinearMM returns the total linear length in millimeters.
func (c TreeCalculation) TotalLinearMM() float64 {
	return c.TotalLinearM * 1000.0
}

// DefaultStock returns common decking-board stock dimensions.
func DefaultStock() StockDimensions {
	return StockDimensions{
		Depth:  90,
		Height: 35,
		Length: 2400,
	}
}

// DefaultTree returns a tabletop-sized default tree.
func DefaultTree() TreeDimensions {
	return TreeDimensions{
		BaseWidth:    600,
		TargetHeight: 900,
	}
}
