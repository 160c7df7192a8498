package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default dimensions applied when the app starts
	DefaultStockDepth   float64 `json:"default_stock_depth"`
	DefaultStockHeight  float64 `json:"default_stock_height"`
	DefaultStockLength  float64 `json:"default_stock_length"`
	DefaultBaseWidth    float64 `json:"default_base_width"`
	DefaultTargetHeight float64 `json:"default_target_height"`

	// Purchase estimate defaults
	DefaultKerfWidth    float64 `json:"default_kerf_width"`    // mm
	DefaultWastePercent float64 `json:"default_waste_percent"` // e.g. 10 for 10%

	// Application preferences
	Theme string `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultStock() and DefaultTree().
func DefaultAppConfig() AppConfig {
	stock := DefaultStock()
	tree := DefaultTree()
	return AppConfig{
		DefaultStockDepth:   stock.Depth,
		DefaultStockHeight:  stock.Height,
		DefaultStockLength:  stock.Length,
		DefaultBaseWidth:    tree.BaseWidth,
		DefaultTargetHeight: tree.TargetHeight,
		DefaultKerfWidth:    3.0,
		DefaultWastePercent: 10.0,
		Theme:               "system",
	}
}

// Stock returns the configured default stock dimensions.
func (c AppConfig) Stock() StockDimensions {
	return StockDimensions{
		Depth:  c.DefaultStockDepth,
		Height: c.DefaultStockHeight,
		Length: c.DefaultStockLength,
	}
}

// Tree returns the configured default tree dimensions.
func (c AppConfig) Tree() TreeDimensions {
	return TreeDimensions{
		BaseWidth:    c.DefaultBaseWidth,
		TargetHeight: c.DefaultTargetHeight,
	}
}
