package model

import "github.com/google/uuid"

// StockPreset represents a reusable stock board definition, typically one
// entry per product the local lumber yard carries.
type StockPreset struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Depth         float64 `json:"depth"`  // mm
	Height        float64 `json:"height"` // mm
	Length        float64 `json:"length"` // mm
	PricePerPiece float64 `json:"price_per_piece"` // 0 if unknown
}

// NewStockPreset creates a new StockPreset with a generated ID.
func NewStockPreset(name string, depth, height, length, price float64) StockPreset {
	return StockPreset{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Depth:         depth,
		Height:        height,
		Length:        length,
		PricePerPiece: price,
	}
}

// Dimensions returns the preset as StockDimensions for calculation.
func (p StockPreset) Dimensions() StockDimensions {
	return StockDimensions{
		Depth:  p.Depth,
		Height: p.Height,
		Length: p.Length,
	}
}

// PresetStore holds a collection of stock presets.
type PresetStore struct {
	Presets []StockPreset `json:"presets"`
}

// NewPresetStore creates a store seeded with common construction timber sizes.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: []StockPreset{
			NewStockPreset("Decking board 90x35", 90, 35, 2400, 0),
			NewStockPreset("Batten 45x19", 45, 19, 2400, 0),
			NewStockPreset("Framing timber 70x45", 70, 45, 2700, 0),
		},
	}
}

// Add adds a preset to the store.
func (ps *PresetStore) Add(p StockPreset) {
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (ps *PresetStore) Remove(id string) bool {
	for i, p := range ps.Presets {
		if p.ID == id {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (ps *PresetStore) FindByID(id string) *StockPreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == id {
			return &ps.Presets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *StockPreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns a list of preset names for UI dropdowns.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
