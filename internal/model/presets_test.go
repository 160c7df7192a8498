package model

import "testing"

func TestPresetStoreAddRemove(t *testing.T) {
	ps := PresetStore{}
	p := NewStockPreset("Test board", 90, 35, 2400, 9.95)
	ps.Add(p)

	if len(ps.Presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(ps.Presets))
	}
	if found := ps.FindByID(p.ID); found == nil || found.Name != "Test board" {
		t.Error("FindByID should locate the added preset")
	}
	if found := ps.FindByName("Test board"); found == nil {
		t.Error("FindByName should locate the added preset")
	}
	if !ps.Remove(p.ID) {
		t.Error("Remove should report success for an existing ID")
	}
	if ps.Remove(p.ID) {
		t.Error("Remove should report failure for a missing ID")
	}
}

func TestPresetDimensions(t *testing.T) {
	p := NewStockPreset("Decking", 90, 35, 2400, 0)
	d := p.Dimensions()
	if d.Depth != 90 || d.Height != 35 || d.Length != 2400 {
		t.Errorf("unexpected dimensions: %+v", d)
	}
	if p.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestDefaultPresetStoreSeeded(t *testing.T) {
	ps := NewPresetStore()
	if len(ps.Presets) == 0 {
		t.Fatal("expected seeded presets")
	}
	if len(ps.Names()) != len(ps.Presets) {
		t.Error("Names should return one entry per preset")
	}
}

func TestAppConfigDefaults(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.Stock() != DefaultStock() {
		t.Error("config default stock should match DefaultStock")
	}
	if cfg.Tree() != DefaultTree() {
		t.Error("config default tree should match DefaultTree")
	}
	if cfg.Theme != "system" {
		t.Errorf("expected system theme default, got %q", cfg.Theme)
	}
}
