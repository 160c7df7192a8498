package ui

import (
	"testing"

	"github.com/mverbeek/treestack/internal/model"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Push initial state (before applying a preset)
	snap0 := MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "initial")
	h.Push(snap0)

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	// Current state has a wider stock
	stock := model.StockDimensions{Depth: 140, Height: 45, Length: 3000}
	current := MakeSnapshot(stock, model.DefaultTree(), nil, "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Stock != model.DefaultStock() {
		t.Errorf("expected default stock after undo, got %+v", restored.Stock)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	snap0 := MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "defaults")
	h.Push(snap0)

	tree1 := model.TreeDimensions{BaseWidth: 800, TargetHeight: 1200}
	snap1 := MakeSnapshot(model.DefaultStock(), tree1, nil, "taller tree")
	h.Push(snap1)

	current := MakeSnapshot(model.DefaultStock(), model.TreeDimensions{BaseWidth: 500, TargetHeight: 700}, nil, "current")

	// Undo back to snap1
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Tree != tree1 {
		t.Errorf("expected tree %+v, got %+v", tree1, restored.Tree)
	}

	// Redo back to current
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Tree.BaseWidth != 500 {
		t.Errorf("expected base width 500 after redo, got %.0f", redone.Tree.BaseWidth)
	}
	if !h.CanUndo() {
		t.Error("should still be undoable after redo")
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "a"))
	_, _ = h.Undo(MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "b"))
	if !h.CanRedo() {
		t.Fatal("redo stack should hold the undone state")
	}

	h.Push(MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "c"))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestMaxDepthTrimsOldest(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		tree := model.TreeDimensions{BaseWidth: float64(100 + i), TargetHeight: 900}
		h.Push(MakeSnapshot(model.DefaultStock(), tree, nil, "edit"))
	}
	if len(h.undoStack) != defaultMaxDepth {
		t.Fatalf("expected undo stack trimmed to %d, got %d", defaultMaxDepth, len(h.undoStack))
	}
	// The oldest surviving snapshot should be entry 10
	if h.undoStack[0].Tree.BaseWidth != 110 {
		t.Errorf("expected oldest snapshot base width 110, got %.0f", h.undoStack[0].Tree.BaseWidth)
	}
}

func TestSnapshotCopiesManualAngle(t *testing.T) {
	angle := 45.0
	s := MakeSnapshot(model.DefaultStock(), model.DefaultTree(), &angle, "override")

	angle = 60.0
	if *s.ManualAngle != 45.0 {
		t.Errorf("snapshot angle should be isolated from later edits, got %.1f", *s.ManualAngle)
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "a"))
	_, _ = h.Undo(MakeSnapshot(model.DefaultStock(), model.DefaultTree(), nil, "b"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}
