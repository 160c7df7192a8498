package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverbeek/treestack/internal/model"
)

func TestBuildTreeModelStacksByHeight(t *testing.T) {
	stock := model.StockDimensions{Depth: 90, Height: 35, Length: 2400}
	tree := model.TreeDimensions{BaseWidth: 600, TargetHeight: 900}
	calc := model.Calculate(stock, tree, nil)
	require.Equal(t, 24, calc.NumberOfLayers)

	m := BuildTreeModel(calc)
	assert.Equal(t, 12*24, m.TriangleCount(), "one wedge per usable layer")

	min, max := m.BoundingBox()
	assert.InDelta(t, 0, min.Y, 1e-9)
	assert.InDelta(t, calc.ActualHeight, max.Y, 1e-9, "model height equals the visible stack height")

	// The bottom layer spans the base width along X.
	assert.InDelta(t, -tree.BaseWidth/2, min.X, 1e-9)
	assert.InDelta(t, tree.BaseWidth/2, max.X, 1e-9)

	// The second layer is rotated, so the Z extent is set by its length.
	secondLength := calc.Pieces[1].Length
	assert.InDelta(t, -secondLength/2, min.Z, 1e-9)
	assert.InDelta(t, secondLength/2, max.Z, 1e-9)
}

func TestBuildTreeModelEmptyCalculation(t *testing.T) {
	stock := model.StockDimensions{Depth: 90, Height: 100, Length: 2400}
	tree := model.TreeDimensions{BaseWidth: 600, TargetHeight: 80}
	calc := model.Calculate(stock, tree, nil)
	require.Equal(t, 0, calc.NumberOfLayers)

	m := BuildTreeModel(calc)
	assert.True(t, m.IsEmpty(), "no layers, no geometry")
}

func TestBuildPieceModelMatchesWedge(t *testing.T) {
	p := model.TreePiece{LayerNumber: 3, Length: 480, CutAngle: 71, Depth: 90, Height: 35}
	m := BuildPieceModel(p)
	assert.Equal(t, 12, m.TriangleCount())

	min, max := m.BoundingBox()
	assert.InDelta(t, p.Length, max.X-min.X, 1e-9)
	assert.InDelta(t, p.Height, max.Y-min.Y, 1e-9)
	assert.InDelta(t, p.Depth, max.Z-min.Z, 1e-9)
}

func TestRotateY90PreservesShape(t *testing.T) {
	m := BuildWedge(600, 90, 35, 71)
	r := m.RotateY90()

	assert.Equal(t, m.TriangleCount(), r.TriangleCount())
	assert.InDelta(t, m.SurfaceArea(), r.SurfaceArea(), 1e-6)

	min, max := r.BoundingBox()
	assert.InDelta(t, 90.0, max.X-min.X, 1e-9, "depth now spans X")
	assert.InDelta(t, 600.0, max.Z-min.Z, 1e-9, "length now spans Z")
}
