package geometry

import "github.com/mverbeek/treestack/internal/model"

// BuildTreeModel assembles the full 3D model of the visible tree stack.
// Layers are stacked bottom to top in piece order, each centered on the
// trunk axis and rotated a quarter turn relative to the layer below, the
// way the physical tree is glued up for stability.
//
// The reserved star platform is not part of the model; it stays off the
// stack by definition.
func BuildTreeModel(calc model.TreeCalculation) Mesh {
	var tree Mesh
	var y float64
	for i, p := range calc.Pieces {
		wedge := BuildWedge(p.Length, p.Depth, p.Height, p.CutAngle)
		if i%2 == 1 {
			wedge = wedge.RotateY90()
		}
		tree.Append(wedge.Translate(Vec3{Y: y}))
		y += p.Height
	}
	return tree
}

// BuildPieceModel builds the mesh for one piece laid flat at the origin,
// used for the single-piece preview.
func BuildPieceModel(p model.TreePiece) Mesh {
	return BuildWedge(p.Length, p.Depth, p.Height, p.CutAngle)
}
