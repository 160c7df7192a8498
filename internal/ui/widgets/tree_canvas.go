package widgets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mverbeek/treestack/internal/model"
	"github.com/mverbeek/treestack/internal/texture"
)

// edge color for layer outlines
var edgeColor = color.RGBA{R: 100, G: 70, B: 40, A: 255}

// TreeCanvas renders the front silhouette of a calculated tree: one
// trapezoid per usable layer, stacked bottom to top, filled with the
// procedural wood texture.
type TreeCanvas struct {
	widget.BaseWidget
	calc      model.TreeCalculation
	textures  *texture.Cache
	maxWidth  float32
	maxHeight float32
}

func NewTreeCanvas(calc model.TreeCalculation, textures *texture.Cache, maxW, maxH float32) *TreeCanvas {
	tc := &TreeCanvas{
		calc:      calc,
		textures:  textures,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	tc.ExtendBaseWidget(tc)
	return tc
}

func (tc *TreeCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newTreeCanvasRenderer(tc)
}

type treeCanvasRenderer struct {
	tc      *TreeCanvas
	objects []fyne.CanvasObject
}

func newTreeCanvasRenderer(tc *TreeCanvas) *treeCanvasRenderer {
	r := &treeCanvasRenderer{tc: tc}
	r.rebuild()
	return r
}

func (r *treeCanvasRenderer) rebuild() {
	r.objects = nil

	calc := r.tc.calc
	if len(calc.Pieces) == 0 {
		r.objects = append(r.objects, widget.NewLabel("No usable layers to preview."))
		return
	}

	img := RenderSilhouette(calc, r.tc.textures, int(r.tc.maxWidth), int(r.tc.maxHeight))
	view := canvas.NewImageFromImage(img)
	view.FillMode = canvas.ImageFillContain
	view.SetMinSize(fyne.NewSize(float32(img.Bounds().Dx()), float32(img.Bounds().Dy())))
	r.objects = append(r.objects, view)
}

func (r *treeCanvasRenderer) Layout(size fyne.Size) {
	for _, o := range r.objects {
		o.Resize(size)
	}
}

func (r *treeCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *treeCanvasRenderer) Destroy()                     {}
func (r *treeCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *treeCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.tc.maxWidth, r.tc.maxHeight)
}

// RenderSilhouette draws the stacked front profiles into an image. The
// scale fits both the base width and the stack height into the given
// pixel bounds; each layer is a scanline-filled trapezoid sampled from
// the wood texture.
func RenderSilhouette(calc model.TreeCalculation, textures *texture.Cache, pxW, pxH int) *image.RGBA {
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, pxW, pxH))
	if len(calc.Pieces) == 0 {
		return img
	}

	wood := textures.Get(texture.DefaultParams())
	woodBounds := wood.Bounds()

	baseWidth := calc.Pieces[0].Length
	stackHeight := calc.ActualHeight
	scale := float64(pxW) / baseWidth
	if s := float64(pxH) / stackHeight; s < scale {
		scale = s
	}

	centerX := float64(pxW) / 2
	bottomY := float64(pxH)

	for i, p := range calc.Pieces {
		inset := layerInset(p)
		halfBottom := p.Length / 2 * scale
		halfTop := halfBottom - inset*scale
		if halfTop < 0 {
			halfTop = 0
		}

		layerBottom := bottomY - float64(i)*p.Height*scale
		layerTop := layerBottom - p.Height*scale

		for py := int(layerTop); py < int(layerBottom); py++ {
			if py < 0 || py >= pxH {
				continue
			}
			// 0 at the layer bottom, 1 at its top
			frac := (layerBottom - float64(py)) / (layerBottom - layerTop)
			half := halfBottom + (halfTop-halfBottom)*frac

			x0 := int(centerX - half)
			x1 := int(centerX + half)
			for px := x0; px <= x1; px++ {
				if px < 0 || px >= pxW {
					continue
				}
				if px == x0 || px == x1 || py == int(layerTop) {
					img.SetRGBA(px, py, edgeColor)
					continue
				}
				tx := woodBounds.Min.X + px%woodBounds.Dx()
				ty := woodBounds.Min.Y + py%woodBounds.Dy()
				img.SetRGBA(px, py, wood.RGBAAt(tx, ty))
			}
		}
	}

	return img
}

// layerInset mirrors the mesh builder's cut offset for the 2D profile:
// height over the tangent of the cut angle, capped at half the length.
func layerInset(p model.TreePiece) float64 {
	if p.CutAngle <= 0 {
		return p.Length / 2
	}
	inset := p.Height / math.Tan(p.CutAngle*math.Pi/180)
	if inset > p.Length/2 {
		inset = p.Length / 2
	}
	return inset
}

// RenderSummaryLines builds the summary panel text for a calculation.
func RenderSummaryLines(calc model.TreeCalculation) []string {
	lines := []string{
		fmt.Sprintf("Usable layers: %d of %d", calc.NumberOfLayers, calc.TotalLayers),
		fmt.Sprintf("Cut angle: %.1f°", calc.CutAngle),
		fmt.Sprintf("Actual height: %.0f mm", calc.ActualHeight),
		fmt.Sprintf("Visible stack: %.2f m", calc.UsableLinearM),
		fmt.Sprintf("Topper platform: %.2f m", calc.StarPlatformM),
		fmt.Sprintf("Total stock: %.2f m", calc.TotalLinearM),
		fmt.Sprintf("Stock pieces to buy: %d", calc.NumberOfStockPieces),
	}
	return lines
}

// RenderCalculationView creates the scrollable preview plus summary used
// by the Preview tab.
func RenderCalculationView(calc model.TreeCalculation, textures *texture.Cache) fyne.CanvasObject {
	if len(calc.Pieces) == 0 {
		msg := widget.NewLabel("No usable layers. Adjust the dimensions and recalculate.")
		msg.Importance = widget.WarningImportance
		return msg
	}

	header := widget.NewLabel(fmt.Sprintf(
		"%d layers, %.0f mm tall, cut at %.1f°",
		calc.NumberOfLayers, calc.ActualHeight, calc.CutAngle,
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	treeCanvas := NewTreeCanvas(calc, textures, 420, 460)

	items := []fyne.CanvasObject{header, treeCanvas}
	if calc.HasWarnings() {
		for _, w := range calc.Warnings {
			warning := widget.NewLabel("WARNING: " + w)
			warning.Importance = widget.DangerImportance
			warning.Wrapping = fyne.TextWrapWord
			items = append(items, warning)
		}
	}

	return container.NewVScroll(container.NewVBox(items...))
}
