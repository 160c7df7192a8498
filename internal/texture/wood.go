// Package texture generates procedural wood-grain images for the preview.
// Generation is owned by an explicit cache keyed by parameters instead of
// module-level singletons, so the UI can invalidate and regenerate when the
// user changes the look. Mesh generation never waits on a texture; a mesh
// is renderable with or without one bound.
package texture

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"
	"github.com/anthonynsimon/bild/transform"
)

// Params selects the look of a generated grain image and doubles as the
// cache key.
type Params struct {
	Width      int
	Height     int
	Contrast   float64 // 0..1, strength of the grain streaks
	BlurRadius float64 // softening applied after stretching
}

// DefaultParams returns parameters for a pine-like board texture.
func DefaultParams() Params {
	return Params{
		Width:      512,
		Height:     128,
		Contrast:   0.35,
		BlurRadius: 1.5,
	}
}

// Base wood tone the grain modulates around.
var woodTone = color.NRGBA{R: 196, G: 160, B: 110, A: 255}

// Cache owns generated textures. Not safe for concurrent use; the UI is
// single-threaded.
type Cache struct {
	images map[Params]*image.RGBA
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{images: make(map[Params]*image.RGBA)}
}

// Get returns the texture for the given parameters, generating it on first
// use.
func (c *Cache) Get(p Params) *image.RGBA {
	if img, ok := c.images[p]; ok {
		return img
	}
	img := Generate(p)
	c.images[p] = img
	return img
}

// Invalidate drops the cached texture for the given parameters.
func (c *Cache) Invalidate(p Params) {
	delete(c.images, p)
}

// InvalidateAll drops every cached texture.
func (c *Cache) InvalidateAll() {
	c.images = make(map[Params]*image.RGBA)
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	return len(c.images)
}

// Generate produces a wood-grain image: monochrome noise stretched along
// the length axis into streaks, softened, then toned toward woodTone.
func Generate(p Params) *image.RGBA {
	if p.Width <= 0 || p.Height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	// A narrow noise strip stretched to full width turns speckle into grain.
	seedW := p.Width / 16
	if seedW < 1 {
		seedW = 1
	}
	seed := noise.Generate(seedW, p.Height, &noise.Options{
		NoiseFn:    noise.Gaussian,
		Monochrome: true,
	})

	stretched := transform.Resize(seed, p.Width, p.Height, transform.Linear)
	if p.BlurRadius > 0 {
		stretched = blur.Gaussian(stretched, p.BlurRadius)
	}

	return tint(stretched, p.Contrast)
}

// tint maps the monochrome streaks onto the wood tone. contrast scales how
// far the streaks push the tone toward dark or light.
func tint(src *image.RGBA, contrast float64) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := float64(src.RGBAAt(x, y).R)/255.0 - 0.5
			f := 1 + gray*2*contrast
			out.SetRGBA(x, y, color.RGBA{
				R: clamp8(float64(woodTone.R) * f),
				G: clamp8(float64(woodTone.G) * f),
				B: clamp8(float64(woodTone.B) * f),
				A: 255,
			})
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
