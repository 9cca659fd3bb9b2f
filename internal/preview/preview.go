// Package preview draws the tile map to an image. It stands in for the sprite
// renderer when a host wants to see the map without loading the artwork.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/paint"
	"github.com/gravitas-games/hexpaint/internal/terrain"
	"github.com/gravitas-games/hexpaint/internal/tilemap"
)

// Options controls what is drawn.
type Options struct {
	Width  int
	Height int
	Camera camera.State
	Labels bool
	// Highlight classifies cells against the hover; nil draws no highlight.
	Highlight func(hex.Index) paint.Highlight
}

var (
	background  = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	outline     = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	hoverColor  = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	reachColor  = color.RGBA{R: 255, G: 255, B: 255, A: 70}
	labelColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	familyColor = map[terrain.Family]color.RGBA{
		terrain.FamilyBlank:    {R: 200, G: 200, B: 200, A: 255},
		terrain.FamilyPlains:   {R: 120, G: 190, B: 90, A: 255},
		terrain.FamilyDesert:   {R: 225, G: 195, B: 120, A: 255},
		terrain.FamilyAquatic:  {R: 60, G: 120, B: 200, A: 255},
		terrain.FamilyMountain: {R: 130, G: 120, B: 110, A: 255},
		terrain.FamilyForest:   {R: 40, G: 110, B: 50, A: 255},
		terrain.FamilySwamp:    {R: 90, G: 100, B: 70, A: 255},
		terrain.FamilyArctic:   {R: 235, G: 240, B: 250, A: 255},
	}
)

// Color returns the fill used for a tag.
func Color(t terrain.Tag) color.RGBA {
	if t == terrain.None {
		return color.RGBA{}
	}
	return familyColor[t.Family()]
}

// Render draws every tile in store as seen through an orthographic camera.
func Render(store *tilemap.Store, layout hex.Layout, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}
	zoom := opts.Camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w, h := float64(opts.Width), float64(opts.Height)
	toScreen := func(p hex.Point) (float64, float64) {
		return (p.X-opts.Camera.Translation.X)/zoom + w/2,
			h/2 - (p.Y-opts.Camera.Translation.Y)/zoom
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(background)
	dc.Clear()

	var hovered *tilemap.Tile
	store.Each(func(t tilemap.Tile) {
		var hl paint.Highlight
		if opts.Highlight != nil {
			hl = opts.Highlight(t.Index)
		}
		scale := 1.0
		if hl.Has(paint.HighlightHovered) {
			scale = paint.HoverScale
			tile := t
			hovered = &tile
		}
		tracePolygon(dc, layout, t.Cube(), scale, toScreen)
		dc.SetColor(Color(t.Tag))
		dc.FillPreserve()
		dc.SetColor(outline)
		dc.SetLineWidth(1)
		dc.Stroke()

		if hl.Has(paint.HighlightReachable) {
			tracePolygon(dc, layout, t.Cube(), 1, toScreen)
			dc.SetColor(reachColor)
			dc.Fill()
		}
		if opts.Labels {
			x, y := toScreen(layout.CubeToWorld(t.Cube()))
			dc.SetColor(labelColor)
			dc.DrawStringAnchored(t.Index.String(), x, y, 0.5, 0.5)
		}
	})

	// The hovered cell is drawn last so the pop-out covers its neighbours.
	if hovered != nil {
		tracePolygon(dc, layout, hovered.Cube(), paint.HoverScale, toScreen)
		dc.SetColor(Color(hovered.Tag))
		dc.FillPreserve()
		dc.SetColor(hoverColor)
		dc.SetLineWidth(3)
		dc.Stroke()
	}
	return dc.Image(), nil
}

func tracePolygon(dc *gg.Context, layout hex.Layout, c hex.Cube, scale float64, toScreen func(hex.Point) (float64, float64)) {
	center := layout.CubeToWorld(c)
	dc.NewSubPath()
	for i, corner := range layout.Corners(c) {
		x, y := toScreen(center.Add(corner.Sub(center).Scale(scale)))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}
