package preview

import (
	"image/color"
	"testing"

	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/paint"
	"github.com/gravitas-games/hexpaint/internal/terrain"
	"github.com/gravitas-games/hexpaint/internal/tilemap"
)

var layout = hex.Layout{Step: hex.Point{X: 30, Y: 28}, Orientation: hex.Rotated}

func TestRenderFillsTilesAtCenter(t *testing.T) {
	store := tilemap.New(7)
	store.UpsertTag(0, terrain.OceanWaves)

	img, err := Render(store, layout, Options{Width: 200, Height: 200, Camera: camera.State{Zoom: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("expected 200x200 image, got %v", b)
	}
	got := color.RGBAModel.Convert(img.At(100, 100)).(color.RGBA)
	if got != Color(terrain.OceanWaves) {
		t.Fatalf("expected ocean at the origin, got %+v", got)
	}
	corner := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if corner != background {
		t.Fatalf("expected background in the corner, got %+v", corner)
	}
}

func TestRenderFollowsCamera(t *testing.T) {
	store := tilemap.New(0)
	far := hex.ToIndex(hex.NewCube(6, -3))
	store.UpsertTag(far, terrain.SnowField)

	center := layout.CubeToWorld(hex.NewCube(6, -3))
	img, err := Render(store, layout, Options{Width: 100, Height: 100, Camera: camera.State{Translation: center, Zoom: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := color.RGBAModel.Convert(img.At(50, 50)).(color.RGBA)
	if got != Color(terrain.SnowField) {
		t.Fatalf("expected snow under the camera, got %+v", got)
	}
}

func TestRenderHoverOutline(t *testing.T) {
	store := tilemap.New(7)
	hl := func(i hex.Index) paint.Highlight {
		if i == 0 {
			return paint.HighlightHovered | paint.HighlightReachable
		}
		return 0
	}
	if _, err := Render(store, layout, Options{Width: 64, Height: 64, Labels: true, Highlight: hl}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderRejectsEmptySize(t *testing.T) {
	if _, err := Render(tilemap.New(1), layout, Options{}); err == nil {
		t.Fatal("expected error for empty size")
	}
}
