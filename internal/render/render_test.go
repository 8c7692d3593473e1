package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/mj1618/window-getter/internal/model"
)

func rect(x, y, w, h float64) *[4]float64 {
	return &[4]float64{x, y, w, h}
}

func TestMap_NoBounds(t *testing.T) {
	_, err := Map([]model.Window{{ID: 1}}, Options{})
	if !errors.Is(err, ErrNothingToDraw) {
		t.Errorf("got %v, want ErrNothingToDraw", err)
	}
}

func TestMap_SizeFromExtent(t *testing.T) {
	windows := []model.Window{
		{ID: 1, Bounds: rect(0, 0, 400, 300)},
		{ID: 2, Bounds: rect(200, 100, 400, 300)},
	}
	img, err := Map(windows, Options{Margin: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(620, 420) {
		t.Errorf("got size %v, want (620,420)", got)
	}
}

func TestMap_ScalesDownWideDesktops(t *testing.T) {
	windows := []model.Window{{ID: 1, Bounds: rect(-1600, 0, 3200, 800)}}
	img, err := Map(windows, Options{MaxWidth: 800})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(800, 200) {
		t.Errorf("got size %v, want (800,200)", got)
	}
}

func TestMap_IgnoresMinimizedAndHidden(t *testing.T) {
	windows := []model.Window{
		{ID: 1, Bounds: rect(0, 0, 1920, 1080)},
		{ID: 2, Bounds: rect(-32000, -32000, 160, 28)},
		{ID: 3, Hidden: true, Bounds: rect(3000, 2000, 800, 600)},
	}
	img, err := Map(windows, Options{MaxWidth: 1600})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(1600, 900) {
		t.Errorf("got size %v, want (1600,900)", got)
	}
}

func TestMap_OnlyHiddenIsNothingToDraw(t *testing.T) {
	windows := []model.Window{
		{ID: 1, Hidden: true, Bounds: rect(0, 0, 100, 100)},
		{ID: 2, Bounds: rect(-32000, -32000, 160, 28)},
	}
	if _, err := Map(windows, Options{}); !errors.Is(err, ErrNothingToDraw) {
		t.Errorf("got %v, want ErrNothingToDraw", err)
	}
}

func TestMap_DrawsOutline(t *testing.T) {
	windows := []model.Window{{ID: 1, Bounds: rect(0, 0, 100, 100)}}
	img, err := Map(windows, Options{Margin: 5})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(5, 5); got != boxColor {
		t.Errorf("corner pixel: got %v, want %v", got, boxColor)
	}
	if got := img.RGBAAt(0, 0); got != background {
		t.Errorf("margin pixel: got %v, want %v", got, background)
	}
}

func TestMap_SkipsUnreadableBounds(t *testing.T) {
	windows := []model.Window{
		{ID: 1, Errors: map[string]string{"bounds": "invalid window bounds"}},
		{ID: 2, Bounds: rect(10, 10, 50, 50)},
	}
	img, err := Map(windows, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(50, 50) {
		t.Errorf("got size %v, want (50,50)", got)
	}
}

func TestLabel(t *testing.T) {
	w := model.Window{ID: 7, App: "Mail", Bounds: rect(12, 34, 1, 1)}
	if got := label(w, LabelIDs); got != "[7] Mail" {
		t.Errorf("got %q", got)
	}
	if got := label(w, LabelCoords); got != "(12,34)" {
		t.Errorf("got %q", got)
	}
	w.App = ""
	if got := label(w, LabelIDs); got != "[7]" {
		t.Errorf("got %q", got)
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	img, err := Map([]model.Window{{ID: 1, Bounds: rect(0, 0, 64, 32)}}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("got %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestDrawRectangle_ClampsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	drawRectangle(img, -5, -5, 50, 50, boxColor)
	if img.RGBAAt(0, 0) != boxColor || img.RGBAAt(9, 9) != boxColor {
		t.Error("clamped outline should touch the image edges")
	}
}
