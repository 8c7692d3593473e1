// Package render draws a map of window bounds as a PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/mj1618/window-getter/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNothingToDraw means no visible window had readable bounds.
var ErrNothingToDraw = errors.New("no window bounds to draw")

// LabelMode controls what text is drawn on each window.
type LabelMode int

const (
	// LabelIDs draws "[id] app".
	LabelIDs LabelMode = iota
	// LabelCoords draws "(x,y)" of the window origin.
	LabelCoords
)

// Options configures Map.
type Options struct {
	MaxWidth int // output width limit in pixels, 0 for 1600
	Margin   int // border around the desktop extent in pixels
	Labels   LabelMode
}

var (
	background   = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	boxColor     = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	staleColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// minimizedOrigin is where Windows parks minimized top-level windows.
const minimizedOrigin = -32000

// drawable reports whether w belongs on the map: it needs bounds, must not
// be hidden and must not sit at the minimized parking spot.
func drawable(w model.Window) bool {
	if w.Bounds == nil || w.Hidden {
		return false
	}
	return w.Bounds[0] > minimizedOrigin || w.Bounds[1] > minimizedOrigin
}

// Map draws every drawable window onto one image scaled to fit
// Options.MaxWidth. Windows are listed front to back, so they are painted
// in reverse and the frontmost label ends up on top.
func Map(windows []model.Window, opts Options) (*image.RGBA, error) {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 1600
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, w := range windows {
		if !drawable(w) {
			continue
		}
		b := w.Bounds
		minX = math.Min(minX, b[0])
		minY = math.Min(minY, b[1])
		maxX = math.Max(maxX, b[0]+b[2])
		maxY = math.Max(maxY, b[1]+b[3])
	}
	if math.IsInf(minX, 1) {
		return nil, ErrNothingToDraw
	}

	extentW, extentH := maxX-minX, maxY-minY
	scale := 1.0
	if extentW > float64(opts.MaxWidth) {
		scale = float64(opts.MaxWidth) / extentW
	}
	imgW := int(math.Ceil(extentW*scale)) + 2*opts.Margin
	imgH := int(math.Ceil(extentH*scale)) + 2*opts.Margin
	if imgW <= 0 || imgH <= 0 {
		return nil, fmt.Errorf("degenerate desktop extent %gx%g", extentW, extentH)
	}

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	project := func(v, origin float64) int {
		return int(math.Round((v-origin)*scale)) + opts.Margin
	}
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if !drawable(w) {
			continue
		}
		b := w.Bounds
		x1, y1 := project(b[0], minX), project(b[1], minY)
		x2, y2 := project(b[0]+b[2], minX), project(b[1]+b[3], minY)

		c := boxColor
		if w.Stale {
			c = staleColor
		}
		drawRectangle(img, x1, y1, x2, y2, c)
		drawTextWithOutline(img, label(w, opts.Labels), x1+(x2-x1)/2, y1+(y2-y1)/2, textColor, outlineColor)
	}
	return img, nil
}

func label(w model.Window, mode LabelMode) string {
	if mode == LabelCoords {
		return fmt.Sprintf("(%g,%g)", w.Bounds[0], w.Bounds[1])
	}
	if w.App == "" {
		return fmt.Sprintf("[%d]", w.ID)
	}
	return fmt.Sprintf("[%d] %s", w.ID, w.App)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// drawRectangle draws a rectangle outline, clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	x1, y1 = max(x1, bounds.Min.X), max(y1, bounds.Min.Y)
	x2, y2 = min(x2, bounds.Max.X), min(y2, bounds.Max.Y)
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline centers text on (x, y) with a one pixel outline.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13 glyphs are 7 pixels wide and 13 high.
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawString(img, text, offsetX, offsetY, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
