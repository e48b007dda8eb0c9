package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/keyframer/internal/keyframe"
)

var (
	background = color.RGBA{24, 24, 28, 255}
	barColor   = color.RGBA{90, 170, 255, 255}
	gridColor  = color.RGBA{60, 60, 68, 255}
	textColor  = color.RGBA{220, 220, 220, 255}
)

// Render draws a track's per-frame strengths as a bar chart. frameCount sets
// the horizontal scale; with an unknown count (-1) the scale ends at the last
// scheduled frame. Frames without a keyframe stay empty.
//
// Drawing happens at twice the requested size and is scaled down for quality.
func Render(title string, keys *keyframe.Collection, frameCount, width, height int) *image.RGBA {
	w, h := width*2, height*2
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)

	frames := keys.Sorted()

	lastIndex := frameCount - 1
	if lastIndex < 0 {
		lastIndex = -1
		if len(frames) > 0 {
			lastIndex = frames[len(frames)-1].Index
		}
	}

	maxStrength := 1.0
	for _, kf := range frames {
		if kf.Strength > maxStrength {
			maxStrength = kf.Strength
		}
	}

	const margin = 40
	plotW := w - 2*margin
	plotH := h - 2*margin

	// Baseline and strength-1.0 grid line
	drawHLine(canvas, margin, w-margin, h-margin, gridColor)
	drawHLine(canvas, margin, w-margin, h-margin-int(float64(plotH)/maxStrength), gridColor)

	if lastIndex >= 0 {
		slot := float64(plotW) / float64(lastIndex+1)
		barW := int(slot * 0.8)
		if barW < 2 {
			barW = 2
		}

		for _, kf := range frames {
			if kf.Index < 0 || kf.Index > lastIndex {
				continue
			}
			barH := int(float64(plotH) * kf.Strength / maxStrength)
			x0 := margin + int(float64(kf.Index)*slot)
			y0 := h - margin - barH
			fillRect(canvas, x0, y0, x0+barW, h-margin, barColor)
		}
	}

	drawString(canvas, margin, margin/2+6, title)
	drawString(canvas, margin, h-margin/4, fmt.Sprintf("frames: %d  keyframes: %d  max: %.2f", lastIndex+1, len(frames), maxStrength))

	// Scale down to the requested size
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Over, nil)
	return out
}

// WritePNG writes the rendered chart to a PNG file
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func drawString(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
