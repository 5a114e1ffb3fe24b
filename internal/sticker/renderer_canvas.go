package sticker

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// canvasRenderer is the primary strategy: a 2D graphics context with a proper
// TTF label face.
type canvasRenderer struct{}

func (canvasRenderer) name() string { return "canvas" }

func (canvasRenderer) render(c composition) (image.Image, error) {
	var face font.Face
	if c.label != "" {
		loaded, err := labelFace(float64(c.size) / 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLabelRender, err)
		}
		face = loaded
		defer face.Close()
	}

	dc := gg.NewContext(c.size, c.size)
	dc.SetRGB(0.05, 0.08, 0.16)
	dc.Clear()

	r := insetRect(c.size, c.inset)
	dc.DrawImage(scaleCover(c.src, r.Dx(), r.Dy()), r.Min.X, r.Min.Y)

	if c.frame != nil {
		dc.DrawImage(stretch(c.frame, c.size, c.size), 0, 0)
	}

	if c.label != "" {
		dc.SetFontFace(face)
		w, h := dc.MeasureString(c.label)

		cx := float64(c.size) / 2
		// Label sits just above the bottom inset boundary.
		cy := float64(r.Max.Y) - h*1.1
		pad := h * 0.7

		dc.SetRGBA(0.02, 0.05, 0.13, 0.85)
		dc.DrawRoundedRectangle(cx-w/2-pad, cy-h/2-pad/2, w+2*pad, h+pad, (h+pad)/2)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(c.label, cx, cy, 0.5, 0.35)
	}

	return dc.Image(), nil
}

func labelFace(sizePx float64) (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face: %w", err)
	}
	return face, nil
}

// scaleCover scales the centered cover-crop of src into a w x h image.
func scaleCover(src image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	crop := coverCrop(b.Dx(), b.Dy(), w, h).Add(b.Min)
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, crop, xdraw.Src, nil)
	return out
}

// stretch scales src to exactly w x h, preserving alpha.
func stretch(src image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return out
}
