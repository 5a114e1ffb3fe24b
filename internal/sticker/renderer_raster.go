package sticker

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// rasterRenderer is the fallback strategy: plain image/draw compositing with a
// bitmap label face. Same geometry as the canvas renderer, lower label
// fidelity.
type rasterRenderer struct{}

func (rasterRenderer) name() string { return "raster" }

var (
	rasterBackground = color.RGBA{R: 13, G: 20, B: 41, A: 255}
	rasterBand       = color.RGBA{R: 5, G: 13, B: 33, A: 217}
)

func (rasterRenderer) render(c composition) (image.Image, error) {
	out := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	draw.Draw(out, out.Bounds(), image.NewUniform(rasterBackground), image.Point{}, draw.Src)

	r := insetRect(c.size, c.inset)
	b := c.src.Bounds()
	crop := coverCrop(b.Dx(), b.Dy(), r.Dx(), r.Dy()).Add(b.Min)
	xdraw.CatmullRom.Scale(out, r, c.src, crop, xdraw.Src, nil)

	if c.frame != nil {
		xdraw.CatmullRom.Scale(out, out.Bounds(), c.frame, c.frame.Bounds(), xdraw.Over, nil)
	}

	if c.label != "" {
		face := basicfont.Face7x13
		d := font.Drawer{
			Dst:  out,
			Src:  image.White,
			Face: face,
		}

		textW := d.MeasureString(c.label).Ceil()
		baselineY := r.Max.Y - face.Height
		x0 := (c.size - textW) / 2

		band := image.Rect(x0-8, baselineY-face.Ascent-4, x0+textW+8, baselineY+face.Descent+4)
		draw.Draw(out, band.Intersect(out.Bounds()), image.NewUniform(rasterBand), image.Point{}, draw.Over)

		d.Dot = fixed.P(x0, baselineY)
		d.DrawString(c.label)
	}

	return out, nil
}
