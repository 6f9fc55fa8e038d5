// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster draws into an RGBA image. Text is always drawn with a fixed 7x13 face,
// the requested size is ignored.
type Raster struct {
	Image       *image.RGBA
	fillColor   color.NRGBA
	strokeColor color.NRGBA
	lineWidth   float64
	opacity     float64
}

func NewRaster(width, height int, background color.NRGBA) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Raster{Image: img, lineWidth: 1, opacity: 1}
}

func (r *Raster) faded(c color.NRGBA) color.NRGBA {
	c.A = uint8(float64(c.A)*r.opacity + 0.5)
	return c
}

func (r *Raster) polygon(pts []Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	b := r.Image.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(r.Image, b, image.NewUniform(r.faded(c)), image.Point{})
}

func (r *Raster) SetFillColor(c color.NRGBA) {
	r.fillColor = c
}

func (r *Raster) SetStrokeColor(c color.NRGBA) {
	r.strokeColor = c
}

func (r *Raster) SetLineWidth(w float64) {
	r.lineWidth = w
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.polygon(RectPoints(x, y, w, h), r.fillColor)
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	r.StrokePolyline(closed(RectPoints(x, y, w, h)))
}

func (r *Raster) StrokeLine(from, to Point) {
	r.StrokePolyline([]Point{from, to})
}

// StrokePolyline draws each segment separately, overlapping joins are blended twice.
func (r *Raster) StrokePolyline(pts []Point) {
	for i := 1; i < len(pts); i++ {
		r.polygon(segmentQuad(pts[i-1], pts[i], r.lineWidth), r.strokeColor)
	}
}

func (r *Raster) FillPolygon(pts []Point) {
	r.polygon(pts, r.fillColor)
}

func (r *Raster) FillSlice(center Point, radius, start, sweep float64) {
	r.polygon(SlicePoints(center, radius, start, sweep), r.fillColor)
}

func (r *Raster) StrokeSlice(center Point, radius, start, sweep float64) {
	r.StrokePolyline(closed(SlicePoints(center, radius, start, sweep)))
}

func (r *Raster) StrokeArc(center Point, radius, start, sweep float64) {
	r.StrokePolyline(ArcPoints(center, radius, start, sweep))
}

func (r *Raster) DrawText(at Point, size float64, s string) {
	d := font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(r.faded(r.fillColor)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(at.X), int(at.Y)),
	}
	d.DrawString(s)
}

func (r *Raster) Transparent(opacity float64, fn func() error) error {
	prev := r.opacity
	r.opacity *= opacity
	defer func() { r.opacity = prev }()
	return fn()
}
