package workspace

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

var (
	gridColor      = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	selectionColor = color.RGBA{R: 0xff, A: 0xff}
)

// selectionStroke is the highlight line width in workspace units
const selectionStroke = 2

// Renderer paints the workspace. It keeps one frame buffer and repaints it
// from scratch on every call.
type Renderer struct {
	cache *ImageCache
	frame *image.RGBA
}

// NewRenderer creates a renderer drawing part images from cache.
func NewRenderer(cache *ImageCache) *Renderer {
	return &Renderer{
		cache: cache,
		frame: image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize)),
	}
}

// Frame returns the last painted frame
func (r *Renderer) Frame() *image.RGBA {
	return r.frame
}

// Render clears the frame, draws the grid, then paints parts back to front
// and outlines the selected one. Parts whose image is not decoded yet are
// skipped; the count of skipped parts is returned.
func (r *Renderer) Render(parts []*PlacedPart, selectedID int64) int {
	draw.Draw(r.frame, r.frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawGrid(r.frame)

	skipped := 0
	for _, p := range parts {
		src, ok := r.cache.Get(p.Image)
		if !ok {
			skipped++
			continue
		}
		drawPart(r.frame, src, p, 1, 0, 0)
		if p.ID == selectedID {
			strokeRect(r.frame, p.Bounds(), selectionStroke, selectionColor)
		}
	}
	return skipped
}

func drawGrid(dst *image.RGBA) {
	b := dst.Bounds()
	for x := 0; x < b.Dx(); x += GridUnit {
		draw.Draw(dst, image.Rect(x, 0, x+1, b.Dy()), image.NewUniform(gridColor), image.Point{}, draw.Src)
	}
	for y := 0; y < b.Dy(); y += GridUnit {
		draw.Draw(dst, image.Rect(0, y, b.Dx(), y+1), image.NewUniform(gridColor), image.Point{}, draw.Src)
	}
}

// drawPart paints p onto dst at scale k with (ox, oy) subtracted after
// scaling. The transform is translate(center) · flip · rotate, with the image
// drawn centred on the transformed origin.
func drawPart(dst draw.Image, src image.Image, p *PlacedPart, k, ox, oy float64) {
	sb := src.Bounds()
	if sb.Empty() {
		return
	}

	w, h := p.Width()*k, p.Height()*k
	cx := float64(p.X)*k - ox + w/2
	cy := float64(p.Y)*k - oy + h/2
	kx, ky := w/float64(sb.Dx()), h/float64(sb.Dy())

	fx, fy := 1.0, 1.0
	if p.FlipH {
		fx = -1
	}
	if p.FlipV {
		fy = -1
	}
	sin, cos := sinCos(p.Rotation)

	a, b := fx*cos*kx, -fx*sin*ky
	d, e := fy*sin*kx, fy*cos*ky
	c := fx*(-cos*w/2+sin*h/2) + cx
	f := fy*(-sin*w/2-cos*h/2) + cy

	// source pixels are addressed from sb.Min
	mx, my := float64(sb.Min.X), float64(sb.Min.Y)
	m := f64.Aff3{
		a, b, c - a*mx - b*my,
		d, e, f - d*mx - e*my,
	}
	draw.NearestNeighbor.Transform(dst, m, src, sb, draw.Over, nil)
}

// sinCos is exact for quarter turns so axis-aligned parts land on whole pixels.
func sinCos(deg int) (float64, float64) {
	switch deg {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(float64(deg) * math.Pi / 180)
}

// strokeRect outlines r with a line of width lw centred on its edges.
func strokeRect(dst *image.RGBA, r Rect, lw int, col color.Color) {
	half := float64(lw) / 2
	outer := image.Rect(
		int(math.Floor(r.MinX-half)), int(math.Floor(r.MinY-half)),
		int(math.Ceil(r.MaxX+half)), int(math.Ceil(r.MaxY+half)),
	)
	inner := outer.Inset(lw)
	u := image.NewUniform(col)

	draw.Draw(dst, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), u, image.Point{}, draw.Src)
}
