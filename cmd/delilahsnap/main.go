// Command delilahsnap loads a scene (or the built-in default) and
// renders a single frame to a PNG file. It exists to exercise the
// delilah.DrawSurface contract against something that doesn't need a
// window: a plain image.RGBA canvas.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/mirstar13/delilah"
	"github.com/mirstar13/delilah/internal/dlog"
)

func main() {
	scenePath := flag.String("scene", "", "path to a scene JSON file (default scene if empty)")
	out := flag.String("out", "out.png", "output PNG path")
	width := flag.Int("width", 640, "frame width in pixels")
	height := flag.Int("height", 480, "frame height in pixels")
	flag.Parse()

	eng := delilah.NewEngine()
	if *scenePath == "" {
		eng.LoadDefaultScene()
	} else {
		data, err := os.ReadFile(*scenePath)
		if err != nil {
			dlog.Fault("reading scene file: %v", err)
		}
		if !eng.LoadScene(data) {
			dlog.Fault("loading scene: %s", eng.LastError())
		}
	}

	surface := newCanvasSurface(*width, *height)
	eng.Render(surface, *width, *height)

	f, err := os.Create(*out)
	if err != nil {
		dlog.Fault("creating output file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, surface.img); err != nil {
		dlog.Fault("encoding png: %v", err)
	}
}

// canvasSurface is a minimal image.RGBA-backed delilah.DrawSurface.
// Paths are a flat list of straight segments (Arc/Rect are expanded
// into polygons up front); Fill uses even-odd scanline rasterization,
// Stroke fills each segment as a rectangle of the current line width.
type canvasSurface struct {
	img    *image.RGBA
	fill   color.RGBA
	stroke color.RGBA
	width  float64

	subpaths [][]delilah.Point
	current  []delilah.Point
}

func newCanvasSurface(w, h int) *canvasSurface {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &canvasSurface{img: img, width: 1}
}

func (c *canvasSurface) SetFillColor(r, g, b uint8) {
	c.fill = color.RGBA{R: r, G: g, B: b, A: 255}
}

func (c *canvasSurface) SetStrokeColor(r, g, b uint8) {
	c.stroke = color.RGBA{R: r, G: g, B: b, A: 255}
}

func (c *canvasSurface) SetLineWidth(w float64) {
	c.width = w
}

func (c *canvasSurface) BeginPath() {
	c.subpaths = nil
	c.current = nil
}

func (c *canvasSurface) MoveTo(x, y float64) {
	if len(c.current) > 0 {
		c.subpaths = append(c.subpaths, c.current)
	}
	c.current = []delilah.Point{{X: x, Y: y}}
}

func (c *canvasSurface) LineTo(x, y float64) {
	c.current = append(c.current, delilah.Point{X: x, Y: y})
}

func (c *canvasSurface) ClosePath() {
	if len(c.current) > 0 {
		c.current = append(c.current, c.current[0])
	}
}

func (c *canvasSurface) Arc(cx, cy, r float64) {
	const segments = 32
	c.MoveTo(cx+r, cy)
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		c.LineTo(cx+r*math.Cos(theta), cy+r*math.Sin(theta))
	}
}

func (c *canvasSurface) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *canvasSurface) Fill() {
	for _, poly := range c.closedSubpaths() {
		fillPolygon(c.img, poly, c.fill)
	}
}

func (c *canvasSurface) Stroke() {
	for _, sub := range c.closedSubpaths() {
		for i := 0; i+1 < len(sub); i++ {
			strokeSegment(c.img, sub[i], sub[i+1], c.width, c.stroke)
		}
	}
}

func (c *canvasSurface) FillRect(x, y, w, h float64) {
	c.BeginPath()
	c.Rect(x, y, w, h)
	c.Fill()
}

func (c *canvasSurface) closedSubpaths() [][]delilah.Point {
	all := c.subpaths
	if len(c.current) > 0 {
		all = append(all, c.current)
	}
	return all
}

// fillPolygon rasterizes poly with an even-odd scanline fill.
func fillPolygon(img *image.RGBA, poly []delilah.Point, col color.RGBA) {
	if len(poly) < 3 {
		return
	}
	bounds := img.Bounds()
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	yStart := int(math.Max(float64(bounds.Min.Y), math.Floor(minY)))
	yEnd := int(math.Min(float64(bounds.Max.Y), math.Ceil(maxY)))

	for y := yStart; y < yEnd; y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := 0; i < len(poly)-1; i++ {
			a, b := poly[i], poly[i+1]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if x1 < x0 {
				x0, x1 = x1, x0
			}
			for x := int(math.Max(float64(bounds.Min.X), math.Round(x0))); x < int(math.Min(float64(bounds.Max.X), math.Round(x1))); x++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// strokeSegment draws a-b as a filled rectangle of the given width.
func strokeSegment(img *image.RGBA, a, b delilah.Point, width float64, col color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	poly := []delilah.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
		{X: a.X + nx, Y: a.Y + ny},
	}
	fillPolygon(img, poly, col)
}
