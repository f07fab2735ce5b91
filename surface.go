package delilah

// DrawSurface is the abstract 2D drawing sink the Renderer issues
// filled/stroked paths to (§6). Coordinates are pixels, origin
// top-left. A DrawSurface is borrowed exclusively for the duration of a
// single Render call; its pen state (fill/stroke color, line width,
// current path) is clobbered by the Renderer and must not be relied on
// by the caller afterward (§5). LineCap/LineJoin/MiterLimit are assumed
// set once by the host and are never touched here.
type DrawSurface interface {
	SetFillColor(r, g, b uint8)
	SetStrokeColor(r, g, b uint8)
	SetLineWidth(w float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	Arc(cx, cy, r float64)
	Rect(x, y, w, h float64)

	Fill()
	Stroke()

	FillRect(x, y, w, h float64)
}
