package delilah

import (
	"math"
	"slices"

	"github.com/mirstar13/delilah/internal/dlog"
)

// renderState bundles the per-frame values every draw helper needs, so
// they don't have to be threaded through individually.
type renderState struct {
	surface DrawSurface
	store   *SceneStore
	proj    Mat4
	near    float64
	far     float64
	projD   float64
	height  float64
}

// render is the Renderer component (§4.3): builds the view and
// projection matrices, transforms every vertex into camera- and
// projected-screen space, culls and Z-sorts every scene object, and
// dispatches the surviving ones to surface in back-to-front order.
func render(surface DrawSurface, store *SceneStore, cam *CameraState, width, height int) {
	if width < 2 || height < 2 {
		dlog.Fault("render target must be at least 2x2, got %dx%d", width, height)
	}

	bg := cam.BackgroundColor()
	surface.SetFillColor(bg.R, bg.G, bg.B)
	surface.FillRect(0, 0, float64(width), float64(height))

	if store == nil {
		return
	}

	pose := cam.Camera()
	proj := cam.Projection()

	view := IdentityMat4()
	view.Translate(-pose.X, -pose.Y, -pose.Z).
		RotateY(-pose.Yaw * 2 * math.Pi).
		RotateX(-pose.Pitch * math.Pi / 2).
		RotateZ(-pose.Roll * 2 * math.Pi)

	if !view.IsFinite() {
		dlog.Warnf("view matrix is non-finite, skipping frame")
		return
	}

	projD := 1.0 / math.Tan(proj.FOV*math.Pi/2.0)
	projMat := IdentityMat4()
	projMat.Perspective(projD).
		Scale(float64(height)/2, -float64(height)/2, 1).
		Translate(float64(width)/2, float64(height)/2, 0)

	for i, v := range store.Vertices {
		cs := view.Transform(v)
		store.camSpace[i] = cs
		store.projSpace[i] = projMat.Transform(cs)
	}

	for i, obj := range store.Objects {
		accepted, z := cullSceneObject(obj, store.camSpace, proj.Near, proj.Far)
		if !accepted {
			store.paintKeys[i] = unreachableKeyMask
			continue
		}
		q := quantizeZ(z, proj.Near, proj.Far)
		store.paintKeys[i] = (uint32(q) << 16) | uint32(i)
	}

	slices.Sort(store.paintKeys)

	rs := &renderState{
		surface: surface,
		store:   store,
		proj:    projMat,
		near:    proj.Near,
		far:     proj.Far,
		projD:   projD,
		height:  float64(height),
	}

	for _, key := range store.paintKeys {
		if key == unreachableKeyMask {
			break
		}
		idx := int(key & 0xFFFF)
		drawObject(rs, store.Objects[idx])
	}
}

// cullSceneObject reports whether obj survives near/far/backface culling
// and, if so, its unquantized paint-sort Z centroid (§4.3 per-kind rules).
func cullSceneObject(obj SceneObject, camSpace []Point, near, far float64) (bool, float64) {
	switch obj.Kind {
	case KindTriangle:
		t := obj.Triangle
		v1, v2, v3 := camSpace[t.VA], camSpace[t.VB], camSpace[t.VC]
		normal := cross(sub(v2, v1), sub(v3, v1))
		if dot(v1, normal) >= 0 {
			return false, 0
		}
		if v1.Z >= near && v2.Z >= near && v3.Z >= near {
			return false, 0
		}
		if v1.Z <= far && v2.Z <= far && v3.Z <= far {
			return false, 0
		}
		return true, (v1.Z + v2.Z + v3.Z) / 3.0

	case KindLine:
		l := obj.Line
		a, b := camSpace[l.VA], camSpace[l.VB]
		if a.Z >= near && b.Z >= near {
			return false, 0
		}
		if a.Z <= far && b.Z <= far {
			return false, 0
		}
		return true, (a.Z + b.Z) / 2.0

	case KindSphere:
		sp := obj.Sphere
		z := camSpace[sp.Origin].Z
		if !(z > far && z < near) {
			return false, 0
		}
		return true, z

	case KindPoint:
		p := obj.Point
		z := camSpace[p.Vertex].Z
		if !(z > far && z < near) {
			return false, 0
		}
		return true, z
	}
	return false, 0
}

// quantizeZ maps a camera-space Z centroid into the 16-bit paint-sort
// range (§3 data model / §4.3): non-finite centroids are forced to 0,
// the value is clamped into [far, near], normalized against the near/far
// extent, and scaled to [0, 65535].
func quantizeZ(zCentroid, near, far float64) uint16 {
	if !isFinite(zCentroid) {
		zCentroid = 0
	}
	z := clampF(zCentroid, far, near)
	extent := near - far
	q := (z - far) / extent * 65535.0
	return clampU16(math.Round(q))
}

// drawObject dispatches a single accepted scene object to the surface.
func drawObject(rs *renderState, obj SceneObject) {
	switch obj.Kind {
	case KindTriangle:
		drawTriangle(rs, obj.Triangle)
	case KindLine:
		drawLine(rs, obj.Line)
	case KindSphere:
		drawSphere(rs, obj.Sphere)
	case KindPoint:
		drawPoint(rs, obj.Point)
	}
}

// drawTriangle draws t, clipping against the near/far slab first if any
// vertex falls outside it (§4.3.1). Edge styles are never rewritten by
// clipping — every subtriangle inherits the parent's Edges verbatim,
// preserving the reference quirk documented in §9.
func drawTriangle(rs *renderState, t *TriangleObject) {
	store := rs.store
	v1, v2, v3 := store.camSpace[t.VA], store.camSpace[t.VB], store.camSpace[t.VC]

	fullyInside := v1.Z < rs.near && v1.Z > rs.far &&
		v2.Z < rs.near && v2.Z > rs.far &&
		v3.Z < rs.near && v3.Z > rs.far

	if fullyInside {
		p1, p2, p3 := store.projSpace[t.VA], store.projSpace[t.VB], store.projSpace[t.VC]
		paintTriangle(rs, p1, p2, p3, t)
		return
	}

	sv1, sv2, sv3 := sortDescByZ(v1, v2, v3)
	kMax := triangleClipKMax(sv1, sv2, sv3, rs.near, rs.far)
	for k := 1; k <= kMax; k++ {
		c1, c2, c3 := clipTriangleIteration(sv1, sv2, sv3, rs.near, rs.far, k, kMax)
		p1, p2, p3 := rs.proj.Transform(c1), rs.proj.Transform(c2), rs.proj.Transform(c3)
		paintTriangle(rs, p1, p2, p3, t)
	}
}

// paintTriangle fills the triangle p1-p2-p3 and strokes whichever of its
// three edges (v0-v1, v1-v2, v2-v0) have a non-nil line style.
func paintTriangle(rs *renderState, p1, p2, p3 Point, t *TriangleObject) {
	surface := rs.surface
	fill := t.Fill.Decode()
	surface.SetFillColor(fill.R, fill.G, fill.B)
	surface.BeginPath()
	surface.MoveTo(p1.X, p1.Y)
	surface.LineTo(p2.X, p2.Y)
	surface.LineTo(p3.X, p3.Y)
	surface.ClosePath()
	surface.Fill()

	edges := [3][2]Point{{p1, p2}, {p2, p3}, {p3, p1}}
	for i, edgeIdx := range t.Edges {
		if edgeIdx == nil {
			continue
		}
		style := rs.store.LineStyles[*edgeIdx]
		ink := style.Color.Decode()
		surface.SetStrokeColor(ink.R, ink.G, ink.B)
		surface.SetLineWidth(style.Width)
		a, b := edges[i][0], edges[i][1]
		surface.BeginPath()
		surface.MoveTo(a.X, a.Y)
		surface.LineTo(b.X, b.Y)
		surface.Stroke()
	}
}

// drawLine draws l, clipping against the near/far slab if needed (§4.3.2).
func drawLine(rs *renderState, l *LineObject) {
	store := rs.store
	a, b := store.camSpace[l.VA], store.camSpace[l.VB]

	var p1, p2 Point
	if a.Z < rs.near && a.Z > rs.far && b.Z < rs.near && b.Z > rs.far {
		p1, p2 = store.projSpace[l.VA], store.projSpace[l.VB]
	} else {
		ca, cb := clipLine(a, b, rs.near, rs.far)
		p1, p2 = rs.proj.Transform(ca), rs.proj.Transform(cb)
	}

	style := store.LineStyles[l.StyleIdx]
	ink := style.Color.Decode()
	rs.surface.SetStrokeColor(ink.R, ink.G, ink.B)
	rs.surface.SetLineWidth(style.Width)
	rs.surface.BeginPath()
	rs.surface.MoveTo(p1.X, p1.Y)
	rs.surface.LineTo(p2.X, p2.Y)
	rs.surface.Stroke()
}

// drawSphere draws sp as a 2D circle centered at its origin's projected
// screen position, with a radius scaled for perspective (§4.3.3):
// r' = r * (projD * h/2) / (projD - z_o).
func drawSphere(rs *renderState, sp *SphereObject) {
	store := rs.store
	zOrigin := store.camSpace[sp.Origin].Z
	screen := store.projSpace[sp.Origin]

	denom := rs.projD - zOrigin
	if denom == 0 {
		return
	}
	rPrime := store.Radii[sp.RadiusIdx] * (rs.projD * rs.height / 2) / denom
	if !isFinite(rPrime) || rPrime <= 0 {
		return
	}

	surface := rs.surface
	if sp.Fill != nil {
		fill := sp.Fill.Decode()
		surface.SetFillColor(fill.R, fill.G, fill.B)
		surface.BeginPath()
		surface.Arc(screen.X, screen.Y, rPrime)
		surface.Fill()
	}
	if sp.StrokeStyleIdx != nil {
		style := store.LineStyles[*sp.StrokeStyleIdx]
		ink := style.Color.Decode()
		surface.SetStrokeColor(ink.R, ink.G, ink.B)
		surface.SetLineWidth(style.Width)
		surface.BeginPath()
		surface.Arc(screen.X, screen.Y, rPrime)
		surface.Stroke()
	}
}

// drawPoint draws p using its style's shape, at half-size k = Size/2
// around its projected screen position (§4.3.4). Plus and cross are
// stroke-only: they are a pair of open segments, never a closed path.
func drawPoint(rs *renderState, p *PointObject) {
	store := rs.store
	style := store.PointStyles[p.StyleIdx]
	screen := store.projSpace[p.Vertex]
	cx, cy := screen.X, screen.Y
	k := style.Size / 2
	surface := rs.surface

	switch style.Shape {
	case ShapePlus:
		if style.Stroke > 0 {
			ink := style.Ink.Decode()
			surface.SetStrokeColor(ink.R, ink.G, ink.B)
			surface.SetLineWidth(style.Stroke)
			surface.BeginPath()
			surface.MoveTo(cx-k, cy)
			surface.LineTo(cx+k, cy)
			surface.Stroke()
			surface.BeginPath()
			surface.MoveTo(cx, cy-k)
			surface.LineTo(cx, cy+k)
			surface.Stroke()
		}
		return

	case ShapeCross:
		if style.Stroke > 0 {
			ink := style.Ink.Decode()
			surface.SetStrokeColor(ink.R, ink.G, ink.B)
			surface.SetLineWidth(style.Stroke)
			surface.BeginPath()
			surface.MoveTo(cx-k, cy-k)
			surface.LineTo(cx+k, cy+k)
			surface.Stroke()
			surface.BeginPath()
			surface.MoveTo(cx+k, cy-k)
			surface.LineTo(cx-k, cy+k)
			surface.Stroke()
		}
		return
	}

	tracePointPath := func() {
		surface.BeginPath()
		switch style.Shape {
		case ShapeCircle:
			surface.Arc(cx, cy, k)
		case ShapeSquare:
			surface.Rect(cx-k, cy-k, style.Size, style.Size)
		case ShapeDiamond:
			surface.MoveTo(cx, cy-k)
			surface.LineTo(cx+k, cy)
			surface.LineTo(cx, cy+k)
			surface.LineTo(cx-k, cy)
			surface.ClosePath()
		case ShapeUp:
			surface.MoveTo(cx, cy-k)
			surface.LineTo(cx+k, cy+k)
			surface.LineTo(cx-k, cy+k)
			surface.ClosePath()
		case ShapeDown:
			surface.MoveTo(cx, cy+k)
			surface.LineTo(cx+k, cy-k)
			surface.LineTo(cx-k, cy-k)
			surface.ClosePath()
		case ShapeLeft:
			surface.MoveTo(cx-k, cy)
			surface.LineTo(cx+k, cy-k)
			surface.LineTo(cx+k, cy+k)
			surface.ClosePath()
		case ShapeRight:
			surface.MoveTo(cx+k, cy)
			surface.LineTo(cx-k, cy-k)
			surface.LineTo(cx-k, cy+k)
			surface.ClosePath()
		}
	}

	if style.Fill != nil {
		fill := style.Fill.Decode()
		surface.SetFillColor(fill.R, fill.G, fill.B)
		tracePointPath()
		surface.Fill()
	}
	if style.Stroke > 0 {
		ink := style.Ink.Decode()
		surface.SetStrokeColor(ink.R, ink.G, ink.B)
		surface.SetLineWidth(style.Stroke)
		tracePointPath()
		surface.Stroke()
	}
}
