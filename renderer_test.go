package delilah

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSurface is a DrawSurface that only counts how many times each
// terminal drawing operation runs, enough to tell whether a frame drew
// anything beyond the background clear.
type fakeSurface struct {
	fillRects int
	fills     int
	strokes   int
}

func (f *fakeSurface) SetFillColor(r, g, b uint8)   {}
func (f *fakeSurface) SetStrokeColor(r, g, b uint8) {}
func (f *fakeSurface) SetLineWidth(w float64)       {}
func (f *fakeSurface) BeginPath()                   {}
func (f *fakeSurface) MoveTo(x, y float64)          {}
func (f *fakeSurface) LineTo(x, y float64)          {}
func (f *fakeSurface) ClosePath()                   {}
func (f *fakeSurface) Arc(cx, cy, r float64)        {}
func (f *fakeSurface) Rect(x, y, w, h float64)      {}
func (f *fakeSurface) Fill()                        { f.fills++ }
func (f *fakeSurface) Stroke()                      { f.strokes++ }
func (f *fakeSurface) FillRect(x, y, w, h float64)  { f.fillRects++ }

// TestRenderDefaultSceneDraws is scenario S1: rendering the built-in
// scene with an unrotated camera moved back to Z=50 clears the
// background once, fills grid points and strokes the axis line.
func TestRenderDefaultSceneDraws(t *testing.T) {
	eng := NewEngine()
	eng.SetCamera(CameraPose{Z: 50})
	eng.LoadDefaultScene()

	surface := &fakeSurface{}
	eng.Render(surface, 200, 200)

	if surface.fillRects != 1 {
		t.Errorf("background fillRects = %d, want 1", surface.fillRects)
	}
	if surface.fills == 0 {
		t.Errorf("expected the default scene's points to fill, got 0 fills")
	}
	if surface.strokes == 0 {
		t.Errorf("expected the default scene's axis line to stroke, got 0 strokes")
	}
}

// TestRenderSkipsTriangleBehindCamera is scenario S2: a triangle whose
// vertices are all beyond the near plane (Z >= near, "behind" an
// identity camera looking down -Z) is culled entirely.
func TestRenderSkipsTriangleBehindCamera(t *testing.T) {
	doc := `{
		"vertex": [0,0,5, 1,0,5, 0,1,5],
		"scene": [0,1,2, 992, 0]
	}`
	eng := NewEngine()
	require.True(t, eng.LoadScene([]byte(doc)))

	surface := &fakeSurface{}
	eng.Render(surface, 100, 100)

	if surface.fills != 0 {
		t.Errorf("expected the behind-camera triangle to be culled, got %d fills", surface.fills)
	}
}

// TestRenderClipsLineAtNearPlane is scenario S5: a line with one
// endpoint beyond the near plane is clipped and still drawn.
func TestRenderClipsLineAtNearPlane(t *testing.T) {
	doc := `{
		"vertex": [0,0,5, 0,0,-5],
		"scene": [0,1,65535,0,0],
		"lstyle": [{"width":2.0,"color":992}]
	}`
	eng := NewEngine()
	require.True(t, eng.LoadScene([]byte(doc)))

	surface := &fakeSurface{}
	eng.Render(surface, 100, 100)

	if surface.strokes != 1 {
		t.Errorf("expected the clipped line to stroke once, got %d", surface.strokes)
	}
}

func TestCullSceneObjectRejectsPointOutsideSlab(t *testing.T) {
	camSpace := []Point{{Z: 10}}
	obj := SceneObject{Kind: KindPoint, Point: &PointObject{Vertex: 0}}
	accepted, _ := cullSceneObject(obj, camSpace, 0, -100)
	if accepted {
		t.Errorf("point beyond near should be rejected")
	}
}

func TestQuantizeZClampsNonFiniteToZero(t *testing.T) {
	got := quantizeZ(posInf(), 0, -100)
	want := quantizeZ(0, 0, -100)
	if got != want {
		t.Errorf("non-finite centroid quantized to %d, want %d (same as centroid=0)", got, want)
	}
}

func TestQuantizeZMapsNearToMax(t *testing.T) {
	got := quantizeZ(0, 0, -100)
	if got != 65535 {
		t.Errorf("quantizeZ(near) = %d, want 65535", got)
	}
}

func TestQuantizeZMapsFarToZero(t *testing.T) {
	got := quantizeZ(-100, 0, -100)
	if got != 0 {
		t.Errorf("quantizeZ(far) = %d, want 0", got)
	}
}
