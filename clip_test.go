package delilah

import "testing"

func TestSortDescByZOrdersDescending(t *testing.T) {
	v1, v2, v3 := sortDescByZ(
		Point{Z: -1}, Point{Z: 5}, Point{Z: 2},
	)
	if !(v1.Z >= v2.Z && v2.Z >= v3.Z) {
		t.Errorf("got %v, %v, %v, not descending", v1, v2, v3)
	}
	if v1.Z != 5 || v2.Z != 2 || v3.Z != -1 {
		t.Errorf("got Zs %v,%v,%v, want 5,2,-1", v1.Z, v2.Z, v3.Z)
	}
}

// TestTriangleClipKMaxSingleNearViolationNeedsTwoSubtriangles is
// scenario S3: a triangle with exactly one vertex beyond the near
// plane must clip into exactly two subtriangles.
func TestTriangleClipKMaxSingleNearViolationNeedsTwoSubtriangles(t *testing.T) {
	near, far := 0.0, -100.0
	v1 := Point{Z: 5}
	v2 := Point{Z: -1}
	v3 := Point{Z: -2}

	got := triangleClipKMax(v1, v2, v3, near, far)
	if got != 2 {
		t.Errorf("kMax = %d, want 2", got)
	}
}

func TestTriangleClipKMaxBothPlanesSingleViolationNeedsFour(t *testing.T) {
	near, far := 0.0, -10.0
	v1 := Point{Z: 5}
	v2 := Point{Z: -2}
	v3 := Point{Z: -20}

	got := triangleClipKMax(v1, v2, v3, near, far)
	if got != 4 {
		t.Errorf("kMax = %d, want 4", got)
	}
}

func TestTriangleClipKMaxFullyInsideIsOne(t *testing.T) {
	near, far := 0.0, -100.0
	v1 := Point{Z: -1}
	v2 := Point{Z: -2}
	v3 := Point{Z: -3}

	got := triangleClipKMax(v1, v2, v3, near, far)
	if got != 1 {
		t.Errorf("kMax = %d, want 1", got)
	}
}

func TestClipTriangleIterationSingleNearViolationProducesTwoDistinctTriangles(t *testing.T) {
	near, far := 0.0, -100.0
	v1 := Point{X: 0, Y: 0, Z: 5}
	v2 := Point{X: 1, Y: 0, Z: -1}
	v3 := Point{X: -1, Y: 0, Z: -2}

	kMax := triangleClipKMax(v1, v2, v3, near, far)
	a1, a2, a3 := clipTriangleIteration(v1, v2, v3, near, far, 1, kMax)
	b1, b2, b3 := clipTriangleIteration(v1, v2, v3, near, far, 2, kMax)

	for _, p := range []Point{a1, a2, a3, b1, b2, b3} {
		if p.Z > near {
			t.Errorf("clipped vertex %v still beyond near plane %v", p, near)
		}
	}
	if a1 == b1 && a2 == b2 && a3 == b3 {
		t.Errorf("the two subtriangles must differ")
	}
}

func TestClipLineClipsAtNearPlane(t *testing.T) {
	near, far := 0.0, -100.0
	a := Point{X: 0, Y: 0, Z: 5}
	b := Point{X: 0, Y: 0, Z: -1}

	c1, c2 := clipLine(a, b, near, far)
	if absDiff(c1.Z, near) > 1e-9 {
		t.Errorf("near-clipped endpoint Z = %v, want %v", c1.Z, near)
	}
	if c2 != b {
		t.Errorf("far endpoint unaffected, got %v, want %v", c2, b)
	}
}

func TestClipLineClipsAtFarPlane(t *testing.T) {
	near, far := 0.0, -10.0
	a := Point{X: 0, Y: 0, Z: -5}
	b := Point{X: 0, Y: 0, Z: -20}

	c1, c2 := clipLine(a, b, near, far)
	if c1 != a {
		t.Errorf("near endpoint unaffected, got %v, want %v", c1, a)
	}
	if absDiff(c2.Z, far) > 1e-9 {
		t.Errorf("far-clipped endpoint Z = %v, want %v", c2.Z, far)
	}
}
