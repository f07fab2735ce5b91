package delilah

// lerpPoint linearly interpolates from a to b at parameter t.
func lerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

// intersectAtZ finds the point on segment from->to whose Z equals
// targetZ, by linear interpolation in camera space (§4.3.1 step 3/4's
// "t = (near - z3)/(zk - z3)" recipe, generalized to either plane).
func intersectAtZ(from, to Point, targetZ float64) Point {
	t := (targetZ - from.Z) / (to.Z - from.Z)
	return lerpPoint(from, to, t)
}

// sortDescByZ returns v1, v2, v3 reordered so v1.Z >= v2.Z >= v3.Z, via
// bubble sort as the reference does (§4.3.1 step 2).
func sortDescByZ(v1, v2, v3 Point) (Point, Point, Point) {
	if v2.Z > v1.Z {
		v1, v2 = v2, v1
	}
	if v3.Z > v2.Z {
		v2, v3 = v3, v2
	}
	if v2.Z > v1.Z {
		v1, v2 = v2, v1
	}
	return v1, v2, v3
}

// triangleClipKMax computes how many subtriangle iterations a triangle
// needs, given its Z-descending-sorted camera-space vertices (§4.3.1):
// k_max starts at 1 and doubles once for an exactly-one-vertex near
// violation and again for an exactly-one-vertex far violation.
func triangleClipKMax(v1, v2, v3 Point, near, far float64) int {
	kMax := 1
	if v1.Z > near && !(v2.Z > near) {
		kMax *= 2
	}
	if v3.Z < far && !(v2.Z < far) {
		kMax *= 2
	}
	return kMax
}

// clipTriangleIteration runs the near/far clipping state machine
// described in §4.3.1 steps 3-4 for subtriangle index k (1-indexed) of
// kMax, given the Z-descending-sorted original camera-space vertices.
// It does not mutate its inputs.
func clipTriangleIteration(v1, v2, v3 Point, near, far float64, k, kMax int) (Point, Point, Point) {
	// Step 3: near-plane clipping.
	switch {
	case v1.Z > near && v2.Z > near:
		// Both of the two highest Zs exceed near: pull both down to
		// near along their edges toward v3.
		nv1 := intersectAtZ(v3, v1, near)
		nv2 := intersectAtZ(v3, v2, near)
		v1, v2 = nv1, nv2

	case v1.Z > near:
		// Only the top Z exceeds near: two subtriangles are required.
		half := kMax / 2
		n12 := intersectAtZ(v1, v2, near)
		if k <= half {
			v1 = n12
		} else {
			n13 := intersectAtZ(v1, v3, near)
			v1, v2 = n12, n13
		}
	}

	// Step 4: far-plane clipping, symmetric, on the (possibly already
	// near-clipped) two lowest Zs.
	switch {
	case v2.Z < far && v3.Z < far:
		nv2 := intersectAtZ(v1, v2, far)
		nv3 := intersectAtZ(v1, v3, far)
		v2, v3 = nv2, nv3

	case v3.Z < far:
		f13 := intersectAtZ(v1, v3, far)
		if k%2 == 1 {
			v3 = f13
		} else {
			f23 := intersectAtZ(v2, v3, far)
			v1, v3 = f23, f13
		}
	}

	return v1, v2, v3
}

// clipLine clips a camera-space segment against the near/far slab
// (§4.3.2). Callers must only invoke this when at least one endpoint
// lies outside (far, near); both-inside segments are drawn directly.
func clipLine(a, b Point, near, far float64) (Point, Point) {
	if b.Z > a.Z {
		a, b = b, a
	}
	// Now a.Z >= b.Z.

	t1 := 0.0
	if a.Z > near {
		t1 = (near - a.Z) / (b.Z - a.Z)
	}
	t2 := 1.0
	if b.Z < far {
		t2 = (far - a.Z) / (b.Z - a.Z)
	}

	return lerpPoint(a, b, t1), lerpPoint(a, b, t2)
}
