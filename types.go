package delilah

// Point is a 3D coordinate, used for both world-space vertices and the
// camera-/projected-space scratch buffers the Renderer fills each frame.
type Point struct {
	X, Y, Z float64
}
