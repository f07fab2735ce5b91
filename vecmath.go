package delilah

// sub returns a-b componentwise.
func sub(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// cross returns the cross product u x v.
func cross(u, v Point) Point {
	return Point{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
}

// dot returns the dot product of u and v.
func dot(u, v Point) float64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}
