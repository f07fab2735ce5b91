package delilah

import "github.com/mirstar13/delilah/internal/dlog"

// defaultScene builds the built-in reference scene (§6): an 11x11 grid
// of points across the XZ plane at spacing 5 (121 grid cells, the
// center one omitted, leaving 120 points), plus a vertical line through
// the origin from (0, 25, 0) to (0, -25, 0).
func defaultScene() *SceneStore {
	var vertices []Point
	var objects []SceneObject

	for gx := -5; gx <= 5; gx++ {
		for gz := -5; gz <= 5; gz++ {
			if gx == 0 && gz == 0 {
				continue
			}
			idx := len(vertices)
			vertices = append(vertices, Point{X: float64(gx) * 5, Y: 0, Z: float64(gz) * 5})
			objects = append(objects, SceneObject{
				Kind:  KindPoint,
				Point: &PointObject{Vertex: idx, StyleIdx: 0},
			})
		}
	}

	axisTop := len(vertices)
	vertices = append(vertices, Point{X: 0, Y: 25, Z: 0})
	axisBottom := len(vertices)
	vertices = append(vertices, Point{X: 0, Y: -25, Z: 0})

	objects = append(objects, SceneObject{
		Kind: KindLine,
		Line: &LineObject{VA: axisTop, VB: axisBottom, StyleIdx: 0},
	})

	fill := Hicolor(31)
	pointStyles := []PointStyle{
		{Shape: ShapeCircle, Size: 3, Stroke: 0, Fill: &fill},
	}
	lineStyles := []LineStyle{
		{Width: 2.0, Color: Hicolor(992)},
	}

	store, err := NewSceneStore(vertices, nil, objects, pointStyles, lineStyles)
	if err != nil {
		dlog.Fault("built-in default scene failed to validate: %v", err)
	}
	return store
}
