package delilah

import "encoding/json"

// MarshalScene serializes s back into the §6 JSON shape. spec.md only
// describes the read path, but a write path is the natural counterpart
// needed to test the round-trip property (§8 #2): parsing the output of
// MarshalScene must yield a bit-equal store.
func (s *SceneStore) MarshalScene() ([]byte, error) {
	raw := rawScene{
		Vertex: make([]float64, 0, len(s.Vertices)*3),
		Scene:  make([]int64, 0, len(s.Objects)*5),
		Radius: append([]float64(nil), s.Radii...),
		PStyle: make([]rawPointStyle, len(s.PointStyles)),
		LStyle: make([]rawLineStyle, len(s.LineStyles)),
	}

	for _, v := range s.Vertices {
		raw.Vertex = append(raw.Vertex, v.X, v.Y, v.Z)
	}

	for i, ps := range s.PointStyles {
		r := rawPointStyle{
			Shape:  string(ps.Shape),
			Size:   ps.Size,
			Stroke: ps.Stroke,
		}
		if ps.Fill != nil {
			v := int64(*ps.Fill)
			r.Fill = &v
		}
		if ps.Ink != nil {
			v := int64(*ps.Ink)
			r.Ink = &v
		}
		raw.PStyle[i] = r
	}

	for i, ls := range s.LineStyles {
		raw.LStyle[i] = rawLineStyle{Width: ls.Width, Color: int64(ls.Color)}
	}

	for _, o := range s.Objects {
		a, b, c, d, e := encodeSceneObject(o)
		raw.Scene = append(raw.Scene, a, b, c, d, e)
	}

	return json.Marshal(raw)
}

// encodeSceneObject is the inverse of decodeSceneObject.
func encodeSceneObject(o SceneObject) (a, b, c, d, e int64) {
	switch o.Kind {
	case KindPoint:
		p := o.Point
		return int64(p.Vertex), sentinel16, sentinel16, 0, int64(p.StyleIdx)

	case KindLine:
		l := o.Line
		return int64(l.VA), int64(l.VB), sentinel16, 0, int64(l.StyleIdx)

	case KindSphere:
		sp := o.Sphere
		d := int64(sentinel16)
		if sp.Fill != nil {
			d = int64(*sp.Fill)
		}
		e := int64(sentinel16)
		if sp.StrokeStyleIdx != nil {
			e = int64(*sp.StrokeStyleIdx)
		}
		return int64(sp.Origin), sentinel16, int64(sp.RadiusIdx), d, e

	case KindTriangle:
		t := o.Triangle
		var word int64
		for i, ep := range t.Edges {
			sel := int64(0)
			if ep != nil {
				sel = int64(*ep) + 1
			}
			shift := uint(10 - i*5)
			word |= sel << shift
		}
		return int64(t.VA), int64(t.VB), int64(t.VC), int64(t.Fill), word
	}
	return 0, 0, 0, 0, 0
}
