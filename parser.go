package delilah

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// rawScene is the JSON shape described in spec §6, filled by a
// struct-tagged json.Unmarshal. A value of the wrong JSON type (for
// example a fractional or string entry in scene) fails that decode and
// is reported as "Not a valid JSON file"; lengths and ranges are checked
// afterwards, each with its own message.
type rawScene struct {
	Vertex []float64       `json:"vertex"`
	Scene  []int64         `json:"scene"`
	Radius []float64       `json:"radius"`
	PStyle []rawPointStyle `json:"pstyle"`
	LStyle []rawLineStyle  `json:"lstyle"`
}

type rawPointStyle struct {
	Shape  string  `json:"shape"`
	Size   float64 `json:"size"`
	Stroke float64 `json:"stroke"`
	Fill   *int64  `json:"fill"`
	Ink    *int64  `json:"ink"`
}

type rawLineStyle struct {
	Width float64 `json:"width"`
	Color int64   `json:"color"`
}

const sentinel16 = 0xFFFF

// ParseScene validates a JSON scene file (spec §6) and returns a
// SceneStore on success. On any grammar or semantic violation it returns
// a single descriptive error (capitalized, no trailing punctuation, per
// §6/§7); the caller must leave its current scene unchanged in that case.
func ParseScene(data []byte) (*SceneStore, error) {
	var presence map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&presence); err != nil {
		return nil, fmt.Errorf("Not a valid JSON file")
	}

	if _, ok := presence["vertex"]; !ok {
		return nil, fmt.Errorf("Missing required vertex array")
	}
	if _, ok := presence["scene"]; !ok {
		return nil, fmt.Errorf("Missing required scene array")
	}

	var raw rawScene
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("Not a valid JSON file")
	}

	if len(raw.Vertex) == 0 || len(raw.Vertex)%3 != 0 {
		return nil, fmt.Errorf("Vertex array length must be a positive multiple of three")
	}
	if len(raw.Vertex)/3 > 65535 {
		return nil, fmt.Errorf("Vertex count out of range")
	}
	for _, v := range raw.Vertex {
		if !isFinite(v) {
			return nil, fmt.Errorf("Vertex coordinates must be finite")
		}
	}

	if len(raw.Scene) == 0 || len(raw.Scene)%5 != 0 {
		return nil, fmt.Errorf("Scene array length must be a positive multiple of five")
	}
	if len(raw.Scene)/5 > 65535 {
		return nil, fmt.Errorf("Scene object count out of range")
	}
	for _, n := range raw.Scene {
		if n < 0 || n > 65535 {
			return nil, fmt.Errorf("Scene integers must be in range 0 to 65535")
		}
	}

	if _, ok := presence["radius"]; ok {
		if len(raw.Radius) > 65535 {
			return nil, fmt.Errorf("Radius count out of range")
		}
		for _, r := range raw.Radius {
			if !isFinite(r) || r <= 0 {
				return nil, fmt.Errorf("Radius must be finite and positive")
			}
		}
	}

	if _, ok := presence["pstyle"]; ok {
		if len(raw.PStyle) > 65535 {
			return nil, fmt.Errorf("Point style count out of range")
		}
	}
	if _, ok := presence["lstyle"]; ok {
		if len(raw.LStyle) > 65535 {
			return nil, fmt.Errorf("Line style count out of range")
		}
	}

	vertices := make([]Point, len(raw.Vertex)/3)
	for i := range vertices {
		vertices[i] = Point{X: raw.Vertex[i*3], Y: raw.Vertex[i*3+1], Z: raw.Vertex[i*3+2]}
	}

	radii := make([]float64, len(raw.Radius))
	copy(radii, raw.Radius)

	pointStyles := make([]PointStyle, len(raw.PStyle))
	for i, rps := range raw.PStyle {
		ps, err := decodePointStyle(rps)
		if err != nil {
			return nil, err
		}
		pointStyles[i] = ps
	}

	lineStyles := make([]LineStyle, len(raw.LStyle))
	for i, rls := range raw.LStyle {
		if rls.Width <= 0 || !isFinite(rls.Width) {
			return nil, fmt.Errorf("Line style width must be positive and finite")
		}
		if rls.Color < 0 || rls.Color > 0x7FFF {
			return nil, fmt.Errorf("Line style color must fit in 15 bits")
		}
		lineStyles[i] = LineStyle{Width: rls.Width, Color: Hicolor(rls.Color)}
	}

	objects := make([]SceneObject, len(raw.Scene)/5)
	for i := range objects {
		a := raw.Scene[i*5]
		b := raw.Scene[i*5+1]
		c := raw.Scene[i*5+2]
		d := raw.Scene[i*5+3]
		e := raw.Scene[i*5+4]

		obj, err := decodeSceneObject(a, b, c, d, e)
		if err != nil {
			return nil, err
		}
		objects[i] = obj
	}

	return NewSceneStore(vertices, radii, objects, pointStyles, lineStyles)
}

func decodePointStyle(rps rawPointStyle) (PointStyle, error) {
	if len(rps.Shape) != 1 {
		return PointStyle{}, fmt.Errorf("Point style shape must be a single character")
	}
	shape := rps.Shape[0]
	if !isValidShape(shape) {
		return PointStyle{}, fmt.Errorf("Invalid point style shape")
	}

	var fill, ink *Hicolor
	if rps.Fill != nil {
		if *rps.Fill < 0 || *rps.Fill > 0x7FFF {
			return PointStyle{}, fmt.Errorf("Point style fill color must fit in 15 bits")
		}
		v := Hicolor(*rps.Fill)
		fill = &v
	}
	if rps.Ink != nil {
		if *rps.Ink < 0 || *rps.Ink > 0x7FFF {
			return PointStyle{}, fmt.Errorf("Point style ink color must fit in 15 bits")
		}
		v := Hicolor(*rps.Ink)
		ink = &v
	}

	return PointStyle{
		Shape:  shape,
		Size:   rps.Size,
		Stroke: rps.Stroke,
		Fill:   fill,
		Ink:    ink,
	}, nil
}

// decodeSceneObject classifies a raw 5-tuple per the (b,c) sentinel
// pattern in §3 and lifts it into the tagged SceneObject variant.
func decodeSceneObject(a, b, c, d, e int64) (SceneObject, error) {
	bSentinel := b == sentinel16
	cSentinel := c == sentinel16

	switch {
	case bSentinel && cSentinel:
		// Point: a = vertex, e = point style index.
		return SceneObject{
			Kind: KindPoint,
			Point: &PointObject{
				Vertex:   int(a),
				StyleIdx: int(e),
			},
		}, nil

	case !bSentinel && cSentinel:
		// Line: a,b = vertex indices, e = line style index.
		return SceneObject{
			Kind: KindLine,
			Line: &LineObject{
				VA:       int(a),
				VB:       int(b),
				StyleIdx: int(e),
			},
		}, nil

	case bSentinel && !cSentinel:
		// Sphere: a = vertex, c = radius index, d = fill or transparent,
		// e = stroke line style or transparent.
		var fill *Hicolor
		if d != sentinel16 {
			if d > 0x7FFF {
				return SceneObject{}, fmt.Errorf("Sphere fill color must fit in 15 bits")
			}
			v := Hicolor(d)
			fill = &v
		}
		var stroke *int
		if e != sentinel16 {
			v := int(e)
			stroke = &v
		}
		return SceneObject{
			Kind: KindSphere,
			Sphere: &SphereObject{
				Origin:         int(a),
				RadiusIdx:      int(c),
				Fill:           fill,
				StrokeStyleIdx: stroke,
			},
		}, nil

	default:
		// Triangle: a,b,c = vertex indices, d = 15-bit fill, e packs
		// three 5-bit edge selectors (MSB clear); selector 0 = no
		// stroke, selector s>0 -> line style s-1.
		if d > 0x7FFF {
			return SceneObject{}, fmt.Errorf("Triangle fill color must fit in 15 bits")
		}
		if e > 0x7FFF {
			return SceneObject{}, fmt.Errorf("Triangle edge style word must fit in 15 bits")
		}
		sel0 := (e >> 10) & 0x1F
		sel1 := (e >> 5) & 0x1F
		sel2 := e & 0x1F

		var edges [3]*int
		for i, sel := range []int64{sel0, sel1, sel2} {
			if sel == 0 {
				continue
			}
			idx := int(sel - 1)
			edges[i] = &idx
		}

		return SceneObject{
			Kind: KindTriangle,
			Triangle: &TriangleObject{
				VA:    int(a),
				VB:    int(b),
				VC:    int(c),
				Fill:  Hicolor(d),
				Edges: edges,
			},
		}, nil
	}
}
