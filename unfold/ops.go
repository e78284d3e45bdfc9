package unfold

// Project returns the foot of the perpendicular from p onto the line through
// a and b.
func Project(a, b, p Vector2) (Vector2, error) {
	dir, err := Normalize(Sub(b, a))
	if err != nil {
		return Vector2{}, wrapf(err, "project onto line %s-%s", fmtVec(a), fmtVec(b))
	}
	return Add(a, dir.Times(Dot(dir, Sub(p, a)))), nil
}

// Reflect mirrors p across the line through a and b.
func Reflect(a, b, p Vector2) (Vector2, error) {
	proj, err := Project(a, b, p)
	if err != nil {
		return Vector2{}, err
	}
	return Sub(proj.Times(2), p), nil
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Vector2) float64 {
	return Norm(Sub(a, b))
}

// Diameter is the largest pairwise distance in points. Nil, empty and
// single-point sets have diameter 0. The scan is exhaustive (O(n²)); nets
// have a few dozen vertices at most.
func Diameter(points []Vector2) float64 {
	out := 0.0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d > out {
				out = d
			}
		}
	}
	return out
}

// Points collects the vertex values of all polygons, in order. Nil polygons
// are skipped.
func Points(polygons ...*Polygon) []Vector2 {
	var out []Vector2
	for _, p := range polygons {
		if p == nil {
			continue
		}
		out = append(out, p.Points()...)
	}
	return out
}
