package svg

// Polyline draws connected line segments through the given absolute points.
// On an empty path the first point starts the path.
func (b *Builder) Polyline(points ...Point) {
	for _, p := range points {
		b.LineTo(p.X, p.Y)
	}
}

// Polygon draws a polyline and closes it.
func (b *Builder) Polygon(points ...Point) {
	if len(points) == 0 {
		return
	}
	b.Polyline(points...)
	b.Close()
}
