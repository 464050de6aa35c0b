package svg

// Circle draws a circle of radius r through the current point, which lies
// on its left edge, as four quarter arcs. The pen ends where it started.
func (b *Builder) Circle(r float64) error {
	p, _, err := b.EndPoint()
	if err != nil {
		return err
	}
	b.quarterArcs(p, r)
	return nil
}

// CircleCenter draws a circle of radius r centered at (cx, cy). The pen is
// moved to the left edge first and left on the right edge afterwards.
func (b *Builder) CircleCenter(r, cx, cy float64) {
	left := Point{cx - r, cy}
	b.MoveTo(left.X, left.Y)
	b.quarterArcs(left, r)
	b.MoveTo(cx+r, cy)
}

// quarterArcs draws the top, right, bottom and left quarters from p, a
// point on the left edge.
func (b *Builder) quarterArcs(p Point, r float64) {
	for _, d := range [4]Point{{r, -r}, {r, r}, {-r, r}, {-r, -r}} {
		p = p.Add(d)
		b.ArcTo(r, r, 0, false, true, p.X, p.Y)
	}
}
