package svg

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// arcAdjust carries what a transform does to the non-coordinate
// parameters of an arc: radii scale factors and added x-axis rotation.
type arcAdjust struct {
	fx, fy   float64
	rotation float64
}

// Rotate rotates the path by angle radians around the start point offset by (cx, cy).
func (b *Builder) Rotate(angle, cx, cy float64) error {
	s, _, err := b.StartPoint()
	if err != nil {
		return err
	}
	b.RotateAbsolute(angle, s.X+cx, s.Y+cy)
	return nil
}

// RotateAbsolute rotates the path by angle radians around (cx, cy).
// The path is moved so that (cx, cy) is the origin, rotated there and moved back.
func (b *Builder) RotateAbsolute(angle, cx, cy float64) {
	b.Translate(-cx, -cy)
	t := mt.Identity()
	t.RotateOrigin(angle)
	b.transform(t, arcAdjust{fx: 1, fy: 1, rotation: angle * 180 / math.Pi})
	b.Translate(cx, cy)
}

// Scale scales every coordinate by fx horizontally and fy vertically.
func (b *Builder) Scale(fx, fy float64) {
	t := mt.Identity()
	t.Scale(fx, fy)
	b.transform(t, arcAdjust{fx: fx, fy: fy})
}

// ScaleUniform scales every coordinate by f.
func (b *Builder) ScaleUniform(f float64) {
	b.Scale(f, f)
}

// Translate moves every coordinate by (dx, dy).
func (b *Builder) Translate(dx, dy float64) {
	t := mt.Identity()
	t.Translate(dx, dy)
	b.transform(t, arcAdjust{fx: 1, fy: 1})
}

// TranslateTo moves the path so that its start point lands on (x, y).
func (b *Builder) TranslateTo(x, y float64) error {
	s, _, err := b.StartPoint()
	if err != nil {
		return err
	}
	b.Translate(x-s.X, y-s.Y)
	return nil
}

// transform maps every coordinate pair of every command through t and
// replaces the command list. H and V become L since a rotation does not
// keep them axis aligned.
func (b *Builder) transform(t mt.Transform, arc arcAdjust) {
	n := len(b.commands)
	out := make([]Command, n)
	for i, c := range b.commands {
		c = c.clone()
		switch c.Type {
		case HorizontalLineTo, VerticalLineTo:
			p, _, err := b.EndPointAt(i - n)
			if err != nil {
				// unresolvable shorthand is kept as it is
				out[i] = c
				continue
			}
			c = Command{Type: LineTo, Params: []float64{p.X, p.Y}}
		case ArcTo:
			if len(c.Params) == 7 {
				c.Params[0] *= math.Abs(arc.fx)
				c.Params[1] *= math.Abs(arc.fy)
				c.Params[2] += arc.rotation
				if arc.fx*arc.fy < 0 {
					c.Params[4] = 1 - c.Params[4]
				}
				c.Params[5], c.Params[6] = t.Apply(c.Params[5], c.Params[6])
			}
			out[i] = c
			continue
		}
		for j := 0; j+1 < len(c.Params); j += 2 {
			c.Params[j], c.Params[j+1] = t.Apply(c.Params[j], c.Params[j+1])
		}
		out[i] = c
	}
	b.commands = out
}
