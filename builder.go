package svg

import (
	"fmt"

	"github.com/beevik/etree"
)

// Builder accumulates path commands with turtle-style relative helpers and
// projects the result onto a path element of a Document.
//
// Every coordinate is stored absolute; relative calls are resolved against
// the current end point when they are made.
type Builder struct {
	commands []Command
	style    *Style
	attrs    map[string]string
	node     *etree.Element
}

// NewBuilder returns a builder holding a copy of the given commands.
func NewBuilder(commands ...Command) *Builder {
	b := &Builder{style: &Style{}, attrs: map[string]string{}}
	for _, c := range commands {
		b.commands = append(b.commands, c.clone())
	}
	return b
}

// ParseBuilder returns a builder for a path description string.
func ParseBuilder(d string) (*Builder, error) {
	b := NewBuilder()
	if err := b.Parse(d); err != nil {
		return nil, err
	}
	return b, nil
}

// Parse replaces the commands with the ones described by d.
func (b *Builder) Parse(d string) error {
	commands, err := ParsePathData(d)
	if err != nil {
		return err
	}
	b.commands = commands
	return nil
}

// Commands returns a copy of the command list.
func (b *Builder) Commands() []Command {
	out := make([]Command, len(b.commands))
	for i, c := range b.commands {
		out[i] = c.clone()
	}
	return out
}

// Len returns the number of commands.
func (b *Builder) Len() int {
	return len(b.commands)
}

// String returns the path description of the commands.
func (b *Builder) String() string {
	return FormatPathData(b.commands)
}

// StartPoint returns the trailing pair of the first command.
func (b *Builder) StartPoint() (Point, CommandType, error) {
	if len(b.commands) == 0 {
		return Point{}, 0, ErrEmptyPath
	}
	c := b.commands[0]
	if len(c.Params) < 2 {
		return Point{}, c.Type, fmt.Errorf("%w: path starts with %s", ErrIndexOutOfRange, c.Type)
	}
	return Point{c.Params[0], c.Params[1]}, c.Type, nil
}

// EndPoint returns the current point, where the next command continues.
func (b *Builder) EndPoint() (Point, CommandType, error) {
	return b.EndPointAt(-1)
}

// EndPointAt returns the end point of the command at offset, counted from
// the end of the list: -1 is the last command, -2 the one before and so on.
// H and V commands borrow their missing coordinate from the previous
// command and Z resolves to the start point.
func (b *Builder) EndPointAt(offset int) (Point, CommandType, error) {
	if len(b.commands) == 0 {
		return Point{}, 0, ErrEmptyPath
	}
	idx := len(b.commands) + offset
	if offset >= 0 || idx < 0 {
		return Point{}, 0, fmt.Errorf("%w: offset %d of %d commands", ErrIndexOutOfRange, offset, len(b.commands))
	}
	c := b.commands[idx]
	switch c.Type {
	case HorizontalLineTo:
		prev, _, err := b.EndPointAt(offset - 1)
		if err != nil {
			return Point{}, c.Type, err
		}
		return Point{c.Params[len(c.Params)-1], prev.Y}, c.Type, nil
	case VerticalLineTo:
		prev, _, err := b.EndPointAt(offset - 1)
		if err != nil {
			return Point{}, c.Type, err
		}
		return Point{prev.X, c.Params[len(c.Params)-1]}, c.Type, nil
	case ClosePath:
		return b.StartPoint()
	}
	p, ok := c.endPair()
	if !ok {
		return Point{}, c.Type, fmt.Errorf("%w: %s has no end point", ErrIndexOutOfRange, c.Type)
	}
	return p, c.Type, nil
}

func (b *Builder) absolutePoint(dx, dy float64) (Point, error) {
	p, _, err := b.EndPoint()
	if err != nil {
		return Point{}, err
	}
	return p.Add(Point{dx, dy}), nil
}

func (b *Builder) push(t CommandType, params ...float64) {
	b.commands = append(b.commands, Command{Type: t, Params: params})
}

// Move moves the pen by (dx, dy). On an empty path it starts the path at (dx, dy).
func (b *Builder) Move(dx, dy float64) error {
	return b.relativeTo(MoveTo, dx, dy)
}

// MoveTo moves the pen to (x, y).
func (b *Builder) MoveTo(x, y float64) {
	b.pointTo(MoveTo, x, y)
}

// Line draws a line by (dx, dy). On an empty path it starts the path at (dx, dy).
func (b *Builder) Line(dx, dy float64) error {
	return b.relativeTo(LineTo, dx, dy)
}

// LineTo draws a line to (x, y).
func (b *Builder) LineTo(x, y float64) {
	b.pointTo(LineTo, x, y)
}

func (b *Builder) relativeTo(t CommandType, dx, dy float64) error {
	if len(b.commands) == 0 {
		b.push(MoveTo, dx, dy)
		return nil
	}
	p, err := b.absolutePoint(dx, dy)
	if err != nil {
		return err
	}
	b.push(t, p.X, p.Y)
	return nil
}

// the first command of a path is always a move
func (b *Builder) pointTo(t CommandType, x, y float64) {
	if len(b.commands) == 0 {
		t = MoveTo
	}
	b.push(t, x, y)
}

// Horizontal draws a horizontal line by dx.
func (b *Builder) Horizontal(dx float64) error {
	p, err := b.absolutePoint(dx, 0)
	if err != nil {
		return err
	}
	b.push(HorizontalLineTo, p.X)
	return nil
}

// HorizontalTo draws a horizontal line to x.
func (b *Builder) HorizontalTo(x float64) error {
	if _, _, err := b.EndPoint(); err != nil {
		return err
	}
	b.push(HorizontalLineTo, x)
	return nil
}

// Vertical draws a vertical line by dy.
func (b *Builder) Vertical(dy float64) error {
	p, err := b.absolutePoint(0, dy)
	if err != nil {
		return err
	}
	b.push(VerticalLineTo, p.Y)
	return nil
}

// VerticalTo draws a vertical line to y.
func (b *Builder) VerticalTo(y float64) error {
	if _, _, err := b.EndPoint(); err != nil {
		return err
	}
	b.push(VerticalLineTo, y)
	return nil
}

// Arc draws an elliptical arc ending at (dx, dy) from the current point.
func (b *Builder) Arc(rx, ry, rotation float64, largeArc, sweep bool, dx, dy float64) error {
	p, err := b.absolutePoint(dx, dy)
	if err != nil {
		return err
	}
	b.ArcTo(rx, ry, rotation, largeArc, sweep, p.X, p.Y)
	return nil
}

// ArcTo draws an elliptical arc ending at (x, y). rotation is in degrees.
func (b *Builder) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	b.push(ArcTo, rx, ry, rotation, flag(largeArc), flag(sweep), x, y)
}

func flag(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// Cubic draws a cubic Bézier curve; all points are relative to the current point.
func (b *Builder) Cubic(dx1, dy1, dx2, dy2, dx, dy float64) error {
	c1, err := b.absolutePoint(dx1, dy1)
	if err != nil {
		return err
	}
	c2, _ := b.absolutePoint(dx2, dy2)
	p, _ := b.absolutePoint(dx, dy)
	b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	return nil
}

// CubicTo draws a cubic Bézier curve with control points (x1, y1) and (x2, y2).
func (b *Builder) CubicTo(x1, y1, x2, y2, x, y float64) {
	b.push(CubicCurveTo, x1, y1, x2, y2, x, y)
}

// Quad draws a quadratic Bézier curve; all points are relative to the current point.
func (b *Builder) Quad(dx1, dy1, dx, dy float64) error {
	c, err := b.absolutePoint(dx1, dy1)
	if err != nil {
		return err
	}
	p, _ := b.absolutePoint(dx, dy)
	b.QuadTo(c.X, c.Y, p.X, p.Y)
	return nil
}

// QuadTo draws a quadratic Bézier curve with control point (x1, y1).
func (b *Builder) QuadTo(x1, y1, x, y float64) {
	b.push(QuadraticCurveTo, x1, y1, x, y)
}

// SmoothCubic is the relative form of SmoothCubicTo.
func (b *Builder) SmoothCubic(dx2, dy2, dx, dy float64) error {
	c2, err := b.absolutePoint(dx2, dy2)
	if err != nil {
		return err
	}
	p, _ := b.absolutePoint(dx, dy)
	return b.SmoothCubicTo(c2.X, c2.Y, p.X, p.Y)
}

// SmoothCubicTo draws a cubic curve whose first control point mirrors the
// first control point of the previous cubic curve through its end point.
// After any other command the previous end point is used instead.
func (b *Builder) SmoothCubicTo(x2, y2, x, y float64) error {
	c1, err := b.reflection(CubicCurveTo)
	if err != nil {
		return err
	}
	b.CubicTo(c1.X, c1.Y, x2, y2, x, y)
	return nil
}

// SmoothQuad is the relative form of SmoothQuadTo.
func (b *Builder) SmoothQuad(dx, dy float64) error {
	p, err := b.absolutePoint(dx, dy)
	if err != nil {
		return err
	}
	return b.SmoothQuadTo(p.X, p.Y)
}

// SmoothQuadTo draws a quadratic curve whose control point mirrors the
// previous quadratic control point, or sits on the previous end point.
func (b *Builder) SmoothQuadTo(x, y float64) error {
	c, err := b.reflection(QuadraticCurveTo)
	if err != nil {
		return err
	}
	b.QuadTo(c.X, c.Y, x, y)
	return nil
}

func (b *Builder) reflection(family CommandType) (Point, error) {
	end, _, err := b.EndPoint()
	if err != nil {
		return Point{}, err
	}
	last := b.commands[len(b.commands)-1]
	if last.Type != family || len(last.Params) < 4 {
		return end, nil
	}
	return end.Reflect(Point{last.Params[0], last.Params[1]}), nil
}

// Rect draws the four sides of a w by h rectangle from the current point:
// right, down, left and up. The path is not closed.
func (b *Builder) Rect(w, h float64) error {
	for _, d := range [4]Point{{w, 0}, {0, h}, {-w, 0}, {0, -h}} {
		if err := b.Line(d.X, d.Y); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the current subpath.
func (b *Builder) Close() {
	b.push(ClosePath)
}
