package svg

import "fmt"

// CommandType tells which path data command a Command holds
type CommandType int

// These are the commands of the SVG path mini-language. Coordinates are
// always stored in absolute form, so there are no relative variants.
const (
	MoveTo            CommandType = iota // M
	LineTo                               // L
	HorizontalLineTo                     // H
	VerticalLineTo                       // V
	CubicCurveTo                         // C
	QuadraticCurveTo                     // Q
	SmoothCubicTo                        // S
	SmoothQuadraticTo                    // T
	ArcTo                                // A
	ClosePath                            // Z
)

var commandLetters = [...]byte{'M', 'L', 'H', 'V', 'C', 'Q', 'S', 'T', 'A', 'Z'}

// number of parameters each command carries
var commandArity = [...]int{2, 2, 1, 1, 6, 4, 4, 2, 7, 0}

// Letter returns the uppercase path data letter of the command.
func (c CommandType) Letter() byte {
	if c < MoveTo || c > ClosePath {
		return '?'
	}
	return commandLetters[c]
}

// Arity returns the number of parameters the command takes.
func (c CommandType) Arity() int {
	if c < MoveTo || c > ClosePath {
		return 0
	}
	return commandArity[c]
}

func (c CommandType) String() string {
	return string(c.Letter())
}

// ParseCommandType maps a path data letter of either case to its command.
// The second result reports whether the letter was a relative one.
func ParseCommandType(letter byte) (CommandType, bool, error) {
	relative := letter >= 'a' && letter <= 'z'
	upper := letter
	if relative {
		upper -= 'a' - 'A'
	}
	for i, l := range commandLetters {
		if l == upper {
			return CommandType(i), relative, nil
		}
	}
	return 0, false, fmt.Errorf("%w: unknown command %q", ErrSyntax, letter)
}

// Command is one drawing instruction of a path with absolute parameters.
// ArcTo parameters are rx, ry, x-axis-rotation, large-arc-flag, sweep-flag, x, y.
type Command struct {
	Type   CommandType
	Params []float64
}

// Cmd builds a Command from its type and parameters.
func Cmd(t CommandType, params ...float64) Command {
	return Command{Type: t, Params: params}
}

// endPair returns the trailing coordinate pair of the command, when it has one.
func (c Command) endPair() (Point, bool) {
	n := len(c.Params)
	if n < 2 {
		return Point{}, false
	}
	return Point{c.Params[n-2], c.Params[n-1]}, true
}

func (c Command) clone() Command {
	c.Params = append([]float64(nil), c.Params...)
	return c
}

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Reflect returns q mirrored through p.
func (p Point) Reflect(q Point) Point {
	return Point{2*p.X - q.X, 2*p.Y - q.Y}
}
