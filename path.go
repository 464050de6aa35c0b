package svg

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// pathDescriptionParser folds a path description into absolute commands.
// x, y track the current point and sx, sy the start of the current subpath.
type pathDescriptionParser struct {
	lex      *gl.Lexer
	commands []Command
	x, y     float64
	sx, sy   float64
}

// ParsePathData interprets a path description string (the d attribute)
// and returns its commands with every coordinate made absolute.
func ParsePathData(d string) ([]Command, error) {
	pdp := &pathDescriptionParser{}
	l, _ := gl.Lex("d", normalizeNumbers(d))
	pdp.lex = l
	for {
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("%w: %s", ErrSyntax, i.Value)
		case i.Type == gl.ItemEOS:
			return pdp.commands, nil
		case i.Type == gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return nil, err
			}
		case i.Type == gl.ItemNumber:
			return nil, fmt.Errorf("%w: number %s outside of a command", ErrSyntax, i.Value)
		default:
		}
	}
}

// parseCommand handles one letter item. The lexer may hand over a run of
// letters such as "zM"; all but the last must then take no arguments.
func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	letters := i.Value
	for n := 0; n < len(letters); n++ {
		ct, relative, err := ParseCommandType(letters[n])
		if err != nil {
			return fmt.Errorf("%w after %d commands", err, len(pdp.commands))
		}
		if n < len(letters)-1 && ct.Arity() > 0 {
			return fmt.Errorf("%w: command %c expects %d numbers", ErrSyntax, letters[n], ct.Arity())
		}
		if err := pdp.parseArguments(ct, relative); err != nil {
			return err
		}
	}
	return nil
}

// parseArguments reads argument sets for ct until the next command letter.
// Extra coordinate pairs after a move are implicit lines.
func (pdp *pathDescriptionParser) parseArguments(ct CommandType, relative bool) error {
	if ct == ClosePath {
		pdp.emit(ct, relative, nil)
		return nil
	}
	for {
		args := make([]float64, ct.Arity())
		for j := range args {
			n, err := pdp.parseNumber()
			if err != nil {
				return fmt.Errorf("error parsing %c arguments\n%w", ct.Letter(), err)
			}
			args[j] = n
		}
		pdp.emit(ct, relative, args)
		if ct == MoveTo {
			ct = LineTo
		}
		if !pdp.moreNumbers() {
			return nil
		}
	}
}

func (pdp *pathDescriptionParser) consumeSeparators() {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
}

func (pdp *pathDescriptionParser) moreNumbers() bool {
	pdp.consumeSeparators()
	return pdp.lex.PeekItem().Type == gl.ItemNumber
}

func (pdp *pathDescriptionParser) parseNumber() (float64, error) {
	pdp.consumeSeparators()
	i := pdp.lex.NextItem()
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected number, got %q", ErrSyntax, i.Value)
	}
	return parseNumber(i.Value)
}

// normalizeNumbers rewrites every number of d in the plain decimal form the
// lexer reads, so ".5", "1.5.5" and "2E3" are accepted like any other number.
func normalizeNumbers(d string) string {
	var sb strings.Builder
	sb.Grow(len(d))
	for i := 0; i < len(d); {
		c := d[i]
		if c == '.' || c == '+' || c == '-' || '0' <= c && c <= '9' {
			if f, n := pstrconv.ParseFloat([]byte(d[i:])); n > 0 {
				sb.WriteByte(' ')
				sb.WriteString(formatNumber(f))
				sb.WriteByte(' ')
				i += n
				continue
			}
		}
		sb.WriteByte(c)
		i++
	}
	return sb.String()
}

func parseNumber(s string) (float64, error) {
	f, n := pstrconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("%w: invalid number %q", ErrSyntax, s)
	}
	return f, nil
}

// emit stores one command, converting relative arguments in place.
func (pdp *pathDescriptionParser) emit(ct CommandType, relative bool, args []float64) {
	switch ct {
	case ClosePath:
		pdp.x, pdp.y = pdp.sx, pdp.sy
	case HorizontalLineTo:
		if relative {
			args[0] += pdp.x
		}
		pdp.x = args[0]
	case VerticalLineTo:
		if relative {
			args[0] += pdp.y
		}
		pdp.y = args[0]
	case ArcTo:
		if relative {
			args[5] += pdp.x
			args[6] += pdp.y
		}
		pdp.x, pdp.y = args[5], args[6]
	default:
		if relative {
			for j := 0; j+1 < len(args); j += 2 {
				args[j] += pdp.x
				args[j+1] += pdp.y
			}
		}
		pdp.x, pdp.y = args[len(args)-2], args[len(args)-1]
		if ct == MoveTo {
			pdp.sx, pdp.sy = pdp.x, pdp.y
		}
	}
	pdp.commands = append(pdp.commands, Command{Type: ct, Params: args})
}

// FormatPathData serializes commands using uppercase absolute letters,
// e.g. "M 0 0 L 10 0 Z".
func FormatPathData(commands []Command) string {
	var sb strings.Builder
	for i, c := range commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c.Type.Letter())
		for _, p := range c.Params {
			sb.WriteByte(' ')
			sb.WriteString(formatNumber(p))
		}
	}
	return sb.String()
}

// shortest decimal form that parses back to the same float64
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
