package script

import (
	"reflect"

	"github.com/traefik/yaegi/interp"
	svg "github.com/vasalvit/svgscript"
)

// Symbols exports the path builder API to scripts as package svg.
var Symbols = interp.Exports{
	"svg/svg": {
		// function, constant and variable definitions
		"Cmd":                reflect.ValueOf(svg.Cmd),
		"FindByID":           reflect.ValueOf(svg.FindByID),
		"FindByTag":          reflect.ValueOf(svg.FindByTag),
		"FormatPathData":     reflect.ValueOf(svg.FormatPathData),
		"FromElement":        reflect.ValueOf(svg.FromElement),
		"NewBuilder":         reflect.ValueOf(svg.NewBuilder),
		"NewStyle":           reflect.ValueOf(svg.NewStyle),
		"ParseBuilder":       reflect.ValueOf(svg.ParseBuilder),
		"ParseCommandType":   reflect.ValueOf(svg.ParseCommandType),
		"ParsePathData":      reflect.ValueOf(svg.ParsePathData),
		"ParseStyle":         reflect.ValueOf(svg.ParseStyle),
		"ErrEmptyPath":       reflect.ValueOf(&svg.ErrEmptyPath).Elem(),
		"ErrIndexOutOfRange": reflect.ValueOf(&svg.ErrIndexOutOfRange).Elem(),
		"ErrNoNode":          reflect.ValueOf(&svg.ErrNoNode).Elem(),
		"ErrSyntax":          reflect.ValueOf(&svg.ErrSyntax).Elem(),
		"MoveTo":             reflect.ValueOf(svg.MoveTo),
		"LineTo":             reflect.ValueOf(svg.LineTo),
		"HorizontalLineTo":   reflect.ValueOf(svg.HorizontalLineTo),
		"VerticalLineTo":     reflect.ValueOf(svg.VerticalLineTo),
		"CubicCurveTo":       reflect.ValueOf(svg.CubicCurveTo),
		"QuadraticCurveTo":   reflect.ValueOf(svg.QuadraticCurveTo),
		"SmoothCubicTo":      reflect.ValueOf(svg.SmoothCubicTo),
		"SmoothQuadraticTo":  reflect.ValueOf(svg.SmoothQuadraticTo),
		"ArcTo":              reflect.ValueOf(svg.ArcTo),
		"ClosePath":          reflect.ValueOf(svg.ClosePath),

		// type definitions
		"Builder":     reflect.ValueOf((*svg.Builder)(nil)),
		"Command":     reflect.ValueOf((*svg.Command)(nil)),
		"CommandType": reflect.ValueOf((*svg.CommandType)(nil)),
		"Document":    reflect.ValueOf((*svg.Document)(nil)),
		"Point":       reflect.ValueOf((*svg.Point)(nil)),
		"Style":       reflect.ValueOf((*svg.Style)(nil)),
	},
}

// hostSymbols exports the batch environment as package host.
func hostSymbols(env Env) interp.Exports {
	return interp.Exports{
		"host/host": {
			"Doc":  reflect.ValueOf(env.Doc),
			"Host": reflect.ValueOf(env.Host),
			"NS":   reflect.ValueOf(env.NS),
			"Root": reflect.ValueOf(env.Doc.Root),
			"Path": reflect.ValueOf(env.Doc.Path),
			"Must": reflect.ValueOf(must),

			"Namespace": reflect.ValueOf((*Namespace)(nil)),
		},
	}
}

// must turns an error into a script failure.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
