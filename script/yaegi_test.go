package script

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svg "github.com/vasalvit/svgscript"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name string
		src  string
		decl string
		call string
	}{
		{
			"statements",
			"a := 1\nif a > 0 {\n\tb := a\n\t_ = b\n}\n",
			"func svgscript_run7() {svgscript_trace.Mark(7, 1); a := 1\nsvgscript_trace.Mark(7, 2); if a > 0 {\n\tsvgscript_trace.Mark(7, 3); b := a\n\tsvgscript_trace.Mark(7, 4); _ = b\n}\n\n}",
			"svgscript_run7()",
		},
		{
			"declaration",
			"func g() int {\n\treturn 2\n}\n",
			"func g() int {\n\tsvgscript_trace.Mark(7, 2); return 2\n}\n",
			"",
		},
		{
			"leading comment",
			"// c\nvar x = 1\n",
			"// c\nvar x = 1\n",
			"",
		},
		{
			"switch",
			"switch x := 2; x {\ncase 2:\n\tfmt.Println(x)\n}\n",
			"func svgscript_run7() {svgscript_trace.Mark(7, 1); switch x := 2; x {\ncase 2:\n\tsvgscript_trace.Mark(7, 3); fmt.Println(x)\n}\n\n}",
			"svgscript_run7()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := prepare(tt.name, tt.src, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.decl, p.decl)
			assert.Equal(t, tt.call, p.call)
		})
	}
}

func TestSessionSharesDeclarations(t *testing.T) {
	doc, err := svg.ParseSvg(`<svg xmlns="http://www.w3.org/2000/svg"/>`, "t")
	require.NoError(t, err)
	ns := Namespace{}
	s, err := NewYaegi().NewSession(Env{Doc: doc, NS: ns})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Run(ctx, "helpers", "func double(x float64) float64 {\n\treturn x * 2\n}\n"))
	require.NoError(t, s.Run(ctx, "a", "v := double(2)\nhost.NS[\"v\"] = v\n"))
	// the same local name in another script does not clash
	require.NoError(t, s.Run(ctx, "b", "v := host.NS[\"v\"].(float64)\nhost.NS[\"v\"] = double(v)\n"))
	assert.Equal(t, 8.0, ns["v"])
}

func TestSessionRuntimeLine(t *testing.T) {
	doc, err := svg.ParseSvg(`<svg xmlns="http://www.w3.org/2000/svg"/>`, "t")
	require.NoError(t, err)
	s, err := NewYaegi().NewSession(Env{Doc: doc, NS: Namespace{}})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Run(ctx, "helpers", "func fail(n int) {\n\tif n > 1 {\n\t\tpanic(\"too many\")\n\t}\n}\n"))

	tests := []struct {
		name string
		src  string
		script string
		line   int
		msg    string
	}{
		{"panic", "x := 1\n_ = x\npanic(\"boom\")\n", "panic", 3, "boom"},
		{"must", "b := svg.NewBuilder()\n\nhost.Must(b.Circle(1))\n", "must", 3, svg.ErrEmptyPath.Error()},
		{"loop", "for i := 0; i < 3; i++ {\n\tfail(i)\n}\n", "helpers", 3, "too many"},
		{"undefined", "x := 1\n_ = x\ny := missing + 1\n", "undefined", 3, "undefined: missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Run(ctx, tt.name, tt.src)
			require.Error(t, err)
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, RuntimeError, e.Kind)
			assert.Equal(t, tt.script, e.Script)
			assert.Equal(t, tt.line, e.Line)
			assert.Contains(t, e.Message, tt.msg)
		})
	}
}

func TestCheck(t *testing.T) {
	y := NewYaegi()

	assert.NoError(t, y.Check("ok", "b := svg.NewBuilder()\nb.MoveTo(1, 2)\n"))
	assert.NoError(t, y.Check("decl", "func helper(x float64) float64 {\n\treturn x * 2\n}\n"))
	assert.NoError(t, y.Check("empty", placeholder("empty")))

	tests := []struct {
		name string
		src  string
		line int
	}{
		{"statement", "a := 1\nb := 2\nc := := 3\n", 3},
		{"declaration", "func svgscript_run7() {\n}\n\nfunc g( {\n}\n", 4},
		{"first line", "x := )\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := y.Check(tt.name, tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCompile))

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.line, e.Line)
			assert.Equal(t, tt.name, e.Script)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestLine(t *testing.T) {
	assert.Equal(t, 12, line("_.go:12:3: panic"))
	assert.Equal(t, 4, line("4:1: undefined: foo"))
	assert.Equal(t, 0, line("boom"))
}

func TestErrorFormat(t *testing.T) {
	e := &Error{Kind: RuntimeError, Script: "a", Line: 7, Message: "boom"}
	assert.Equal(t, "RuntimeError at line 7 of a: boom", e.Error())
	assert.True(t, errors.Is(e, ErrRuntime))
	assert.False(t, errors.Is(e, ErrCompile))
}
