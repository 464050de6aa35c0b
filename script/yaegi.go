package script

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"io"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// stdlib packages scripts can use without importing them
var stdlibPackages = []string{"fmt/fmt", "math/math", "strconv/strconv", "strings/strings"}

// the package holding the line marker every statement reports to
const tracePkg = "svgscript_trace"

var (
	positionRe = regexp.MustCompile(`(\d+):(\d+):`)
	prefixRe   = regexp.MustCompile(`^(?:[^\s:]*:)?\d+:\d+:\s*`)
)

// Yaegi runs scripts as Go code with github.com/traefik/yaegi. A script is
// either a list of declarations or a list of statements. Declarations are
// global to the session; statements run as the body of a function of their
// own, so state shared between scripts goes through host.NS.
type Yaegi struct{}

// NewYaegi returns the default engine.
func NewYaegi() *Yaegi {
	return &Yaegi{}
}

// Check parses src the way the session wraps it, so reported lines match
// the script lines.
func (y *Yaegi) Check(label, src string) error {
	_, err := prepare(label, src, 0)
	return err
}

// NewSession returns a fresh interpreter exposing the svg package, the
// host package bound to env and a few stdlib packages.
func (y *Yaegi) NewSession(env Env) (Session, error) {
	s := &yaegiSession{}
	stdout, stderr := env.Stdout, env.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	s.in = interp.New(interp.Options{Stdout: stdout, Stderr: stderr})

	std := interp.Exports{}
	for _, k := range stdlibPackages {
		std[k] = stdlib.Symbols[k]
	}
	trace := interp.Exports{
		tracePkg + "/" + tracePkg: {
			"Mark": reflect.ValueOf(func(run, line int) { s.run, s.line = run, line }),
		},
	}
	for _, exports := range []interp.Exports{std, Symbols, hostSymbols(env), trace} {
		if err := s.in.Use(exports); err != nil {
			return nil, err
		}
	}
	s.in.ImportUsed()
	return s, nil
}

type yaegiSession struct {
	in *interp.Interpreter
	// labels of the scripts run so far, in order
	labels []string
	// the statement that ran last: its line and the run it belongs to
	run, line int
}

func (s *yaegiSession) Run(ctx context.Context, label, src string) error {
	s.labels = append(s.labels, label)
	p, err := prepare(label, src, len(s.labels))
	if err != nil {
		return err
	}
	s.run, s.line = 0, 0
	if _, err := s.in.EvalWithContext(ctx, p.decl); err != nil {
		return s.runtimeError(ctx, label, err)
	}
	if p.call == "" {
		return nil
	}
	if _, err := s.in.EvalWithContext(ctx, p.call); err != nil {
		return s.runtimeError(ctx, label, err)
	}
	return nil
}

func (s *yaegiSession) runtimeError(ctx context.Context, label string, err error) error {
	e := &Error{Kind: RuntimeError, Script: label, Message: err.Error(), Err: err}
	var p interp.Panic
	switch {
	case ctx.Err() != nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.As(err, &p):
		s.innermost(e)
	default:
		// errors found while compiling carry their position
		e.Line = line(err.Error())
		if e.Line == 0 {
			s.innermost(e)
		}
		e.Message = prefixRe.ReplaceAllString(e.Message, "")
	}
	return e
}

// innermost points e at the statement that ran last, which may belong to a
// function declared by an earlier script.
func (s *yaegiSession) innermost(e *Error) {
	if s.run < 1 || s.run > len(s.labels) {
		return
	}
	e.Script = s.labels[s.run-1]
	e.Line = s.line
}

// prepared is a script rewritten for the session: decl is evaluated first
// and call, when set, runs the statements declared by decl.
type prepared struct {
	decl string
	call string
}

// prepare wraps src in a function of its own unless it is a list of
// declarations, checks its syntax and puts a line marker in front of every
// statement. The markers share the line of their statement, so positions
// stay those of src. run numbers the scripts of a session.
func prepare(label, src string, run int) (prepared, error) {
	var p prepared
	var header string
	fn := fmt.Sprintf("svgscript_run%d", run)
	switch firstToken(src) {
	case token.PACKAGE:
		p.decl = src
	case token.CONST, token.FUNC, token.IMPORT, token.TYPE, token.VAR:
		header = "package main;"
		p.decl = src
	default:
		header = "package main;"
		p.decl = wrap(src, fn)
		p.call = fn + "()"
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, label, header+p.decl, parser.DeclarationErrors)
	if err != nil {
		e := &Error{Kind: CompileError, Script: label, Message: err.Error(), Err: err}
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			e.Line = list[0].Pos.Line
			e.Message = list[0].Msg
		}
		return p, e
	}
	p.decl = mark(fset, file, p.decl, len(header), run)
	return p, nil
}

// wrap turns a list of statements into the declaration of function fn,
// starting on the first line of src.
func wrap(src, fn string) string {
	return "func " + fn + "() {" + src + "\n}"
}

type marker struct {
	offset int
	line   int
}

// mark inserts a call to the line marker before every statement of file.
// skip is the length of the header parsed in front of src.
func mark(fset *token.FileSet, file *ast.File, src string, skip, run int) string {
	var markers []marker
	ast.Inspect(file, func(n ast.Node) bool {
		var list []ast.Stmt
		switch n := n.(type) {
		case *ast.BlockStmt:
			list = n.List
		case *ast.CaseClause:
			list = n.Body
		case *ast.CommClause:
			list = n.Body
		default:
			return true
		}
		for _, st := range list {
			switch st.(type) {
			case *ast.EmptyStmt, *ast.CaseClause, *ast.CommClause:
				continue
			}
			pos := fset.Position(st.Pos())
			markers = append(markers, marker{offset: pos.Offset - skip, line: pos.Line})
		}
		return true
	})
	sort.Slice(markers, func(i, j int) bool { return markers[i].offset < markers[j].offset })

	var sb strings.Builder
	last := 0
	for _, m := range markers {
		sb.WriteString(src[last:m.offset])
		fmt.Fprintf(&sb, "%s.Mark(%d, %d); ", tracePkg, run, m.line)
		last = m.offset
	}
	sb.WriteString(src[last:])
	return sb.String()
}

func firstToken(src string) token.Token {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, []byte(src), nil, 0)
	_, tok, _ := s.Scan()
	return tok
}

// line returns the line of the first position found in msg, or zero.
func line(msg string) int {
	m := positionRe.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
