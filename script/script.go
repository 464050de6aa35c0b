package script

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

const (
	// Prefix starts the id of every script node created by the host.
	Prefix = "svgscript_"

	// MainID is the id of the entry point script, run after all others.
	MainID = Prefix + "main"

	// Type is the type attribute of script nodes holding Go code.
	Type = "text/x-go"
)

// Script is a view over a script node of the document. The node text is
// the script source.
type Script struct {
	ID   string
	node *etree.Element
}

// Label is the id without the Prefix.
func (s *Script) Label() string {
	return strings.TrimPrefix(s.ID, Prefix)
}

// IsMain reports whether s is the entry point.
func (s *Script) IsMain() bool {
	return s.ID == MainID
}

// Source returns the script text.
func (s *Script) Source() string {
	return s.node.Text()
}

// SetSource replaces the script text.
func (s *Script) SetSource(src string) {
	s.node.SetText(src)
}

// code is the source handed to an engine. A trailing newline keeps a
// final line comment from swallowing the interpreter's wrapping.
func (s *Script) code() string {
	src := s.Source()
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	return src
}

// Compile checks the syntax of the script with e.
func (s *Script) Compile(e Engine) Result {
	return Result{Script: s, Err: e.Check(s.Label(), s.code())}
}

// Result is the outcome of compiling or running one script. Script is nil
// when the failure is not tied to a script, such as a session that could
// not be started.
type Result struct {
	Script *Script
	Err    error
}

// OK reports whether the script succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Line returns the failing line, or zero.
func (r Result) Line() int {
	var e *Error
	if errors.As(r.Err, &e) {
		return e.Line
	}
	return 0
}

// Message returns the error message, or an empty string on success.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

func placeholder(label string) string {
	return strings.Join([]string{
		"// Script: " + label,
		"//",
		"// Write Go statements or declarations here. They are stored in the",
		"// document and run with the svg and host packages in scope.",
		"",
	}, "\n")
}
