package script

import (
	"context"
	"io"

	svg "github.com/vasalvit/svgscript"
)

// Namespace is the mutable key-value context shared by every script of a
// batch. A value stored by one script is seen by the scripts that run
// after it.
type Namespace map[string]any

// Env is what a session exposes to the scripts it runs.
type Env struct {
	Doc    *svg.Document
	NS     Namespace
	Host   *Host
	Stdout io.Writer
	Stderr io.Writer
}

// Engine is the pluggable interpreter behind a Host.
//
// Contract:
//   - Check only validates syntax; it must not run anything.
//   - Errors returned by Check and by Session.Run should be *Error where
//     possible, so that callers get a line number.
type Engine interface {
	// Check reports the first syntax error of src, labelled with label.
	Check(label, src string) error

	// NewSession returns a session whose scripts share one namespace.
	NewSession(env Env) (Session, error)
}

// Session runs scripts one after the other in a shared namespace.
type Session interface {
	Run(ctx context.Context, label, src string) error
}
