package svg

import "errors"

var (
	// ErrEmptyPath is returned when a query needs a point but the path has no commands.
	ErrEmptyPath = errors.New("path has no commands")

	// ErrIndexOutOfRange is returned when end point resolution walks past the
	// beginning of the command list, e.g. a lone H or V command.
	ErrIndexOutOfRange = errors.New("command index out of range")

	// ErrNoNode is returned by Commit when no path element is bound or given.
	ErrNoNode = errors.New("no svg:path node has been selected")

	// ErrSyntax marks malformed path data.
	ErrSyntax = errors.New("bad path data")
)
