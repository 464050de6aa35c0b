package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	svg "github.com/vasalvit/svgscript"
)

// Host runs the scripts stored in a document. Every batch is a
// transaction: when any script fails the document is put back as it was
// before the batch.
type Host struct {
	doc     *svg.Document
	opts    *options
	scripts []*Script
}

// NewHost returns a host over doc with its scripts loaded.
func NewHost(doc *svg.Document, opts ...Option) *Host {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	h := &Host{doc: doc, opts: o}
	h.Reload()
	return h
}

// Doc returns the document the host works on.
func (h *Host) Doc() *svg.Document {
	return h.doc
}

// Reload rebuilds the script list from the document, creating the main
// script when the document has none.
func (h *Host) Reload() {
	h.scripts = nil
	var main *Script
	for _, node := range svg.FindByTag(h.doc.Root(), "script") {
		if node.SelectAttrValue("type", "") != Type {
			continue
		}
		id := node.SelectAttrValue("id", "")
		if id == "" {
			h.opts.logger.Warn("skipping script node without id", "document", h.doc.Name)
			continue
		}
		s := &Script{ID: id, node: node}
		if s.IsMain() {
			if main == nil {
				main = s
			}
			continue
		}
		h.scripts = append(h.scripts, s)
	}
	if main == nil {
		main = h.newScript(MainID)
		h.opts.logger.Debug("created main script", "document", h.doc.Name)
	}
	h.scripts = append(h.scripts, main)
}

// Scripts returns the scripts in document order, the main script last.
func (h *Host) Scripts() []*Script {
	return append([]*Script(nil), h.scripts...)
}

// Main returns the entry point script.
func (h *Host) Main() *Script {
	return h.scripts[len(h.scripts)-1]
}

// Script returns the script with the given id or label.
func (h *Host) Script(id string) (*Script, error) {
	for _, s := range h.scripts {
		if s.ID == id || s.Label() == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoScript, id)
}

// CreateScript adds a script node with placeholder source. The name is
// lower-cased and prefixed; an existing script with the resulting id is
// returned as is.
func (h *Host) CreateScript(name string) *Script {
	id := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(id, Prefix) {
		id = Prefix + id
	}
	if s, err := h.Script(id); err == nil && s.ID == id {
		return s
	}
	s := h.newScript(id)
	// main stays last
	n := len(h.scripts)
	h.scripts = append(h.scripts[:n-1:n-1], s, h.scripts[n-1])
	return s
}

func (h *Host) newScript(id string) *Script {
	node := etree.NewElement("script")
	node.CreateAttr("id", id)
	node.CreateAttr("type", Type)
	h.doc.Root().AddChild(node)
	s := &Script{ID: id, node: node}
	s.SetSource(placeholder(s.Label()))
	return s
}

// CompileAll checks every script and reports whether all compiled.
func (h *Host) CompileAll() (bool, []Result) {
	ok := true
	results := make([]Result, 0, len(h.scripts))
	for _, s := range h.scripts {
		r := s.Compile(h.opts.engine)
		if !r.OK() {
			ok = false
			h.opts.logger.Debug("compile failed", "script", s.Label(), "error", r.Err)
		}
		results = append(results, r)
	}
	return ok, results
}

// ExecuteAll compiles every script and, when all compile, runs them in one
// shared namespace: the other scripts in document order, then main if
// none of them failed. On failure the document is restored and the
// scripts reloaded. It returns the compile results when compilation
// fails and the run results otherwise.
func (h *Host) ExecuteAll(ctx context.Context) (bool, []Result) {
	ok, results := h.CompileAll()
	if !ok {
		return false, results
	}

	saved := h.doc.Snapshot()
	env := Env{
		Doc:    h.doc,
		NS:     Namespace{},
		Host:   h,
		Stdout: h.opts.stdout,
		Stderr: h.opts.stderr,
	}
	session, err := h.opts.engine.NewSession(env)
	if err != nil {
		return false, []Result{{Err: fmt.Errorf("error starting session: %w", err)}}
	}

	scripts := h.Scripts()
	main := scripts[len(scripts)-1]
	results = make([]Result, 0, len(scripts))
	run := func(s *Script) {
		h.opts.logger.Debug("running script", "script", s.Label())
		r := Result{Script: s, Err: session.Run(ctx, s.Label(), s.code())}
		if !r.OK() {
			ok = false
			h.opts.logger.Warn("script failed", "script", s.Label(), "error", r.Err)
		}
		results = append(results, r)
	}
	for _, s := range scripts[:len(scripts)-1] {
		run(s)
	}
	if ok {
		run(main)
	}

	if !ok {
		h.doc.Restore(saved)
		h.Reload()
		h.opts.logger.Info("batch failed, document restored", "document", h.doc.Name)
	}
	return ok, results
}
