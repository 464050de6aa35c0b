package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	svg "github.com/vasalvit/svgscript"
	"github.com/vasalvit/svgscript/script"
)

// expand resolves glob patterns, ** included, to a list of files without
// duplicates.
func expand(patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", p)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// open loads a document and a host over it.
func open(path string, stdout, stderr io.Writer) (*svg.Document, *script.Host, error) {
	doc, err := svg.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	h := script.NewHost(doc,
		script.WithLogger(slog.Default().With("file", path)),
		script.WithStdout(stdout),
		script.WithStderr(stderr),
	)
	return doc, h, nil
}

// save writes doc to path unless running dry.
func save(doc *svg.Document, path string) error {
	if cfg.DryRun {
		slog.Info("dry run, not writing", "file", path)
		return nil
	}
	doc.Indent(cfg.Indent)
	if err := doc.WriteFile(path); err != nil {
		return err
	}
	slog.Debug("written", "file", path)
	return nil
}

// report prints every failed result as "file: message" and returns the
// number of failures.
func report(w io.Writer, file string, results []script.Result) int {
	failed := 0
	for _, r := range results {
		if r.OK() {
			continue
		}
		failed++
		fmt.Fprintf(w, "%s: %s\n", file, r.Message())
	}
	return failed
}
