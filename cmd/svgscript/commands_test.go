package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svg "github.com/vasalvit/svgscript"
	"github.com/vasalvit/svgscript/internal/config"
	"github.com/vasalvit/svgscript/script"
)

const scripted = `<svg xmlns="http://www.w3.org/2000/svg">
<script id="svgscript_main" type="text/x-go">b := svg.NewBuilder()
b.CircleCenter(host.NS["r"].(float64), 10, 10)
host.Must(b.Create(host.Root(), nil, "circle"))
</script>
<script id="svgscript_a" type="text/x-go">host.NS["r"] = 5.0
</script>
</svg>`

// execute runs the command line args with stdin as input and returns what
// was printed on stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	withConfig(t, config.Default())
	setFrom, newFrom, watchOut, dryRun = "-", "", "", false

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestList(t *testing.T) {
	in := writeFile(t, t.TempDir(), "a.svg", scripted)

	out, err := execute(t, "", "list", in)
	require.NoError(t, err)
	assert.Equal(t, "a\tsvgscript_a\nmain\tsvgscript_main *\n", out)

	_, err = execute(t, "", "list", filepath.Join(t.TempDir(), "missing.svg"))
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	in := writeFile(t, t.TempDir(), "a.svg", scripted)

	out, err := execute(t, "", "show", in, "a")
	require.NoError(t, err)
	assert.Equal(t, "host.NS[\"r\"] = 5.0\n", out)

	_, err = execute(t, "", "show", in, "nope")
	assert.ErrorIs(t, err, script.ErrNoScript)
}

func TestSet(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "a.svg", scripted)
	src := writeFile(t, dir, "a.go", "host.NS[\"r\"] = 2.0\n")

	_, err := execute(t, "", "set", in, "a", "--from", src)
	require.NoError(t, err)
	out, err := execute(t, "", "show", in, "a")
	require.NoError(t, err)
	assert.Equal(t, "host.NS[\"r\"] = 2.0\n", out)

	// the new source is what runs
	withConfig(t, &config.Config{OutputSuffix: ".out"})
	ok, err := runFile(context.Background(), in, io.Discard, io.Discard)
	require.NoError(t, err)
	require.True(t, ok)
	doc, err := svg.ReadFile(filepath.Join(dir, "a.out.svg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.ElementByID("circle").SelectAttrValue("d", ""), "M 8 10 A 2 2"))

	// stdin without --from
	_, err = execute(t, "host.NS[\"r\"] = 3.0\n", "set", in, "a")
	require.NoError(t, err)
	out, err = execute(t, "", "show", in, "a")
	require.NoError(t, err)
	assert.Equal(t, "host.NS[\"r\"] = 3.0\n", out)
}

func TestSetRejectsBadSyntax(t *testing.T) {
	in := writeFile(t, t.TempDir(), "a.svg", scripted)

	_, err := execute(t, "x := := 1\n", "set", in, "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, script.ErrCompile))

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, scripted, string(data))
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "a.svg", scripted)

	out, err := execute(t, "", "new", in, "Helper")
	require.NoError(t, err)
	assert.Equal(t, "svgscript_helper\n", out)

	out, err = execute(t, "", "list", in)
	require.NoError(t, err)
	assert.Equal(t, "a\tsvgscript_a\nhelper\tsvgscript_helper\nmain\tsvgscript_main *\n", out)

	// asking again keeps the existing script
	out, err = execute(t, "", "new", in, "helper")
	require.NoError(t, err)
	assert.Equal(t, "svgscript_helper\n", out)

	out, err = execute(t, "", "new", in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, script.Prefix+"script-"), out)

	src := writeFile(t, dir, "extra.go", "host.NS[\"extra\"] = true\n")
	_, err = execute(t, "", "new", in, "extra", "--from", src)
	require.NoError(t, err)
	out, err = execute(t, "", "show", in, "extra")
	require.NoError(t, err)
	assert.Equal(t, "host.NS[\"extra\"] = true\n", out)
}

func TestWatchNeedsSeparateOutput(t *testing.T) {
	in := writeFile(t, t.TempDir(), "a.svg", scripted)

	_, err := execute(t, "", "watch", in)
	assert.Error(t, err)

	_, err = execute(t, "", "watch", in, "--out", in)
	assert.Error(t, err)
}

func TestWatchRebuilds(t *testing.T) {
	withConfig(t, config.Default())
	dir := t.TempDir()
	in := writeFile(t, dir, "a.svg", drawing)
	out := filepath.Join(dir, "a.out.svg")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, in, out, io.Discard, io.Discard)
	}()

	circle := func(prefix string) func() bool {
		return func() bool {
			doc, err := svg.ReadFile(out)
			if err != nil {
				return false
			}
			el := doc.ElementByID("circle")
			return el != nil && strings.HasPrefix(el.SelectAttrValue("d", ""), prefix)
		}
	}
	require.Eventually(t, circle("M 5 10 A 5 5"), 5*time.Second, 20*time.Millisecond)

	changed := strings.Replace(drawing, "CircleCenter(5, 10, 10)", "CircleCenter(2, 10, 10)", 1)
	require.NoError(t, os.WriteFile(in, []byte(changed), 0o644))
	require.Eventually(t, circle("M 8 10 A 2 2"), 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
