package main_test

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/apicheck"
	main "github.com/fwojciec/apicheck/cmd/apicheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rustdocPage renders a minimal rustdoc page for a HashSet living under the
// given breadcrumbs path, with one inherent impl holding methods.
func rustdocPage(crumbs string, methods ...string) string {
	var items strings.Builder
	for _, m := range methods {
		fmt.Fprintf(&items, `<section class="method"><h4 class="code-header">%s</h4></section>`, html.EscapeString(m))
	}
	return `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><meta name="generator" content="rustdoc"></head>
<body class="rustdoc struct">
<main>
<div class="width-limiter">
<section id="main-content" class="content">
<div class="main-heading"><div class="rustdoc-breadcrumbs">` + crumbs + `</div><h1>Struct <span class="struct">HashSet</span></h1></div>
<pre class="rust item-decl"><code>pub struct HashSet&lt;T&gt; { /* private fields */ }</code></pre>
<div id="implementations-list">
<details class="toggle implementors-toggle"><summary><section class="impl"><h3 class="code-header">impl&lt;T&gt; HashSet&lt;T&gt;</h3></section></summary><div class="impl-items">` + items.String() + `</div></details>
</div>
</section>
</div>
</main>
</body>
</html>`
}

// project is a checker configuration backed by an httptest reference server
// and a local doc root in a temporary directory.
type project struct {
	infoPath string
	docRoot  string
	dbPath   string
}

func (p project) args(args ...string) []string {
	return append([]string{"--info", p.infoPath, "--doc-root", p.docRoot, "--db", p.dbPath}, args...)
}

func setupProject(t *testing.T, reference, local []string) project {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/std/collections/struct.HashSet.html" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(rustdocPage("std::collections", reference...)))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	docRoot := filepath.Join(dir, "target", "doc")
	localPath := filepath.Join(docRoot, "gdvariants", "collections", "hash_set", "struct.HashSet.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(localPath), 0o755))
	require.NoError(t, os.WriteFile(localPath, []byte(rustdocPage("gdvariants::collections", local...)), 0o644))

	info := fmt.Sprintf(`{
  "name": "gdvariants",
  "sources": [
    {
      "name": "HashSet",
      "docs": {
        "source": "%s/std/collections/struct.HashSet.html",
        "local": "collections/hash_set/struct.HashSet.html"
      }
    }
  ]
}`, server.URL)
	infoPath := filepath.Join(dir, "info.json")
	require.NoError(t, os.WriteFile(infoPath, []byte(info), 0o644))

	return project{
		infoPath: infoPath,
		docRoot:  docRoot,
		dbPath:   filepath.Join(dir, "history.db"),
	}
}

func run(t *testing.T, args []string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "default.db")
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"list", "api", "diff", "history"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, []string{"--help"})

		require.NoError(t, err)
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "diff")
	})

	t.Run("shows command help without running the command", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t,
			[]string{"pub fn new() -> HashSet<T>", "pub fn clear(&mut self)"},
			[]string{"pub fn new() -> HashSet<T>"},
		)

		stdout, _, err := run(t, p.args("diff", "--all", "--record", "--help"))

		require.NoError(t, err)
		assert.Contains(t, stdout, "Usage: apicheck diff")
		assert.NotContains(t, stdout, "API does not implement")
		assert.NotContains(t, stdout, "FAIL")
		assert.NoFileExists(t, p.dbPath)
	})

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("returns ENOTFOUND for missing info file", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, []string{"--info", filepath.Join(t.TempDir(), "info.json"), "list"})

		assert.Equal(t, apicheck.ENOTFOUND, apicheck.ErrorCode(err))
		assert.Contains(t, stderr, "Hint:")
	})

	t.Run("lists configured items", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, nil, nil)

		stdout, _, err := run(t, p.args("list"))

		require.NoError(t, err)
		assert.Equal(t, "HashSet\n", stdout)
	})

	t.Run("prints reference surface", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, []string{"pub fn new() -> HashSet<T>"}, nil)

		stdout, _, err := run(t, p.args("api", "HashSet", "std"))

		require.NoError(t, err)
		assert.Contains(t, stdout, "std::collections::HashSet\n")
		assert.Contains(t, stdout, "pub struct HashSet<T> { /* private fields */ }")
		assert.Contains(t, stdout, "  impl<T> HashSet<T>\n    pub fn new() -> HashSet<T>\n")
	})

	t.Run("prints local surface as JSON", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, nil, []string{"pub fn len(&self) -> usize"})

		stdout, _, err := run(t, p.args("api", "HashSet", "local", "--json"))

		require.NoError(t, err)
		assert.Contains(t, stdout, `"name": "gdvariants::collections::HashSet"`)
		assert.Contains(t, stdout, `"pub fn len(&self) -> usize"`)
		assert.Contains(t, stdout, `"generator": {`)
		assert.Contains(t, stdout, `"hash": "`)
	})

	t.Run("passes when local covers reference", func(t *testing.T) {
		t.Parallel()

		methods := []string{"pub fn new() -> HashSet<T>", "pub fn len(&self) -> usize"}
		p := setupProject(t, methods, methods)

		stdout, _, err := run(t, p.args("diff", "HashSet"))

		require.NoError(t, err)
		assert.Equal(t, "OK HashSet\n", stdout)
	})

	t.Run("prints gaps and returns ErrGapsFound", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t,
			[]string{"pub fn new() -> HashSet<T>", "pub fn len(&self) -> usize", "pub fn is_empty(&self) -> bool"},
			[]string{"pub fn new() -> HashSet<T>"},
		)

		stdout, _, err := run(t, p.args("diff", "--all"))

		require.ErrorIs(t, err, main.ErrGapsFound)
		assert.Equal(t, "API does not implement: impl<T> HashSet<T> - pub fn len(&self) -> usize\n"+
			"API does not implement: impl<T> HashSet<T> - pub fn is_empty(&self) -> bool\n"+
			"FAIL HashSet (2 gaps)\n", stdout)
	})

	t.Run("accepts rate flag", func(t *testing.T) {
		t.Parallel()

		methods := []string{"pub fn new() -> HashSet<T>"}
		p := setupProject(t, methods, methods)

		stdout, _, err := run(t, p.args("--rate", "0", "diff", "HashSet"))

		require.NoError(t, err)
		assert.Equal(t, "OK HashSet\n", stdout)
	})

	t.Run("rejects local page documenting another crate", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, nil, nil)
		page := strings.Replace(rustdocPage("hashbrown"),
			`<meta name="generator" content="rustdoc">`,
			`<meta name="generator" content="rustdoc"><meta name="rustdoc-vars" data-current-crate="hashbrown">`, 1)
		localPath := filepath.Join(p.docRoot, "gdvariants", "collections", "hash_set", "struct.HashSet.html")
		require.NoError(t, os.WriteFile(localPath, []byte(page), 0o644))

		_, _, err := run(t, p.args("diff", "HashSet"))

		assert.Equal(t, apicheck.EINVALID, apicheck.ErrorCode(err))
		assert.Contains(t, apicheck.ErrorMessage(err), "documents crate hashbrown, not gdvariants")
	})

	t.Run("records runs and shows history", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, []string{"pub fn new() -> HashSet<T>"}, nil)

		_, _, err := run(t, p.args("diff", "HashSet", "--record"))
		require.ErrorIs(t, err, main.ErrGapsFound)

		stdout, _, err := run(t, p.args("history"))

		require.NoError(t, err)
		assert.Contains(t, stdout, "gdvariants  HashSet  FAIL (1 gaps)")
	})

	t.Run("shows empty history without info file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		stdout, _, err := run(t, []string{"--info", filepath.Join(dir, "info.json"), "--db", filepath.Join(dir, "history.db"), "history"})

		require.NoError(t, err)
		assert.Contains(t, stdout, "No runs recorded")
	})

	t.Run("logs pipeline steps when verbose", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, nil, nil)

		_, stderr, err := run(t, p.args("--verbose", "api", "HashSet", "local"))

		require.NoError(t, err)
		assert.Contains(t, stderr, "msg=fetch")
		assert.Contains(t, stderr, "msg=extract")
	})

	t.Run("reports missing local page", func(t *testing.T) {
		t.Parallel()

		p := setupProject(t, nil, nil)
		require.NoError(t, os.RemoveAll(filepath.Join(p.docRoot, "gdvariants")))

		_, _, err := run(t, p.args("diff", "HashSet"))

		assert.Equal(t, apicheck.ENOTFOUND, apicheck.ErrorCode(err))
		assert.Contains(t, err.Error(), "cargo doc")
	})
}
