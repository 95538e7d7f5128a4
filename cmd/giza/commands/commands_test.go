package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpers "git.home.luguber.info/inful/giza/internal/testutil/testutils"
)

type exitCode int

func panicExit(code int) { panic(exitCode(code)) }

// env is a throwaway Django-like project with a giza.yaml next to it.
type env struct {
	root       string
	configPath string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
}

func newEnv(t *testing.T, apps string) *env {
	t.Helper()
	e := &env{root: t.TempDir()}
	e.configPath = filepath.Join(e.root, "giza.yaml")

	files := map[string]string{
		"blog/__init__.py":   "",
		"blog/models.py":     "class Post: pass\n",
		"blog/constants.py":  "PAGE_SIZE = 20\n",
		"docs/index.rst":     ".. toctree::\n   :maxdepth: 2\n\n   intro\n",
		"handbook/index.rst": ".. toctree::\n   :maxdepth: 2\n",
		"giza.yaml":          "project_root: " + e.root + "\ninstalled_apps: " + apps + "\n",
	}
	helpers.WriteTree(t, e.root, files)
	return e
}

func (e *env) run(args ...string) int {
	e.stdout.Reset()
	e.stderr.Reset()
	return Execute(append([]string{"-c", e.configPath}, args...), &e.stdout, &e.stderr, panicExit)
}

func TestGenerate(t *testing.T) {
	e := newEnv(t, "[blog]")

	code := e.run("generate")
	require.Equal(t, 0, code, e.stderr.String())

	generated := filepath.Join(e.root, "docs", "auto_modules.rst")
	assert.FileExists(t, generated)
	assert.Contains(t, e.stdout.String(), "blog.constants not relevant, removed\n")
	assert.Contains(t, e.stdout.String(), "Wrote "+generated+" (1 apps)\n")
	assert.Contains(t, e.stdout.String(), "Added auto_modules to ")

	index := helpers.ReadFile(t, e.root, "docs/index.rst")
	assert.Contains(t, index, "   :maxdepth: 2\n   auto_modules\n")

	// Second run leaves the master index alone.
	require.Equal(t, 0, e.run("generate"))
	assert.NotContains(t, e.stdout.String(), "Added auto_modules")
	helpers.NewFileAssertions(t, e.root).AssertFileEquals("docs/index.rst", index)
}

func TestGenerate_DocsRootArgument(t *testing.T) {
	e := newEnv(t, "[blog]")

	require.Equal(t, 0, e.run("generate", "handbook"), e.stderr.String())
	helpers.NewFileAssertions(t, e.root).
		AssertFileContains("handbook/auto_modules.rst", ".. automodule:: blog.models").
		AssertFileContains("handbook/index.rst", "   auto_modules").
		AssertNoFile("docs/auto_modules.rst")
}

func TestGenerate_ExitCodes(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		e := newEnv(t, "[blog]")
		e.configPath = filepath.Join(e.root, "absent.yaml")
		assert.Equal(t, 7, e.run("generate"))
		assert.Contains(t, e.stderr.String(), "configuration file not found")
	})

	t.Run("unknown application", func(t *testing.T) {
		e := newEnv(t, "[blog, ghost]")
		assert.Equal(t, 4, e.run("generate"))
		assert.Contains(t, e.stderr.String(), "application not found")
		assert.NoFileExists(t, filepath.Join(e.root, "docs", "auto_modules.rst"))
	})

	t.Run("missing master index", func(t *testing.T) {
		e := newEnv(t, "[blog]")
		assert.Equal(t, 11, e.run("generate", "nowhere"))
	})

	t.Run("invalid arguments", func(t *testing.T) {
		e := newEnv(t, "[blog]")
		assert.Equal(t, 2, e.run("generate", "--bogus"))
	})
}

func TestDiscover(t *testing.T) {
	e := newEnv(t, "[blog]")

	require.Equal(t, 0, e.run("discover"), e.stderr.String())
	out := e.stdout.String()
	assert.Contains(t, out, "Project root: "+e.root+"\n")
	assert.Contains(t, out, "blog (internal): models\n")
	assert.NoFileExists(t, filepath.Join(e.root, "docs", "auto_modules.rst"))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"init", "-o", dir}, &stdout, &stderr, panicExit)
	require.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, filepath.Join(dir, "giza.yaml"))
	assert.Contains(t, stdout.String(), "initialized successfully")

	code = Execute([]string{"init", "-o", dir}, &stdout, &stderr, panicExit)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "already exists")

	assert.Equal(t, 0, Execute([]string{"init", "-o", dir, "--force"}, &stdout, &stderr, panicExit))
}

func TestVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	var code exitCode = -1
	func() {
		defer func() {
			if r := recover(); r != nil {
				code = r.(exitCode)
			}
		}()
		Execute([]string{"--version"}, &stdout, &stderr, panicExit)
	}()

	assert.Equal(t, exitCode(0), code)
	assert.True(t, strings.HasPrefix(stdout.String(), "giza "), stdout.String())
}
