package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/giza/internal/config"
	"git.home.luguber.info/inful/giza/internal/discovery"
	ferrors "git.home.luguber.info/inful/giza/internal/foundation/errors"
	helpers "git.home.luguber.info/inful/giza/internal/testutil/testutils"
	"git.home.luguber.info/inful/giza/internal/toc"
)

const indexRST = `Welcome to myproject's documentation!
=====================================

Contents:

.. toctree::
   :maxdepth: 2

   intro
`

type project struct {
	root   string
	vendor string
}

func newProject(t *testing.T) project {
	t.Helper()
	p := project{root: t.TempDir(), vendor: t.TempDir()}
	helpers.WriteTree(t, p.root, map[string]string{
		"myapp/__init__.py":   "",
		"myapp/models.py":     "class Post(models.Model):\n    pass\n",
		"myapp/utils.py":      "X = 1\n",
		"docs/index.rst":      indexRST,
		"project/settings.py": "INSTALLED_APPS = [\n    'django.contrib.admin',\n    'myapp',\n    'taggit',\n]\n",
	})
	helpers.WriteTree(t, p.vendor, map[string]string{
		"django/contrib/admin/__init__.py": "def autodiscover(): pass\n",
		"taggit/__init__.py":               "",
		"taggit/managers.py":               "class TaggableManager: pass\n",
	})
	return p
}

func (p project) config(t *testing.T, extra string) *config.Config {
	t.Helper()
	raw := "project_root: " + p.root + "\nsearch_paths: [" + p.vendor + "]\n" + extra
	cfg, err := config.Parse([]byte(raw))
	require.NoError(t, err)
	return cfg
}

func read(t *testing.T, path string) string {
	t.Helper()
	return helpers.ReadFile(t, filepath.Dir(path), filepath.Base(path))
}

func TestRun_Scenario(t *testing.T) {
	p := newProject(t)
	cfg := p.config(t, "installed_apps: [myapp, django.contrib.admin]\n")

	var out bytes.Buffer
	report, err := Run(cfg, Options{StartDir: p.root, Out: &out})
	require.NoError(t, err)

	require.Len(t, report.Apps, 1)
	assert.Equal(t, "myapp", report.Apps[0].Name)
	assert.Equal(t, toc.ResultInserted, report.IndexResult)
	assert.Equal(t, "myapp.utils not relevant, removed\n", out.String())

	doc := read(t, filepath.Join(p.root, "docs", "auto_modules.rst"))
	assert.Contains(t, doc, "myapp\n=====\n\nmodels\n------\n\n.. automodule:: myapp.models\n    :deprecated:\n")
	assert.NotContains(t, doc, "myapp.utils")
	assert.NotContains(t, doc, "django")

	internalAt := strings.Index(doc, "Project Apps")
	externalAt := strings.Index(doc, "3rd Party Apps")
	blockAt := strings.Index(doc, ".. automodule:: myapp.models")
	assert.True(t, internalAt < blockAt && blockAt < externalAt, "myapp belongs to the internal section")

	index := read(t, filepath.Join(p.root, "docs", "index.rst"))
	assert.Contains(t, index, "\n\n   :maxdepth: 2\n   auto_modules\n\n   intro\n")
}

func TestRun_Idempotent(t *testing.T) {
	p := newProject(t)
	cfg := p.config(t, "installed_apps: [myapp, taggit]\n")

	_, err := Run(cfg, Options{StartDir: p.root})
	require.NoError(t, err)
	firstDoc := read(t, filepath.Join(p.root, "docs", "auto_modules.rst"))
	firstIndex := read(t, filepath.Join(p.root, "docs", "index.rst"))

	report, err := Run(cfg, Options{StartDir: p.root})
	require.NoError(t, err)
	assert.Equal(t, toc.ResultAlreadyPresent, report.IndexResult)
	helpers.NewFileAssertions(t, p.root).
		AssertFileEquals("docs/auto_modules.rst", firstDoc).
		AssertFileEquals("docs/index.rst", firstIndex).
		AssertOccurrences("docs/index.rst", "auto_modules", 1)
}

func TestRun_SettingsFileAndExternalApps(t *testing.T) {
	p := newProject(t)
	cfg := p.config(t, "installed_apps: [myapp]\nsettings_file: project/settings.py\n")

	report, err := Run(cfg, Options{StartDir: p.root})
	require.NoError(t, err)

	names := make([]string, 0, len(report.Apps))
	for _, app := range report.Apps {
		names = append(names, app.Name)
	}
	assert.Equal(t, []string{"myapp", "taggit"}, names, "duplicates from the settings file are dropped")
	assert.False(t, report.Apps[1].Internal)

	doc := read(t, report.GeneratedPath)
	assert.Greater(t, strings.Index(doc, ".. automodule:: taggit.managers"), strings.Index(doc, "3rd Party Apps"))
}

func TestRun_DocsRootOverride(t *testing.T) {
	p := newProject(t)
	helpers.WriteTree(t, p.root, map[string]string{"handbook/index.rst": indexRST})
	cfg := p.config(t, "installed_apps: [myapp]\n")

	report, err := Run(cfg, Options{StartDir: p.root, DocsRoot: "handbook"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.root, "handbook", "auto_modules.rst"), report.GeneratedPath)
	assert.FileExists(t, report.GeneratedPath)
	assert.NoFileExists(t, filepath.Join(p.root, "docs", "auto_modules.rst"))
}

func TestRun_MarkerMissingLeavesIndex(t *testing.T) {
	p := newProject(t)
	helpers.WriteTree(t, p.root, map[string]string{"docs/index.rst": "Title\n=====\n"})
	cfg := p.config(t, "installed_apps: [myapp]\n")

	var out bytes.Buffer
	report, err := Run(cfg, Options{StartDir: p.root, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, toc.ResultMarkerNotFound, report.IndexResult)
	assert.Contains(t, out.String(), ":maxdepth: 2 not found in")
	assert.Equal(t, "Title\n=====\n", read(t, report.IndexPath))
	assert.FileExists(t, report.GeneratedPath)
}

func TestRun_Failures(t *testing.T) {
	t.Run("unknown app", func(t *testing.T) {
		p := newProject(t)
		cfg := p.config(t, "installed_apps: [myapp, ghost]\n")
		_, err := Run(cfg, Options{StartDir: p.root})
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
		assert.NoFileExists(t, filepath.Join(p.root, "docs", "auto_modules.rst"))
	})

	t.Run("missing index", func(t *testing.T) {
		p := newProject(t)
		require.NoError(t, os.Remove(filepath.Join(p.root, "docs", "index.rst")))
		cfg := p.config(t, "installed_apps: [myapp]\n")
		_, err := Run(cfg, Options{StartDir: p.root})
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
		assert.ErrorIs(t, err, toc.ErrIndexNotFound)
	})

	t.Run("missing settings file", func(t *testing.T) {
		p := newProject(t)
		cfg := p.config(t, "settings_file: nope/settings.py\n")
		_, err := Run(cfg, Options{StartDir: p.root})
		require.Error(t, err)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	})
}

func TestPlan_DoesNotWrite(t *testing.T) {
	p := newProject(t)
	cfg := p.config(t, "installed_apps: [myapp, taggit]\n")

	report, err := Plan(cfg, Options{StartDir: p.root})
	require.NoError(t, err)
	assert.Len(t, report.Apps, 2)
	assert.NoFileExists(t, report.GeneratedPath)
	assert.Equal(t, indexRST, read(t, report.IndexPath))
}

func TestRelevanceFor(t *testing.T) {
	src := []byte("# default values\n")
	assert.True(t, RelevanceFor(config.RelevanceSubstring)(src))
	assert.False(t, RelevanceFor(config.RelevanceDeclaration)(src))
	assert.NotNil(t, RelevanceFor(""))

	var f discovery.RelevanceFunc = RelevanceFor(config.RelevanceDeclaration)
	assert.True(t, f([]byte("class A: pass\n")))
}
