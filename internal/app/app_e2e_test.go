// # internal/app/app_e2e_test.go
package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geninfo/internal/app"
	"geninfo/internal/audit"
	"geninfo/internal/config"
)

const fixtureManifest = `repo:
  name: TestRepo
  short: Testing cogs.
  description: A repo used in tests.
  install_msg: Thanks for installing {repo_name}!
  author:
    - Tester

cogs:
  mycog:
    name: MyCog
    short: Tracks things for {repo_name}.
    description: "{short}\n\nLong form."
    end_user_data_statement: Nothing stored.
`

const fixtureReadme = `# TestRepo

## Cog Menu

stale

## Contributing

PRs welcome.
`

func writeFixture(t *testing.T, initPy string) *config.Config {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("info.yaml", fixtureManifest)
	write("README.md", fixtureReadme)
	write(filepath.Join("mycog", "__init__.py"), initPy)

	cfg := config.Default()
	cfg.Root = root
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	// 1. Fixture: a clean repo whose cog class still lacks its docstring.
	cfg := writeFixture(t, `__red_end_user_data_statement__ = "Nothing stored."


class MyCog:
    pass
`)

	// 2. Full pipeline run.
	a, err := app.New(cfg)
	require.NoError(t, err)
	report, err := a.Run()
	require.NoError(t, err)

	assert.True(t, report.Pass, "findings: %v, warnings: %v", report.Findings, report.OrderWarnings)
	require.Len(t, report.Rewritten, 1)

	// 3. The class docstring now matches the manifest.
	source, err := os.ReadFile(filepath.Join(cfg.Root, "mycog", "__init__.py"))
	require.NoError(t, err)
	assert.Contains(t, string(source), `"""Tracks things for TestRepo."""`)

	// 4. Every generated artifact exists.
	for _, rel := range []string{
		"info.json",
		filepath.Join("mycog", "info.json"),
		filepath.Join(".ci", "requirements", "all_cogs.txt"),
		filepath.Join(".ci", "py38", "black_file_list.txt"),
		filepath.Join(".ci", "py38", "compileall_file_list.txt"),
	} {
		_, err := os.Stat(filepath.Join(cfg.Root, rel))
		assert.NoError(t, err, rel)
	}

	readme, err := os.ReadFile(filepath.Join(cfg.Root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "| mycog | Tracks things for TestRepo. |")

	// 5. A second run is a no-op on the synchronized docstring.
	second, err := a.Run()
	require.NoError(t, err)
	assert.Empty(t, second.Rewritten)
}

func TestRunReportsFindings(t *testing.T) {
	cfg := writeFixture(t, `from redbot.core import commands


class MyCog:
    @commands.command()
    async def busted(self, ctx):
        pass
`)

	a, err := app.New(cfg)
	require.NoError(t, err)
	report, err := a.Run()
	require.NoError(t, err)

	assert.False(t, report.Pass, "missing docstring and marker must fail the run")

	kinds := map[audit.FindingKind]int{}
	for _, f := range report.Findings {
		kinds[f.Kind]++
	}
	assert.Equal(t, 1, kinds[audit.MissingDocstring], "findings: %v", report.Findings)
	assert.Equal(t, 1, kinds[audit.MissingMarker], "findings: %v", report.Findings)
}

func TestRunFailsWithoutEntryFile(t *testing.T) {
	cfg := writeFixture(t, "class MyCog:\n    pass\n")
	require.NoError(t, os.Remove(filepath.Join(cfg.Root, "mycog", "__init__.py")))

	a, err := app.New(cfg)
	require.NoError(t, err)
	_, err = a.Run()
	require.Error(t, err, "package without __init__.py must abort the run")
}
