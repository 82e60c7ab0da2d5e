// # internal/manifest/manifest_test.go
package manifest

import (
	"strings"
	"testing"

	"geninfo/internal/errors"
)

const validManifest = `repo:
  name: TestRepo
  short: Testing cogs.
  description: A repo used in tests.
  install_msg: Thanks for installing {repo_name}!
  author:
    - Tester

shared_fields:
  install_msg: Use '[p]help' to get started.
  author:
    - Tester
  min_bot_version: 3.5.0

cogs:
  alpha:
    name: Alpha
    short: Does alpha things.
    description: "{short}\n\nLong form."
    end_user_data_statement: This cog does not store user data.
  beta:
    name: Beta
    short: Does beta things.
    description: Beta long form.
    end_user_data_statement: This cog stores guild settings.
    requirements:
      - aiohttp
      - yarl
    tags:
      - utility
`

func TestParseValidManifest(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Repo.Name != "TestRepo" {
		t.Errorf("Expected repo name TestRepo, got %s", m.Repo.Name)
	}
	if len(m.Cogs) != 2 {
		t.Fatalf("Expected 2 cogs, got %d", len(m.Cogs))
	}
	if got := m.Cogs["alpha"].Type; got != "COG" {
		t.Errorf("Type should default to COG, got %s", got)
	}
	if len(m.CogOrder) != 2 || m.CogOrder[0] != "alpha" || m.CogOrder[1] != "beta" {
		t.Errorf("Declared cog order wrong: %v", m.CogOrder)
	}
	if m.SharedFields.MinBotVersion != "3.5.0" {
		t.Errorf("Expected shared min_bot_version 3.5.0, got %s", m.SharedFields.MinBotVersion)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	data := strings.Replace(validManifest, "tags:", "colour:", 1)
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("Unknown key must be rejected")
	}
	if !errors.IsCode(err, errors.CodeManifest) {
		t.Errorf("Expected manifest error code, got %v", err)
	}
}

func TestParseRejectsMissingRequiredCogKeys(t *testing.T) {
	data := strings.Replace(validManifest,
		"    end_user_data_statement: This cog does not store user data.\n", "", 1)
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("Missing end_user_data_statement must be rejected")
	}
}

func TestParseRejectsBadBotVersion(t *testing.T) {
	data := strings.Replace(validManifest, "min_bot_version: 3.5.0", "min_bot_version: v3.5", 1)
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("Malformed bot version must be rejected")
	}
}

func TestParseAcceptsPrereleaseBotVersion(t *testing.T) {
	data := strings.Replace(validManifest, "min_bot_version: 3.5.0", "min_bot_version: 3.5.0.rc1", 1)
	if _, err := Parse([]byte(data)); err != nil {
		t.Fatalf("Prerelease version should parse: %v", err)
	}
}

func TestLintOrderCleanManifest(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if warnings := m.LintOrder(); len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
}

func TestLintOrderCatchesViolations(t *testing.T) {
	data := `repo:
  short: Testing cogs.
  name: TestRepo
  description: A repo used in tests.
  install_msg: Thanks!

cogs:
  zeta:
    name: Zeta
    short: Z.
    description: Z cog.
    end_user_data_statement: Nothing stored.
  alpha:
    name: Alpha
    short: A.
    description: A cog.
    end_user_data_statement: Nothing stored.
    requirements:
      - yarl
      - aiohttp
`
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	warnings := m.LintOrder()
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	checks := []string{
		"keys in `repo` section have wrong order",
		"cog names in `cogs` section aren't sorted",
		"requirements for `alpha` cog aren't sorted",
	}
	for i, prefix := range checks {
		if !strings.Contains(warnings[i], prefix) {
			t.Errorf("Warning %d = %q, want it to mention %q", i, warnings[i], prefix)
		}
	}
}

func TestExpandLeavesUnknownPlaceholders(t *testing.T) {
	got := Expand("Install {repo_name}, then run {command}.", map[string]string{
		"repo_name": "TestRepo",
	})
	want := "Install TestRepo, then run {command}."
	if got != want {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestDocstringTextFallsBackToShort(t *testing.T) {
	cog := &Cog{Name: "Alpha", Short: "Cog for {repo_name}."}
	if got := cog.DocstringText("TestRepo"); got != "Cog for TestRepo." {
		t.Errorf("DocstringText = %q", got)
	}

	cog.ClassDocstring = "Override for {cog_name}."
	if got := cog.DocstringText("TestRepo"); got != "Override for Alpha." {
		t.Errorf("DocstringText override = %q", got)
	}
}

func TestPythonVersionParsing(t *testing.T) {
	data := strings.Replace(validManifest, "min_bot_version: 3.5.0",
		"min_bot_version: 3.5.0\n  min_python_version: 3.9.1", 1)
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v := m.SharedFields.MinPythonVersion
	if v == nil {
		t.Fatal("min_python_version missing")
	}
	if v.String() != "3.9.1" {
		t.Errorf("String = %s", v.String())
	}
	if !v.AtLeast(3, 9) || v.AtLeast(3, 10) {
		t.Errorf("AtLeast comparisons wrong for %s", v)
	}
}
