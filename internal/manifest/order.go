// # internal/manifest/order.go
package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical key orders for the manifest sections. The lint compares the
// document's declared order against these; violations are warnings that fail
// the run without stopping it.
var (
	repoKeyOrder = []string{"name", "short", "description", "install_msg", "author"}

	sharedFieldsKeyOrder = []string{
		"install_msg", "author",
		"min_bot_version", "max_bot_version", "min_python_version",
		"hidden", "disabled", "type",
	}

	cogKeyOrder = []string{
		"name", "short", "description", "end_user_data_statement",
		"class_docstring", "install_msg", "author",
		"required_cogs", "requirements", "tags",
		"min_bot_version", "max_bot_version", "min_python_version",
		"hidden", "disabled", "type",
	}
)

// LintOrder checks key ordering across the manifest document: fixed orders
// for the repo, shared_fields and per-cog sections, alphabetical cog names,
// and sorted required_cogs/requirements/tags lists.
func (m *Manifest) LintOrder() []string {
	var warnings []string

	for _, section := range []struct {
		key   string
		order []string
	}{
		{"repo", repoKeyOrder},
		{"shared_fields", sharedFieldsKeyOrder},
	} {
		keys := mappingKeys(m.section(section.key))
		if want := sortedByCanonical(keys, section.order); !equal(keys, want) {
			warnings = append(warnings, fmt.Sprintf(
				"keys in `%s` section have wrong order - use this order: %s",
				section.key, strings.Join(want, ", ")))
		}
	}

	cogNames := mappingKeys(m.section("cogs"))
	if !sort.StringsAreSorted(cogNames) {
		warnings = append(warnings,
			"cog names in `cogs` section aren't sorted, use alphabetical order")
	}

	cogs := m.section("cogs")
	for _, pkg := range cogNames {
		cog := findValue(cogs, pkg)
		keys := mappingKeys(cog)
		if want := sortedByCanonical(keys, cogKeyOrder); !equal(keys, want) {
			warnings = append(warnings, fmt.Sprintf(
				"keys in `cogs->%s` section have wrong order - use this order: %s",
				pkg, strings.Join(want, ", ")))
		}

		if keys := mappingKeys(findValue(cog, "required_cogs")); !sort.StringsAreSorted(keys) {
			warnings = append(warnings, fmt.Sprintf(
				"required cogs for `%s` cog aren't sorted, use alphabetical order", pkg))
		}
		for _, listKey := range []string{"requirements", "tags"} {
			if values := sequenceValues(findValue(cog, listKey)); !sort.StringsAreSorted(values) {
				warnings = append(warnings, fmt.Sprintf(
					"%s for `%s` cog aren't sorted, use alphabetical order", listKey, pkg))
			}
		}
	}

	return warnings
}

// sortedByCanonical reorders keys by their index in the canonical order.
// Keys are known to exist in the canonical list because the manifest decode
// is strict.
func sortedByCanonical(keys, canonical []string) []string {
	index := make(map[string]int, len(canonical))
	for i, k := range canonical {
		index[k] = i
	}
	out := append([]string(nil), keys...)
	sort.SliceStable(out, func(i, j int) bool {
		return index[out[i]] < index[out[j]]
	})
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
