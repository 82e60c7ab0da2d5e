// # internal/manifest/placeholders.go
package manifest

import "regexp"

var placeholderRE = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_.]*)\}`)

// Expand substitutes `{name}` placeholders from values. Placeholders without
// a value are left intact, so later substitution passes (or genuinely
// literal braces) survive unchanged.
func Expand(text string, values map[string]string) string {
	return placeholderRE.ReplaceAllStringFunc(text, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := values[key]; ok {
			return v
		}
		return match
	})
}

// DocstringText is the docstring the cog's class should carry: the explicit
// override when the manifest declares one, the short description otherwise,
// with the repo/cog placeholders resolved.
func (c *Cog) DocstringText(repoName string) string {
	text := c.ClassDocstring
	if text == "" {
		text = c.Short
	}
	return Expand(text, map[string]string{
		"repo_name": repoName,
		"cog_name":  c.Name,
	})
}

// SharedFieldValues exposes the shared fields as dotted placeholder keys
// (`{shared_fields.install_msg}` and friends) for the emit phase.
func (m *Manifest) SharedFieldValues() map[string]string {
	values := map[string]string{
		"shared_fields.install_msg": m.SharedFields.InstallMsg,
	}
	if m.SharedFields.MinBotVersion != "" {
		values["shared_fields.min_bot_version"] = m.SharedFields.MinBotVersion
	}
	if m.SharedFields.MaxBotVersion != "" {
		values["shared_fields.max_bot_version"] = m.SharedFields.MaxBotVersion
	}
	if m.SharedFields.Type != "" {
		values["shared_fields.type"] = m.SharedFields.Type
	}
	return values
}
