// # internal/emit/readme.go
package emit

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	"geninfo/internal/errors"
	"geninfo/internal/manifest"
)

var cogSectionRE = regexp.MustCompile(`(?s)## Cog Menu\n\n(.+)\n\n## Contributing`)

// UpdateReadme rewrites the cog table between the "Cog Menu" and
// "Contributing" headings. Only that span changes; the file is written only
// when the table actually differs.
func UpdateReadme(path string, m *manifest.Manifest) (bool, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeManifest, "cannot read README").
			WithContext(errors.CtxPath, path)
	}

	loc := cogSectionRE.FindSubmatchIndex(text)
	if loc == nil {
		return false, errors.New(errors.CodeManifest, "couldn't find cogs section in README").
			WithContext(errors.CtxPath, path)
	}

	section := cogTable(m)
	start, end := loc[2], loc[3]
	if string(text[start:end]) == section {
		return false, nil
	}

	var out bytes.Buffer
	out.Write(text[:start])
	out.WriteString(section)
	out.Write(text[end:])

	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func cogTable(m *manifest.Manifest) string {
	lines := []string{"---\n| Name | Description |\n| --- | --- |"}
	for _, pkg := range m.CogOrder {
		cog := m.Cogs[pkg]
		desc := manifest.Expand(cog.Short, map[string]string{
			"repo_name": m.Repo.Name,
			"cog_name":  cog.Name,
		})
		lines = append(lines, "| "+pkg+" | "+desc+" |")
	}
	return strings.Join(lines, "\n")
}
