// # internal/emit/ci.go
package emit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"geninfo/internal/manifest"
)

// baseRequirement heads every generated requirements file.
const baseRequirement = "Red-DiscordBot"

// pythonVersions is the matrix of python versions CI runs against, oldest
// first. Cogs whose minimum bot version needs a newer python are filtered
// out of the older columns.
var pythonVersions = [][2]int{{3, 8}}

// WriteCILists regenerates the CI support files under ciDir: the combined
// requirements list plus, per python version, the requirements, black and
// compileall file lists.
func WriteCILists(root, ciDir string, m *manifest.Manifest) error {
	allReqs := map[string]bool{}
	reqsByVersion := map[[2]int]map[string]bool{}
	blackByVersion := map[[2]int][]string{}
	compileallByVersion := map[[2]int][]string{}
	for _, pv := range pythonVersions {
		reqsByVersion[pv] = map[string]bool{}
		blackByVersion[pv] = []string{".ci"}
		compileallByVersion[pv] = []string{"."}
	}
	maxVersion := pythonVersions[len(pythonVersions)-1]

	for _, pkg := range m.CogOrder {
		cog := m.Cogs[pkg]
		for _, req := range cog.Requirements {
			allReqs[req] = true
		}

		minPython := minPythonFor(cog, m.SharedFields)
		known := false
		for _, pv := range pythonVersions {
			if pv == minPython {
				known = true
			}
			if !lessVersion(pv, minPython) {
				for _, req := range cog.Requirements {
					reqsByVersion[pv][req] = true
				}
			}
			if pv != maxVersion && !lessVersion(pv, minPython) {
				compileallByVersion[pv] = append(compileallByVersion[pv], pkg)
			}
		}
		if known {
			blackByVersion[minPython] = append(blackByVersion[minPython], pkg)
		} else {
			slog.Warn("cog needs a python version outside the CI matrix",
				"package", pkg, "python", fmt.Sprintf("%d.%d", minPython[0], minPython[1]))
		}
	}

	if err := writeRequirements(filepath.Join(root, ciDir, "requirements", "all_cogs.txt"), allReqs); err != nil {
		return err
	}

	for _, pv := range pythonVersions {
		dir := filepath.Join(root, ciDir, fmt.Sprintf("py%d%d", pv[0], pv[1]))
		if err := writeRequirements(filepath.Join(dir, "requirements", "all_cogs.txt"), reqsByVersion[pv]); err != nil {
			return err
		}
		if err := writeFileList(filepath.Join(dir, "black_file_list.txt"), blackByVersion[pv]); err != nil {
			return err
		}
		if err := writeFileList(filepath.Join(dir, "compileall_file_list.txt"), compileallByVersion[pv]); err != nil {
			return err
		}
	}
	return nil
}

// minPythonFor derives a cog's minimum python version: the floor implied by
// its minimum bot version (currently a single row, so always the oldest),
// raised by an explicit min_python_version on the cog or the shared fields.
func minPythonFor(cog *manifest.Cog, shared manifest.SharedFields) [2]int {
	floor := pythonVersions[0]

	pv := cog.MinPythonVersion
	if pv == nil {
		pv = shared.MinPythonVersion
	}
	if pv != nil && pv.AtLeast(floor[0], floor[1]) {
		floor = [2]int{pv[0], pv[1]}
	}
	return floor
}

func lessVersion(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func writeRequirements(path string, reqs map[string]bool) error {
	sorted := make([]string, 0, len(reqs))
	for req := range reqs {
		sorted = append(sorted, req)
	}
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(baseRequirement + "\n")
	for _, req := range sorted {
		b.WriteString(req + "\n")
	}
	return writeFile(path, b.String())
}

func writeFileList(path string, entries []string) error {
	sorted := append([]string(nil), entries...)
	sort.Strings(sorted)
	return writeFile(path, strings.Join(sorted, " "))
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
