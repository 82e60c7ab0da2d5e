// # internal/manifest/version.go
package manifest

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"geninfo/internal/errors"
)

var pythonVersionRE = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// PythonVersion is a MAJOR.MINOR.MICRO triple. It decodes from the
// manifest's string form and marshals to JSON as a three-element array, the
// form the downloader expects in info.json.
type PythonVersion [3]int

func (v *PythonVersion) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	match := pythonVersionRE.FindStringSubmatch(raw)
	if match == nil {
		return errors.New(errors.CodeManifest,
			fmt.Sprintf("expected Python version (MAJOR.MINOR.MICRO), got %q", raw))
	}
	for i := 0; i < 3; i++ {
		v[i], _ = strconv.Atoi(match[i+1])
	}
	return nil
}

func (v PythonVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// AtLeast reports whether the version is >= major.minor.
func (v PythonVersion) AtLeast(major, minor int) bool {
	if v[0] != major {
		return v[0] > major
	}
	return v[1] >= minor
}
