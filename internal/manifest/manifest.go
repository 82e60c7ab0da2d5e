// # internal/manifest/manifest.go
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"geninfo/internal/errors"
)

// Manifest is the parsed info.yaml: repo metadata, fields shared by every
// cog, and the per-package cog records in declared order.
type Manifest struct {
	Repo         Repo
	SharedFields SharedFields
	Cogs         map[string]*Cog
	CogOrder     []string

	doc *yaml.Node
}

type Repo struct {
	Name        string   `yaml:"name"`
	Short       string   `yaml:"short"`
	Description string   `yaml:"description"`
	InstallMsg  string   `yaml:"install_msg"`
	Author      []string `yaml:"author"`
}

type SharedFields struct {
	InstallMsg       string         `yaml:"install_msg"`
	Author           []string       `yaml:"author"`
	MinBotVersion    string         `yaml:"min_bot_version"`
	MaxBotVersion    string         `yaml:"max_bot_version"`
	MinPythonVersion *PythonVersion `yaml:"min_python_version"`
	Hidden           *bool          `yaml:"hidden"`
	Disabled         *bool          `yaml:"disabled"`
	Type             string         `yaml:"type"`
}

type Cog struct {
	Name                 string            `yaml:"name"`
	Short                string            `yaml:"short"`
	Description          string            `yaml:"description"`
	EndUserDataStatement string            `yaml:"end_user_data_statement"`
	ClassDocstring       string            `yaml:"class_docstring"`
	InstallMsg           string            `yaml:"install_msg"`
	Author               []string          `yaml:"author"`
	RequiredCogs         map[string]string `yaml:"required_cogs"`
	Requirements         []string          `yaml:"requirements"`
	Tags                 []string          `yaml:"tags"`
	MinBotVersion        string            `yaml:"min_bot_version"`
	MaxBotVersion        string            `yaml:"max_bot_version"`
	MinPythonVersion     *PythonVersion    `yaml:"min_python_version"`
	Hidden               *bool             `yaml:"hidden"`
	Disabled             *bool             `yaml:"disabled"`
	Type                 string            `yaml:"type"`
}

type document struct {
	Repo         Repo            `yaml:"repo"`
	SharedFields SharedFields    `yaml:"shared_fields"`
	Cogs         map[string]*Cog `yaml:"cogs"`
}

// botVersionRE accepts the bot's release scheme: MAJOR.MINOR.MICRO with
// optional pre/post/dev segments.
var botVersionRE = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(\.(a|b|rc)(0|[1-9]\d*))?(\.post(0|[1-9]\d*))?(\.dev(0|[1-9]\d*))?$`)

// Load reads and strictly decodes the manifest. Unknown keys are rejected,
// version strings are checked against their patterns, and cog type defaults
// to COG. Deeper schema validation happens upstream and is not repeated
// here.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeManifest, "cannot read manifest").
			WithContext(errors.CtxPath, path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Manifest, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeManifest, "manifest does not match schema")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.CodeManifest, "manifest is not valid YAML")
	}

	m := &Manifest{
		Repo:         doc.Repo,
		SharedFields: doc.SharedFields,
		Cogs:         doc.Cogs,
		doc:          &root,
	}
	m.CogOrder = m.declaredCogOrder()

	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) check() error {
	if m.Repo.Name == "" || m.Repo.Short == "" || m.Repo.Description == "" || m.Repo.InstallMsg == "" {
		return errors.New(errors.CodeManifest, "repo section is missing required keys")
	}
	if err := checkBotVersion("shared_fields", m.SharedFields.MinBotVersion); err != nil {
		return err
	}
	if err := checkBotVersion("shared_fields", m.SharedFields.MaxBotVersion); err != nil {
		return err
	}

	for pkg, cog := range m.Cogs {
		if cog == nil {
			return errors.New(errors.CodeManifest, "empty cog record").WithContext(errors.CtxPackage, pkg)
		}
		if cog.Name == "" || cog.Short == "" || cog.Description == "" || cog.EndUserDataStatement == "" {
			return errors.New(errors.CodeManifest, "cog record is missing required keys").
				WithContext(errors.CtxPackage, pkg)
		}
		if cog.Type == "" {
			cog.Type = "COG"
		}
		if cog.Type != "COG" && cog.Type != "SHARED_LIBRARY" {
			return errors.New(errors.CodeManifest, fmt.Sprintf("unknown cog type %q", cog.Type)).
				WithContext(errors.CtxPackage, pkg)
		}
		if err := checkBotVersion(pkg, cog.MinBotVersion); err != nil {
			return err
		}
		if err := checkBotVersion(pkg, cog.MaxBotVersion); err != nil {
			return err
		}
	}
	return nil
}

func checkBotVersion(section, version string) error {
	if version == "" || botVersionRE.MatchString(version) {
		return nil
	}
	return errors.New(errors.CodeManifest, fmt.Sprintf("invalid bot version %q", version)).
		WithContext(errors.CtxPackage, section)
}

func (m *Manifest) declaredCogOrder() []string {
	cogs := m.section("cogs")
	if cogs == nil {
		return nil
	}
	order := make([]string, 0, len(cogs.Content)/2)
	for i := 0; i+1 < len(cogs.Content); i += 2 {
		order = append(order, cogs.Content[i].Value)
	}
	return order
}

// section returns the mapping node of a top-level manifest key.
func (m *Manifest) section(key string) *yaml.Node {
	if m.doc == nil || len(m.doc.Content) == 0 {
		return nil
	}
	return findValue(m.doc.Content[0], key)
}

func findValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func mappingKeys(mapping *yaml.Node) []string {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	return keys
}

func sequenceValues(seq *yaml.Node) []string {
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil
	}
	values := make([]string, 0, len(seq.Content))
	for _, n := range seq.Content {
		values = append(values, n.Value)
	}
	return values
}
