// # internal/emit/info.go
package emit

import (
	"encoding/json"
	"os"
	"path/filepath"

	"geninfo/internal/manifest"
)

// BundledDataNote is appended to a cog's install message when the package
// ships a data directory.
const BundledDataNote = "\n\nThis cog comes with bundled data."

// RepoInfo and CogInfo mirror the downloader's info.json schema. Field order
// matters: the emitted JSON must follow the canonical key order, which the
// struct declaration pins down.
type RepoInfo struct {
	Name        string   `json:"name"`
	Short       string   `json:"short"`
	Description string   `json:"description"`
	InstallMsg  string   `json:"install_msg"`
	Author      []string `json:"author"`
}

type CogInfo struct {
	Name                 string                  `json:"name"`
	Short                string                  `json:"short"`
	Description          string                  `json:"description"`
	EndUserDataStatement string                  `json:"end_user_data_statement"`
	InstallMsg           string                  `json:"install_msg,omitempty"`
	Author               []string                `json:"author,omitempty"`
	RequiredCogs         map[string]string       `json:"required_cogs"`
	Requirements         []string                `json:"requirements"`
	Tags                 []string                `json:"tags"`
	MinBotVersion        string                  `json:"min_bot_version,omitempty"`
	MaxBotVersion        string                  `json:"max_bot_version,omitempty"`
	MinPythonVersion     *manifest.PythonVersion `json:"min_python_version,omitempty"`
	Hidden               bool                    `json:"hidden"`
	Disabled             bool                    `json:"disabled"`
	Type                 string                  `json:"type"`
}

// WriteRepoInfo emits the repository-level info.json at root.
func WriteRepoInfo(root string, repo manifest.Repo) error {
	info := RepoInfo{
		Name:        repo.Name,
		Short:       repo.Short,
		Description: repo.Description,
		InstallMsg: manifest.Expand(repo.InstallMsg, map[string]string{
			"repo_name": repo.Name,
		}),
		Author: repo.Author,
	}
	return writeJSON(filepath.Join(root, "info.json"), info)
}

// BuildCogInfo assembles one cog's info.json record: missing values fall
// back to the shared fields, the bundled-data note is appended when the
// package ships data, and the text fields get their placeholders resolved.
// The manifest-only class_docstring key is deliberately absent.
func BuildCogInfo(m *manifest.Manifest, pkg string, hasBundledData bool) CogInfo {
	cog := m.Cogs[pkg]
	shared := m.SharedFields

	info := CogInfo{
		Name:                 cog.Name,
		Short:                cog.Short,
		Description:          cog.Description,
		EndUserDataStatement: cog.EndUserDataStatement,
		InstallMsg:           fallback(cog.InstallMsg, shared.InstallMsg),
		Author:               cog.Author,
		RequiredCogs:         cog.RequiredCogs,
		Requirements:         cog.Requirements,
		Tags:                 cog.Tags,
		MinBotVersion:        fallback(cog.MinBotVersion, shared.MinBotVersion),
		MaxBotVersion:        fallback(cog.MaxBotVersion, shared.MaxBotVersion),
		MinPythonVersion:     cog.MinPythonVersion,
		Type:                 cog.Type,
	}
	if info.Author == nil {
		info.Author = shared.Author
	}
	if info.MinPythonVersion == nil {
		info.MinPythonVersion = shared.MinPythonVersion
	}
	info.Hidden = boolValue(cog.Hidden, shared.Hidden)
	info.Disabled = boolValue(cog.Disabled, shared.Disabled)

	if info.RequiredCogs == nil {
		info.RequiredCogs = map[string]string{}
	}
	if info.Requirements == nil {
		info.Requirements = []string{}
	}
	if info.Tags == nil {
		info.Tags = []string{}
	}

	if hasBundledData {
		info.InstallMsg += BundledDataNote
	}

	sharedValues := m.SharedFieldValues()
	replacements := map[string]string{
		"repo_name": m.Repo.Name,
		"cog_name":  info.Name,
	}

	info.Short = manifest.Expand(manifest.Expand(info.Short, sharedValues), replacements)
	info.InstallMsg = manifest.Expand(manifest.Expand(info.InstallMsg, sharedValues), replacements)

	descReplacements := map[string]string{
		"repo_name": m.Repo.Name,
		"cog_name":  info.Name,
		"short":     info.Short,
	}
	info.Description = manifest.Expand(manifest.Expand(info.Description, sharedValues), descReplacements)

	return info
}

// WriteCogInfo emits one package's info.json inside its directory.
func WriteCogInfo(root, pkg string, info CogInfo) error {
	return writeJSON(filepath.Join(root, pkg, "info.json"), info)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fallback(value, shared string) string {
	if value != "" {
		return value
	}
	return shared
}

func boolValue(value, shared *bool) bool {
	if value != nil {
		return *value
	}
	if shared != nil {
		return *shared
	}
	return false
}
