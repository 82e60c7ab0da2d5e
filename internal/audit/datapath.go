// # internal/audit/datapath.go
package audit

import (
	stderrors "errors"
	"os/exec"

	"geninfo/internal/errors"
)

// IsGitAvailable reports whether the `git` binary is accessible via PATH.
func IsGitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// UsesCogDataPath queries the version-control index for any use of
// cog_data_path inside the package directory. A hit is informational only:
// the caller reminds the maintainer to mention storage in the install
// message.
func UsesCogDataPath(repoRoot, pkg string) (bool, error) {
	cmd := exec.Command("git", "-C", repoRoot, "grep", "-q", "cog_data_path", "--", pkg+"/")
	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, errors.Wrap(err, errors.CodeGit, "git grep command failed").
		WithContext(errors.CtxPackage, pkg)
}
