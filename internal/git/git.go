package git

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

func IsInGitRepo(ctx context.Context, wd string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = wd
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}

// IsIgnored reports whether path would be ignored by git. path may be
// relative to wd.
func IsIgnored(ctx context.Context, wd, path string) (bool, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(wd, path)
	}
	// check-ignore exits 1 when the path is not ignored.
	cmd := exec.CommandContext(ctx, "git", "check-ignore", "--quiet", path)
	cmd.Dir = filepath.Dir(path)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}
