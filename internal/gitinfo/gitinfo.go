package gitinfo

import (
	"context"
	"os/exec"
	"strings"
)

// Context is a best-effort snapshot of the local git repository the console
// runs inside. It exists purely for display next to command details.
type Context struct {
	Branch string // current branch name
	Commit string // latest commit as "shorthash - subject"
}

// Describe collects branch and latest-commit information for dir. When git
// is not installed, dir is not inside a repository, or either command
// fails, it returns ok=false; callers simply omit the section.
func Describe(ctx context.Context, dir string) (Context, bool) {
	branch, err := output(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return Context{}, false
	}
	commit, err := output(ctx, dir, "log", "-1", "--format=%h - %s")
	if err != nil {
		return Context{}, false
	}
	if branch == "" || commit == "" {
		return Context{}, false
	}
	return Context{Branch: branch, Commit: commit}, true
}

func output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
