package version

import (
	"os/exec"
	"strings"
)

var (
	Version = "0.1.0"
	Commit  = "unknown"
	Date    = "unknown"
)

// Resolve returns the version string, with a git-derived suffix when the
// binary runs from a working tree whose HEAD is not on a release tag.
func Resolve() string {
	return resolveVersion(Version, runGit)
}

func resolveVersion(base string, git func(...string) (string, error)) string {
	if base == "" {
		base = "0.0.0"
	}

	if _, err := git("rev-parse", "--git-dir"); err != nil {
		return base
	}
	if _, err := git("describe", "--tags", "--exact-match"); err == nil {
		return base
	}

	desc, err := git("describe", "--tags", "--dirty", "--always")
	if err != nil || desc == "" {
		return base
	}

	if rest, ok := strings.CutPrefix(desc, "v"+base+"-"); ok {
		return base + "-" + rest
	}
	return base + "-" + desc
}

func runGit(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
