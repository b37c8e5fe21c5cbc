// Package github wraps the gh CLI for the single lookup gj needs:
// resolving a pull request number to its head branch name.
package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mirakui/gj/internal/cmd"
)

// ErrPRNotFound indicates the pull request does not exist or has no
// head branch.
var ErrPRNotFound = errors.New("pull request not found")

// PRBranch returns the head branch name of a pull request in the
// repository at repoPath, using the gh CLI.
func PRBranch(ctx context.Context, repoPath string, number int) (string, error) {
	output, err := cmd.OutputContext(ctx, repoPath, "gh",
		"pr", "view", fmt.Sprint(number),
		"--json", "headRefName",
		"-q", ".headRefName")
	if err != nil {
		return "", fmt.Errorf("%w: PR #%d: %v", ErrPRNotFound, number, err)
	}

	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "", fmt.Errorf("%w: PR #%d has no head branch", ErrPRNotFound, number)
	}

	return branch, nil
}
