package github

import (
	"errors"
	"os/exec"
)

// ErrGHNotFound indicates the gh CLI is not installed or not in PATH
var ErrGHNotFound = errors.New("gh not found: please install GitHub CLI (https://cli.github.com)")

// CheckGH verifies that the gh CLI is available in PATH
func CheckGH() error {
	if _, err := exec.LookPath("gh"); err != nil {
		return ErrGHNotFound
	}
	return nil
}
