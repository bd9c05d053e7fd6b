package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// IsCommandNotFound checks if the error indicates the command was not found.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}

// Run prints label, runs cmd with its output attached, and reports the result.
func Run(label, cmd string, args ...string) error {
	PrintInfo(label)
	if err := sh.RunV(cmd, args...); err != nil {
		if IsCommandNotFound(err) {
			return err
		}
		PrintError(label + " failed")
		return fmt.Errorf("%s: %w", label, err)
	}
	PrintSuccess(label)
	return nil
}

// optional runs a tool that may not be installed; a missing tool is a warning.
func optional(label, install, cmd string, args ...string) error {
	err := Run(label, cmd, args...)
	if IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", cmd, install))
		return nil
	}
	return err
}
