//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/tpt"
	binPath    = "./bin/tpt"
)

// Default target - build the binary
var Default = Build

// Build builds the tpt binary with version metadata baked in.
func Build() error {
	ldflags := fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		modulePath, gitVersion(), modulePath, gitCommit(), modulePath, time.Now().UTC().Format(time.RFC3339))

	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/tpt")
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and, when installed, staticcheck.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Fprintln(os.Stderr, "staticcheck not available, skipping (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("./bin")
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
