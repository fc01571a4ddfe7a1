package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// getBinaryPath returns the path to the advert_generator binary for testing
func getBinaryPath(t *testing.T) string {
	t.Helper()
	binaryName := "advert_generator"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/%s ./cmd/%s'", binaryPath, binaryName, binaryName)
	}

	abs, err := filepath.Abs(binaryPath)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", binaryPath, err)
	}
	return abs
}

// envWithout returns the current environment minus the named variables.
func envWithout(names ...string) []string {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	var env []string
	for _, e := range os.Environ() {
		if name, _, _ := strings.Cut(e, "="); !drop[name] {
			env = append(env, e)
		}
	}
	return env
}
