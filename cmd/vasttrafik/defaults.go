package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// readDefaults loads saved search patterns from ~/.vasttrafik, one
// regular expression per line. This is CLI-specific convenience and is
// not part of the core library. A missing file just means no defaults.
func readDefaults() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	f, err := os.Open(filepath.Join(home, ".vasttrafik"))
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
