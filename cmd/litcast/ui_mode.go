package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode controls whether directory checks render the interactive
// progress view or stay on plain line output.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// readUIMode parses the --ui flag value. An empty value counts as auto.
func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("--ui accepts auto, on, or off, got %q", value)
	}
}

// shouldUseTUI resolves auto against the actual stdout: piping check
// output into a file or another tool must never produce escape codes.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
