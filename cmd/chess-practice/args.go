package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified expands "-A file" in args with the
// arguments read from file. It runs before flag.Parse.
func loadArgsFromFileIfSpecified(args []string) ([]string, error) {
	for i := 0; i < len(args); i++ {
		var path string
		switch {
		case args[i] == "-A" || args[i] == "--A":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("flag -A needs a file argument")
			}
			path = args[i+1]
		case strings.HasPrefix(args[i], "-A="):
			path = strings.TrimPrefix(args[i], "-A=")
		default:
			continue
		}

		extra, err := loadArgsFile(path)
		if err != nil {
			return nil, err
		}
		end := i + 1
		if !strings.Contains(args[i], "=") {
			end = i + 2
		}
		expanded := make([]string, 0, len(args)+len(extra))
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, extra...)
		expanded = append(expanded, args[end:]...)
		return expanded, nil
	}
	return args, nil
}

// loadArgsFile reads arguments from path. Blank lines and lines starting
// with # are skipped; quoting follows splitArgsLine.
func loadArgsFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("open args file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read args file: %w", err)
	}
	return args, nil
}

// splitArgsLine splits a line on spaces and tabs, keeping single- or
// double-quoted text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
