package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitArgsLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple args", "a b c", []string{"a", "b", "c"}},
		{"double quoted string", `"hello world" foo`, []string{"hello world", "foo"}},
		{"single quoted string", `'hello world' foo`, []string{"hello world", "foo"}},
		{"mixed quotes", `"hello world" 'foo bar' baz`, []string{"hello world", "foo bar", "baz"}},
		{"empty string", "", nil},
		{"tabs as separators", "a\tb\tc", []string{"a", "b", "c"}},
		{"single arg", "hello", []string{"hello"}},
		{"multiple spaces", "a   b   c", []string{"a", "b", "c"}},
		{"leading and trailing spaces", "  a b  ", []string{"a", "b"}},
		{"quoted moves", `-moves "e2e4 e7e5"`, []string{"-moves", "e2e4 e7e5"}},
		{"empty quotes", `-moves ""`, []string{"-moves", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitArgsLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitArgsLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func writeArgsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "args.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadArgsFile(t *testing.T) {
	t.Run("valid file with args comments and empty lines", func(t *testing.T) {
		path := writeArgsFile(t, `# Ruy Lopez
-moves "e2e4 e7e5 g1f3 b8c6 f1b5"

# Show the knight
-from f3
-strict
`)
		got, err := loadArgsFile(path)
		if err != nil {
			t.Fatalf("loadArgsFile() error = %v", err)
		}
		want := []string{"-moves", "e2e4 e7e5 g1f3 b8c6 f1b5", "-from", "f3", "-strict"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("loadArgsFile() = %v, want %v", got, want)
		}
	})

	t.Run("non-existent file returns error", func(t *testing.T) {
		_, err := loadArgsFile("/nonexistent/path/args.txt")
		if err == nil {
			t.Error("loadArgsFile() expected error for non-existent file, got nil")
		}
	})

	t.Run("empty file returns nil", func(t *testing.T) {
		got, err := loadArgsFile(writeArgsFile(t, ""))
		if err != nil {
			t.Fatalf("loadArgsFile() error = %v", err)
		}
		if got != nil {
			t.Errorf("loadArgsFile() = %v, want nil", got)
		}
	})
}

func TestLoadArgsFromFileIfSpecified(t *testing.T) {
	path := writeArgsFile(t, "-strict\n-J\n")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no -A", []string{"-fen", "x"}, []string{"-fen", "x"}},
		{"separate value", []string{"-v", "2", "-A", path, "-from", "e2"}, []string{"-v", "2", "-strict", "-J", "-from", "e2"}},
		{"equals value", []string{"-A=" + path}, []string{"-strict", "-J"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadArgsFromFileIfSpecified(tt.args)
			if err != nil {
				t.Fatalf("loadArgsFromFileIfSpecified() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("loadArgsFromFileIfSpecified() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("missing value", func(t *testing.T) {
		if _, err := loadArgsFromFileIfSpecified([]string{"-A"}); err == nil {
			t.Error("expected error for -A without a file")
		}
	})
}
