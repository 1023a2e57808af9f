package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "cards.csv", "Name,Set\nSol Ring,C21\n")
	empty := writeFixture(t, dir, "empty.csv", "")

	tests := []struct {
		name   string
		path   string
		passed bool
		detail string
	}{
		{"readable file", good, true, "read ok"},
		{"missing file", filepath.Join(dir, "absent.csv"), false, "does not exist"},
		{"directory", dir, false, "is a directory"},
		{"empty file", empty, false, "file is empty"},
		{"blank path", "  ", false, "no input file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckInputFile(tt.path)
			if result.Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v (detail %q)", result.Passed, tt.passed, result.Detail)
			}
			if !strings.Contains(result.Detail, tt.detail) {
				t.Errorf("Detail = %q, want substring %q", result.Detail, tt.detail)
			}
		})
	}
}

func TestCheckInputFileUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
	dir := t.TempDir()
	path := writeFixture(t, dir, "cards.csv", "Name\nSol Ring\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	result := CheckInputFile(path)
	if result.Passed {
		t.Fatal("expected unreadable file to fail")
	}
	if !strings.Contains(result.Detail, "permissions") {
		t.Errorf("Detail = %q, want permissions failure", result.Detail)
	}
}

func TestCheckOutputTarget(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		path   string
		passed bool
	}{
		{"existing directory", filepath.Join(dir, "out.csv"), true},
		{"missing directory", filepath.Join(dir, "nope", "out.csv"), false},
		{"blank path", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckOutputTarget(tt.path)
			if result.Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v (detail %q)", result.Passed, tt.passed, result.Detail)
			}
		})
	}
}

func TestCheckOutputTargetFileAsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFixture(t, dir, "plain.txt", "x")
	result := CheckOutputTarget(filepath.Join(file, "out.csv"))
	if result.Passed {
		t.Fatal("expected file-as-directory to fail")
	}
	if !strings.Contains(result.Detail, "not a directory") {
		t.Errorf("Detail = %q, want not-a-directory failure", result.Detail)
	}
}

func TestCheckServiceURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		passed bool
	}{
		{"https", "https://api.scryfall.com", true},
		{"http", "http://localhost:8080", true},
		{"empty", "", false},
		{"no scheme", "api.scryfall.com", false},
		{"wrong scheme", "ftp://api.scryfall.com", false},
		{"missing host", "https://", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckServiceURL(tt.url)
			if result.Passed != tt.passed {
				t.Fatalf("Passed = %v, want %v (detail %q)", result.Passed, tt.passed, result.Detail)
			}
		})
	}
}

func TestFailuresAndDescribe(t *testing.T) {
	results := []Result{
		{Name: "Input file", Passed: true, Detail: "ok"},
		{Name: "Output location", Passed: false, Detail: "/nope (error: directory does not exist)"},
		{Name: "Card database URL", Passed: false, Detail: "base URL is empty"},
	}
	failed := Failures(results)
	if len(failed) != 2 {
		t.Fatalf("Failures returned %d results, want 2", len(failed))
	}
	text := Describe(failed)
	if !strings.Contains(text, "Output location") || !strings.Contains(text, "Card database URL") {
		t.Errorf("Describe = %q, want both failed checks named", text)
	}
	if strings.Contains(text, "Input file") {
		t.Errorf("Describe = %q, should not include passing checks", text)
	}
}
