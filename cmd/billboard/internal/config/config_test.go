package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, yamlContent string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module github.com/example/sunrise-site\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	if yamlContent != "" {
		if err := os.WriteFile(filepath.Join(dir, "billboard.yaml"), []byte(yamlContent), 0o644); err != nil {
			t.Fatalf("write billboard.yaml: %v", err)
		}
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ModulePath != "github.com/example/sunrise-site" {
		t.Errorf("module path = %q", resolved.ModulePath)
	}
	if resolved.SiteName != "sunrise-site" {
		t.Errorf("site name = %q, want module base name", resolved.SiteName)
	}
	if resolved.Width != DefaultWidth || resolved.Height != DefaultHeight {
		t.Errorf("surface = %dx%d, want defaults", resolved.Width, resolved.Height)
	}
	if resolved.Output != DefaultOutput {
		t.Errorf("output = %q, want %q", resolved.Output, DefaultOutput)
	}
}

func TestResolveOverrides(t *testing.T) {
	dir := writeProject(t, `
site:
  name: Nightjar
preview:
  width: 375
  height: 667
  output: phone.png
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.SiteName != "Nightjar" {
		t.Errorf("site name = %q, want Nightjar", resolved.SiteName)
	}
	if resolved.Width != 375 || resolved.Height != 667 {
		t.Errorf("surface = %dx%d, want 375x667", resolved.Width, resolved.Height)
	}
	if resolved.Output != "phone.png" {
		t.Errorf("output = %q, want phone.png", resolved.Output)
	}
}

func TestResolveRejectsBadYAML(t *testing.T) {
	dir := writeProject(t, "site: [not: a map\n")

	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected parse error for malformed billboard.yaml")
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Fatal("expected error outside a Go module")
	}
}
