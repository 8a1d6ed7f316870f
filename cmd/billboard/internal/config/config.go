// Package config resolves the optional billboard.yaml project
// configuration, filling defaults from the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional billboard.yaml configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Preview PreviewConfig `yaml:"preview"`
}

// SiteConfig contains site metadata.
type SiteConfig struct {
	Name string `yaml:"name,omitempty"`
}

// PreviewConfig contains render settings for the preview commands.
type PreviewConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Preview defaults.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	DefaultOutput = "preview.png"
)

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	SiteName   string
	Width      int
	Height     int
	Output     string
}

// LoadOptional reads billboard.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "billboard.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read billboard.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse billboard.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads billboard.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := readModulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	siteName := strings.TrimSpace(cfg.Site.Name)
	if siteName == "" {
		siteName = defaultSiteName(modulePath, dir)
	}

	width := cfg.Preview.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := cfg.Preview.Height
	if height <= 0 {
		height = DefaultHeight
	}
	output := strings.TrimSpace(cfg.Preview.Output)
	if output == "" {
		output = DefaultOutput
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		SiteName:   siteName,
		Width:      width,
		Height:     height,
		Output:     output,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultSiteName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." {
		return "billboard-site"
	}
	return base
}
