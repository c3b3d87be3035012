package dynamic

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS is a package-level variable that can be set with embedded config files
var EmbeddedFS embed.FS

// WalkConfigDirectory walks the config directory and loads all YAML tool
// definitions. It first attempts to load from the embedded filesystem,
// falling back to the OS filesystem for development and testing.
func WalkConfigDirectory(configDir string) ([]*ToolConfig, error) {
	configs, err := walkEmbeddedConfigs()
	if err == nil && len(configs) > 0 {
		slog.Info("loaded tools from embedded filesystem", "count", len(configs))
		return configs, nil
	}
	return walkOSFilesystem(configDir)
}

// walkEmbeddedConfigs loads tools from the embedded filesystem
func walkEmbeddedConfigs() ([]*ToolConfig, error) {
	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	var configs []*ToolConfig
	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded config", "path", path, "error", err)
			return err
		}
		config, err := parseToolConfig(data, path)
		if err != nil {
			slog.Error("failed to parse embedded tool config", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Debug("loaded tool config from embedded FS", "tool", config.Name, "category", config.Category)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded configs: %w", err)
	}
	return configs, nil
}

// walkOSFilesystem loads tools from a directory on disk
func walkOSFilesystem(configDir string) ([]*ToolConfig, error) {
	if _, err := os.Stat(configDir); err != nil {
		return nil, fmt.Errorf("config directory %q not accessible: %w", configDir, err)
	}

	var configs []*ToolConfig
	err := filepath.WalkDir(configDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(d.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read config", "path", path, "error", err)
			return err
		}
		config, err := parseToolConfig(data, path)
		if err != nil {
			slog.Error("failed to parse tool config", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk config directory: %w", err)
	}
	return configs, nil
}

func isYAMLFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// parseToolConfig unmarshals and validates one tool definition. The tool's
// category is the name of the directory the file sits in.
func parseToolConfig(data []byte, path string) (*ToolConfig, error) {
	var config ToolConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("tool config %s is missing a name", path)
	}
	if config.Description == "" {
		return nil, fmt.Errorf("tool %q is missing a description", config.Name)
	}
	if err := validateParameters(config.Parameters); err != nil {
		return nil, fmt.Errorf("tool %q: %w", config.Name, err)
	}

	config.Category = filepath.Base(filepath.Dir(path))
	return &config, nil
}

func validateParameters(params []ParameterConfig) error {
	validTypes := map[string]bool{
		"string": true, "integer": true, "number": true,
		"boolean": true, "array": true, "object": true,
	}
	seen := make(map[string]bool)
	for _, p := range params {
		if p.Name == "" {
			return fmt.Errorf("parameter is missing a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Type != "" && !validTypes[p.Type] {
			return fmt.Errorf("parameter %q has invalid type %q", p.Name, p.Type)
		}
	}
	return nil
}
