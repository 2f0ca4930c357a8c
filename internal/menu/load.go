package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML menu definition from path and builds the tree.
// Script references are resolved relative to the directory of path.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	tree, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes a YAML menu definition. baseDir anchors relative script paths.
func Parse(data []byte, baseDir string) (*Tree, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if err := resolveScripts(spec.Items, baseDir, nil); err != nil {
		return nil, err
	}
	return Build(spec)
}

func resolveScripts(items []ItemSpec, baseDir string, parents []string) error {
	for i := range items {
		item := &items[i]
		path := append(append([]string(nil), parents...), item.Name)
		if item.Script != "" {
			if item.Command != "" {
				return fmt.Errorf("%w: %s: command and script are mutually exclusive", ErrInvalidSpec, itemPath(path))
			}
			scriptPath := item.Script
			if !filepath.IsAbs(scriptPath) {
				scriptPath = filepath.Join(baseDir, scriptPath)
			}
			body, err := os.ReadFile(scriptPath)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidSpec, itemPath(path), err)
			}
			item.Command = string(body)
			item.Script = ""
		}
		if err := resolveScripts(item.Items, baseDir, path); err != nil {
			return err
		}
	}
	return nil
}
