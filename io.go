package argmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Save serializes the full store to path, creating missing parent
// directories and writing atomically through a temporary file. The
// format follows the file extension: YAML by default, TOML for .toml,
// JSON for .json.
func (s *Store) Save(path string) error {
	snap := s.Snapshot()

	var data []byte
	var err error
	switch detectFileFormat(path) {
	case "toml":
		data, err = encodeTOML(snap)
	case "json":
		data, err = json.MarshalIndent(snap, "", "  ")
		if err != nil {
			err = fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
	default:
		data, err = DumpYAML(snap)
	}
	if err != nil {
		return err
	}

	if err := atomicWriteFile(path, data); err != nil {
		return err
	}
	s.log().Info("saved configuration", "path", path, "keys", len(snap))
	return nil
}

// decodeFile reads and parses a configuration file into a value tree,
// selecting the parser by file extension (YAML unless .toml or .json).
func decodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q does not exist", ErrFileAccess, path)
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrFileAccess, path, err)
	}

	switch detectFileFormat(path) {
	case "toml":
		tree := make(map[string]any)
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file %q: %w", path, err)
		}
		return tree, nil
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // preserve number precision
		var tree any
		if err := decoder.Decode(&tree); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file %q: %w", path, err)
		}
		return normalizeJSON(tree), nil
	default:
		tree, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file %q: %w", path, err)
		}
		return tree, nil
	}
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// encodeTOML nests dotted keys into tables and drops null values,
// which TOML cannot represent.
func encodeTOML(snap map[string]any) ([]byte, error) {
	nested := make(map[string]any)
	for key, value := range snap {
		if value == nil {
			continue
		}
		setNestedValue(nested, key, value)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(nested); err != nil {
		return nil, fmt.Errorf("failed to marshal config data to TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeJSON converts json.Number leaves to int64 or float64 so
// file-sourced values carry the same types as the other sources.
func normalizeJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for key, value := range v {
			v[key] = normalizeJSON(value)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeJSON(item)
		}
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return v
	}
}

// atomicWriteFile creates the parent directory and replaces path in a
// single rename so a failed write never leaves a truncated file.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory %q: %v", ErrFileAccess, dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file in %q: %v", ErrFileAccess, dir, err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to write %q: %v", ErrFileAccess, tempPath, err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to sync %q: %v", ErrFileAccess, tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %q: %v", ErrFileAccess, tempPath, err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions on %q: %v", ErrFileAccess, tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("%w: failed to rename %q to %q: %v", ErrFileAccess, tempPath, path, err)
	}
	return nil
}
