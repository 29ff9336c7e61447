// Package store reads and writes exemplar files. Exemplars are ordered
// records, so plain map decoding would lose the field order the key
// extraction depends on; JSON objects are walked token by token and YAML
// through its node API to keep fields in document order.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"exemplarcheck/pkg/core"
)

// Load reads an exemplar list from a JSON array, JSONL, or YAML file.
// Format is chosen by extension; extensionless files are sniffed the
// same way the first byte distinguishes a JSON array.
func Load(path string) ([]core.Exemplar, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case "json":
		return loadJSON(path)
	case "jsonl":
		return loadJSONL(path)
	case "yaml":
		return loadYAML(path)
	default:
		return nil, errors.New("store: unsupported format")
	}
}

// Save writes an exemplar list in the format implied by the path's
// extension. JSON and JSONL objects keep fields in record order.
func Save(path string, exemplars []core.Exemplar) error {
	format, err := formatFromExt(path)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		return saveJSON(path, exemplars)
	case "jsonl":
		return saveJSONL(path, exemplars)
	case "yaml":
		return saveYAML(path, exemplars)
	default:
		return errors.New("store: unsupported format")
	}
}

func formatFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".jsonl":
		return "jsonl", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("store: cannot infer format from %q", filepath.Base(path))
}

func detectFormat(path string) (string, error) {
	if format, err := formatFromExt(path); err == nil {
		return format, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		if b == '[' {
			return "json", nil
		}
		if b == '{' {
			return "jsonl", nil
		}
		return "", errors.New("store: unsupported format")
	}
}
