package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"exemplarcheck/pkg/core"
)

func loadJSON(path string) ([]core.Exemplar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("store: expected JSON array, got %v", tok)
	}

	var exemplars []core.Exemplar
	for dec.More() {
		ex, err := decodeExemplar(dec)
		if err != nil {
			return nil, err
		}
		exemplars = append(exemplars, ex)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return exemplars, nil
}

func loadJSONL(path string) ([]core.Exemplar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	var exemplars []core.Exemplar
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(line))
		ex, err := decodeExemplar(dec)
		if err != nil {
			return nil, err
		}
		exemplars = append(exemplars, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return exemplars, nil
}

// decodeExemplar walks one JSON object with the token decoder so the
// object's key order survives into the exemplar's field order.
func decodeExemplar(dec *json.Decoder) (core.Exemplar, error) {
	tok, err := dec.Token()
	if err != nil {
		return core.Exemplar{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return core.Exemplar{}, fmt.Errorf("store: expected JSON object, got %v", tok)
	}

	var ex core.Exemplar
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return core.Exemplar{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return core.Exemplar{}, fmt.Errorf("store: expected object key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return core.Exemplar{}, err
		}
		value, ok := valTok.(string)
		if !ok {
			return core.Exemplar{}, fmt.Errorf("store: field %q: expected string value, got %v", key, valTok)
		}
		ex.Fields = append(ex.Fields, core.Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return core.Exemplar{}, err
	}
	return ex, nil
}

func saveJSON(path string, exemplars []core.Exemplar) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.WriteString(file, "[\n"); err != nil {
		return err
	}
	for i, ex := range exemplars {
		obj, err := encodeExemplar(ex)
		if err != nil {
			return err
		}
		sep := ",\n"
		if i == len(exemplars)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(file, "  %s%s", obj, sep); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(file, "]\n"); err != nil {
		return err
	}
	return nil
}

func saveJSONL(path string, exemplars []core.Exemplar) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, ex := range exemplars {
		obj, err := encodeExemplar(ex)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(file, "%s\n", obj); err != nil {
			return err
		}
	}
	return nil
}

// encodeExemplar serializes one exemplar as a JSON object whose keys
// appear in field order.
func encodeExemplar(ex core.Exemplar) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range ex.Fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return "", err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return "", err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}
