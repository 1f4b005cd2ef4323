package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"gopkg.in/yaml.v3"
)

// writeOutput prints v as indented JSON, or as YAML with the same keys.
func writeOutput(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if format != "yaml" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	// Round trip through a generic value so YAML keys follow the JSON tags
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(jsonNumbersToYAML(generic)); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// jsonNumbersToYAML replaces json.Number values, which yaml.v3 would quote,
// with plain integers or floats.
func jsonNumbersToYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = jsonNumbersToYAML(e)
		}
	case []any:
		for i, e := range t {
			t[i] = jsonNumbersToYAML(e)
		}
	case json.Number:
		if n, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return n
		}
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	}
	return v
}

// parseUID parses a game UID argument
func parseUID(arg string) (uint64, error) {
	uid, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid UID %q: must be a non-negative number", arg)
	}
	return uid, nil
}

// parseBuildID parses a build id argument
func parseBuildID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid build id %q: must be a non-negative number", arg)
	}
	return id, nil
}

// pathSegment escapes an identifier before the library inserts it into a path
func pathSegment(s string) string {
	return url.PathEscape(s)
}
