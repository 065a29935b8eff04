package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	JSON = "json"
	YAML = "yaml"
	EDN  = "edn"
)

// Names lists the accepted --format values.
var Names = []string{JSON, YAML, EDN}

// Normalize maps aliases onto a known format name. Empty means JSON.
func Normalize(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	case EDN:
		return EDN, nil
	default:
		return "", fmt.Errorf("unknown format: %s (want one of %s)", format, strings.Join(Names, ", "))
	}
}

// Write encodes v to w in the named format, followed by a newline.
func Write(w io.Writer, v any, format string, pretty bool) error {
	f, err := Normalize(format)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		return WriteYAML(w, v)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return WriteJSON(w, v, pretty)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// WriteYAML writes a YAML document. YAML is always block style, so there is
// no compact variant.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
