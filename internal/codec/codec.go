// Package codec reads and writes the canonical literal form of an inventory tree.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"trailers/inventory/internal/domain"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) String() string {
	return string(f)
}

// ParseFormat accepts json, yaml or yml, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q: want json or yaml", s)
	}
}

// Marshal renders roots in the given format
func Marshal(roots []domain.Container, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, roots, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes roots to w in the given format
func Encode(w io.Writer, roots []domain.Container, format Format) error {
	if roots == nil {
		roots = []domain.Container{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(roots); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(roots); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	return nil
}

// Unmarshal parses data produced by Marshal back into a root sequence
func Unmarshal(data []byte, format Format) ([]domain.Container, error) {
	var roots []domain.Container

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&roots); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return nil, fmt.Errorf("unexpected data after json value")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&roots); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); err != io.EOF {
			return nil, fmt.Errorf("unexpected data after yaml document")
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return roots, nil
}
