// SPDX-License-Identifier: MIT

package incidence

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an encoding.
type Format string

const (
	// Text is the line-oriented digit encoding.
	Text Format = "text"
	// YAML is the Document encoding.
	YAML Format = "yaml"
)

// ParseFormat resolves a format name, case-insensitively.
// Errors: ErrUnknownFormat.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case Text:
		return Text, nil
	case YAML, "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and Text otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return Text
	}
}

// Read decodes a Document in the given format. Text input never carries labels.
func Read(r io.Reader, format Format) (Document, error) {
	switch format {
	case Text:
		rows, err := ReadText(r)
		if err != nil {
			return Document{}, err
		}
		return Document{Matrix: rows}, nil
	case YAML:
		return ReadYAML(r)
	default:
		return Document{}, fmt.Errorf("Read(%q): %w", format, ErrUnknownFormat)
	}
}

// Write encodes a Document in the given format. Text output drops labels.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case Text:
		return WriteText(w, doc.Matrix)
	case YAML:
		return WriteYAML(w, doc)
	default:
		return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
	}
}

// WriteOrder encodes a topological order in the given format.
func WriteOrder(w io.Writer, format Format, order []string) error {
	switch format {
	case Text:
		return WriteList(w, order)
	case YAML:
		return WriteOrderYAML(w, order)
	default:
		return fmt.Errorf("WriteOrder(%q): %w", format, ErrUnknownFormat)
	}
}

// LoadFile reads the file at path, choosing the format by extension.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	doc, err := Read(f, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return doc, nil
}
