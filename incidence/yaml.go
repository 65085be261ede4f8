// SPDX-License-Identifier: MIT

package incidence

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a labelled or unlabelled incidence matrix.
type Document struct {
	Labels []string `yaml:"labels,omitempty"`
	Matrix [][]int  `yaml:"matrix"`
}

// Order is the YAML form of a topological order.
type Order struct {
	Order []string `yaml:"order,flow"`
}

// ReadYAML decodes a single Document from r. Unknown keys are rejected.
//
// Errors: ErrEmptyDocument when r holds no document, ErrNotBinary for a cell
// outside {0,1}, or the wrapped decoder error (non-integer cells surface here).
func ReadYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("ReadYAML: %w", ErrEmptyDocument)
		}
		return Document{}, fmt.Errorf("ReadYAML: %w: %w", ErrSyntax, err)
	}
	for i, row := range doc.Matrix {
		for j, v := range row {
			if v != 0 && v != 1 {
				return Document{}, fmt.Errorf("ReadYAML: cell (%d,%d) = %d: %w", i, j, v, ErrNotBinary)
			}
		}
	}

	return doc, nil
}

// WriteYAML encodes doc with two-space indentation and one flow-style
// sequence per matrix row.
func WriteYAML(w io.Writer, doc Document) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if len(doc.Labels) > 0 {
		labels := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, l := range doc.Labels {
			labels.Content = append(labels.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l})
		}
		root.Content = append(root.Content, scalar("labels"), labels)
	}

	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range doc.Matrix {
		cells := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			cells.Content = append(cells.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
		}
		rows.Content = append(rows.Content, cells)
	}
	root.Content = append(root.Content, scalar("matrix"), rows)

	return encode(w, root, "WriteYAML")
}

// WriteOrderYAML encodes a topological order as `order: [..]`.
func WriteOrderYAML(w io.Writer, order []string) error {
	return encode(w, Order{Order: order}, "WriteOrderYAML")
}

func encode(w io.Writer, v any, op string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}
