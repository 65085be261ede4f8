// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/poset/incidence"
	"github.com/katalvlaran/poset/poset"
)

// loaded is a parsed and validated input file.
type loaded struct {
	p       *poset.Labeled[string]
	labeled bool // labels came from the file rather than being index names
}

// load reads path and builds the poset. Files without labels get their
// indices as labels.
func (a *app) load(path string) (*loaded, error) {
	doc, err := incidence.LoadFile(path)
	if err != nil {
		a.logger.Error("cannot read input", zap.String("file", path), zap.Error(err))
		return nil, err
	}
	a.logger.Debug("input parsed",
		zap.String("file", path),
		zap.Int("rows", len(doc.Matrix)),
		zap.Int("labels", len(doc.Labels)))

	labels := doc.Labels
	labeled := len(labels) > 0
	if !labeled {
		labels = make([]string, len(doc.Matrix))
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}

	p, err := poset.NewLabeled(labels, doc.Matrix)
	if err != nil {
		a.logger.Error("poset rejected", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("poset built",
		zap.String("file", path),
		zap.Int("elements", p.Len()),
		zap.Int("expanded_relations", p.RelationCount(poset.Expanded)),
		zap.Int("reduced_relations", p.RelationCount(poset.Reduced)))

	return &loaded{p: p, labeled: labeled}, nil
}

// document packages a relation with the input's labels, if any.
func (l *loaded) document(rows [][]int) incidence.Document {
	doc := incidence.Document{Matrix: rows}
	if l.labeled {
		doc.Labels = l.p.Labels()
	}
	return doc
}

func (a *app) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand FILE",
		Short: "Print the transitive expansion (closure) of a relation",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(path string) error {
			l, err := a.load(path)
			if err != nil {
				return err
			}
			return incidence.Write(a.stdout, a.out, l.document(l.p.ExpandedRelations()))
		}),
	}
}

func (a *app) reduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce FILE",
		Short: "Print the transitive reduction (covering relation) of a relation",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(path string) error {
			l, err := a.load(path)
			if err != nil {
				return err
			}
			return incidence.Write(a.stdout, a.out, l.document(l.p.ReducedRelations()))
		}),
	}
}

func (a *app) sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort FILE",
		Short: "Print the elements in topological order",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(path string) error {
			l, err := a.load(path)
			if err != nil {
				return err
			}
			return incidence.WriteOrder(a.stdout, a.out, l.p.TopologicalOrder())
		}),
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a relation describes a partial order",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(path string) error {
			l, err := a.load(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "valid: %d elements, %d expanded relations, %d reduced relations\n",
				l.p.Len(), l.p.RelationCount(poset.Expanded), l.p.RelationCount(poset.Reduced))
			return err
		}),
	}
}
