// Package catalog maps resource kinds to display descriptors.
//
// The catalog is the single place that knows which kinds render as icons and
// which class each kind belongs to. Classification and display analysis in
// [github.com/matzehuels/cardlayout/pkg/layout] only ask the catalog, so they
// can be tested against any icon set.
//
// # Classes
//
// A kind's [Class] drives behavior classification:
//   - [ClassProduction] kinds denote per-turn income ("steel-production")
//   - [ClassDiscount] marks cost reductions, which always win classification
//   - everything else is display-only
//
// Kinds missing from the table are still classified: a "-production" suffix
// infers [ClassProduction] and "discount" infers [ClassDiscount]. Such kinds do
// not resolve to an icon, so the layout engine falls back to a text token.
//
// # Usage
//
//	c := catalog.Default()
//	d, ok := c.Resolve("plants")
//	if !ok {
//	    // render a text token instead of an icon
//	}
//	_ = c.Class("heat-production") // catalog.ClassProduction
package catalog

import (
	"sort"
	"strings"
)

// Class groups kinds by how the layout engine treats them.
type Class string

// Kind classes.
const (
	ClassStandard     Class = "standard"
	ClassProduction   Class = "production"
	ClassDiscount     Class = "discount"
	ClassTile         Class = "tile"
	ClassGlobal       Class = "global"
	ClassCardResource Class = "card-resource"
	ClassEffect       Class = "effect"
)

// ValidClasses is the set of known classes.
var ValidClasses = map[Class]bool{
	ClassStandard:     true,
	ClassProduction:   true,
	ClassDiscount:     true,
	ClassTile:         true,
	ClassGlobal:       true,
	ClassCardResource: true,
	ClassEffect:       true,
}

const productionSuffix = "-production"

// Descriptor describes how one kind is displayed.
type Descriptor struct {
	Kind  string `json:"kind" toml:"kind" yaml:"kind"`
	Icon  string `json:"icon" toml:"icon" yaml:"icon"`
	Class Class  `json:"class" toml:"class" yaml:"class"`
}

// Resolver answers whether a kind resolves to a displayable icon.
type Resolver interface {
	Resolve(kind string) (Descriptor, bool)
	Class(kind string) Class
}

// Catalog is an immutable kind → descriptor table.
type Catalog struct {
	kinds map[string]Descriptor
}

// New builds a catalog from descriptors. Later entries replace earlier ones
// with the same kind. Descriptors without a kind are ignored; a missing class
// is inferred from the kind name.
func New(descs ...Descriptor) *Catalog {
	c := &Catalog{kinds: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if d.Kind == "" {
			continue
		}
		if d.Class == "" {
			d.Class = inferClass(d.Kind)
		}
		c.kinds[d.Kind] = d
	}
	return c
}

// With returns a copy of c with descs layered on top.
func (c *Catalog) With(descs ...Descriptor) *Catalog {
	return New(append(c.Descriptors(), descs...)...)
}

// Resolve returns the descriptor for kind. The second result is false when
// the kind has no icon; the returned descriptor still carries the inferred class.
func (c *Catalog) Resolve(kind string) (Descriptor, bool) {
	if c != nil {
		if d, ok := c.kinds[kind]; ok && d.Icon != "" {
			return d, true
		}
	}
	return Descriptor{Kind: kind, Class: c.Class(kind)}, false
}

// Class returns the class of kind, inferring it for unknown kinds.
func (c *Catalog) Class(kind string) Class {
	if c != nil {
		if d, ok := c.kinds[kind]; ok {
			return d.Class
		}
	}
	return inferClass(kind)
}

// IsProduction reports whether kind denotes a production resource.
func (c *Catalog) IsProduction(kind string) bool {
	return c.Class(kind) == ClassProduction
}

// Len returns the number of kinds in the table.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.kinds)
}

// Descriptors returns all descriptors sorted by kind.
func (c *Catalog) Descriptors() []Descriptor {
	if c == nil {
		return nil
	}
	out := make([]Descriptor, 0, len(c.kinds))
	for _, d := range c.kinds {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func inferClass(kind string) Class {
	switch {
	case strings.HasSuffix(kind, productionSuffix):
		return ClassProduction
	case kind == "discount":
		return ClassDiscount
	default:
		return ClassStandard
	}
}

// Ensure Catalog implements Resolver.
var _ Resolver = (*Catalog)(nil)
