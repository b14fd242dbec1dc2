// Package schema defines the supported IgG panel layouts: which project
// codes exist, how many food-item columns each consumes, which template
// renders it, and the (name, category) pair behind every column.
package schema

import (
	"fmt"
	"strings"

	"github.com/gyeh/igreport/internal/model"
)

// FoodItem is one panel column: the canonical food name and its category.
type FoodItem struct {
	Name     string
	Category model.FoodCategory
}

// ProjectSchema describes one supported panel variant. Immutable after
// registry construction; Items is the canonical source of per-column food
// metadata and its length always equals ItemCount.
type ProjectSchema struct {
	Code       string
	ItemCount  int
	TemplateID string
	Items      []FoodItem
}

// panelDef is the raw definition a schema is built from. itemCount is
// declared redundantly with the name list so a miscounted panel fails
// integrity validation instead of silently shifting columns.
type panelDef struct {
	code       string
	templateID string
	itemCount  int
	names      []string
}

var panelDefs = []panelDef{
	{code: "IgG-F96-1", templateID: "igg-96", itemCount: 96, names: panel96},
	{code: "IgG-F64-1", templateID: "igg-64", itemCount: 64, names: panel64},
	{code: "IgG-F32-1", templateID: "igg-32", itemCount: 32, names: panel32},
}

// UnsupportedProjectTypeError is returned by Resolve for a project code
// not present in the registry.
type UnsupportedProjectTypeError struct {
	Code      string
	Supported []string
}

func (e *UnsupportedProjectTypeError) Error() string {
	return fmt.Sprintf("unsupported project type %q (supported: %s)",
		e.Code, strings.Join(e.Supported, ", "))
}

// UnknownFoodItemError reports a panel column whose food name has no
// category mapping. This is a configuration-integrity failure: it aborts
// registry construction, it is never a per-row condition.
type UnknownFoodItemError struct {
	Code string
	Name string
}

func (e *UnknownFoodItemError) Error() string {
	return fmt.Sprintf("panel %s references food %q with no category mapping", e.Code, e.Name)
}

// Registry is the immutable project-code → schema lookup, built once at
// startup and passed explicitly to the extractor.
type Registry struct {
	schemas map[string]*ProjectSchema
	ordered []*ProjectSchema
}

// NewRegistry builds the registry from the built-in panel definitions,
// validating configuration integrity: every panel name must have a
// category and every declared item count must match its name list.
func NewRegistry() (*Registry, error) {
	return buildRegistry(foodCategories, panelDefs)
}

func buildRegistry(categories map[string]model.FoodCategory, defs []panelDef) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*ProjectSchema, len(defs))}

	for _, def := range defs {
		if len(def.names) != def.itemCount {
			return nil, fmt.Errorf("panel %s declares %d items but defines %d columns",
				def.code, def.itemCount, len(def.names))
		}

		items := make([]FoodItem, 0, len(def.names))
		seen := make(map[string]bool, len(def.names))
		for _, name := range def.names {
			category, ok := categories[name]
			if !ok {
				return nil, &UnknownFoodItemError{Code: def.code, Name: name}
			}
			if !category.Valid() {
				return nil, &UnknownFoodItemError{Code: def.code, Name: name}
			}
			if seen[name] {
				return nil, fmt.Errorf("panel %s lists food %q twice", def.code, name)
			}
			seen[name] = true
			items = append(items, FoodItem{Name: name, Category: category})
		}

		s := &ProjectSchema{
			Code:       def.code,
			ItemCount:  def.itemCount,
			TemplateID: def.templateID,
			Items:      items,
		}
		r.schemas[s.Code] = s
		r.ordered = append(r.ordered, s)
	}

	return r, nil
}

// Resolve returns the schema for a project code, or an
// UnsupportedProjectTypeError. The code is matched after trimming
// surrounding whitespace; matching is otherwise exact.
func (r *Registry) Resolve(code string) (*ProjectSchema, error) {
	s, ok := r.schemas[strings.TrimSpace(code)]
	if !ok {
		return nil, &UnsupportedProjectTypeError{Code: code, Supported: r.Codes()}
	}
	return s, nil
}

// Codes lists the supported project codes in canonical order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.ordered))
	for i, s := range r.ordered {
		codes[i] = s.Code
	}
	return codes
}

// Schemas lists all schemas in canonical order.
func (r *Registry) Schemas() []*ProjectSchema {
	out := make([]*ProjectSchema, len(r.ordered))
	copy(out, r.ordered)
	return out
}
