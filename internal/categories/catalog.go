// Package categories holds the list of categories offered for new expenses.
package categories

import (
	"strings"

	"github.com/cleared-dev/spendwise/internal/model"
)

// Catalog provides lookups over a list of known categories. Stores accept any
// label; the catalog only drives input choices.
type Catalog struct {
	all    []model.Category
	byName map[string]model.Category
}

// NewCatalog creates a Catalog from names, dropping blanks and duplicates.
// An empty list falls back to Defaults.
func NewCatalog(names []string) *Catalog {
	c := &Catalog{byName: make(map[string]model.Category)}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, dup := c.byName[key]; dup {
			continue
		}
		cat := model.Category(n)
		c.byName[key] = cat
		c.all = append(c.all, cat)
	}
	if len(c.all) == 0 {
		for _, d := range Defaults() {
			c.byName[strings.ToLower(string(d))] = d
			c.all = append(c.all, d)
		}
	}
	return c
}

// All returns every category in catalog order.
func (c *Catalog) All() []model.Category {
	return c.all
}

// Strings returns the category labels as strings.
func (c *Catalog) Strings() []string {
	out := make([]string, len(c.all))
	for i, cat := range c.all {
		out[i] = string(cat)
	}
	return out
}

// Lookup resolves name case-insensitively to its catalog spelling.
func (c *Catalog) Lookup(name string) (model.Category, bool) {
	cat, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return cat, ok
}

// Exists reports whether name is in the catalog.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}
