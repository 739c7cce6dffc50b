// Package supports holds fixed vocabularies (environments, user groups,
// date formats, salutations, industries, statuses, genders) as ordered
// key/label lists. The default catalogue is embedded YAML; Parse loads
// an application-specific one with the same shape.
package supports

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownList = errors.New("supports: unknown list")
	ErrUnknownKey  = errors.New("supports: unknown key")
	ErrCatalogue   = errors.New("supports: invalid catalogue")
)

// Well-known list names in the embedded catalogue.
const (
	Environments = "environments"
	UserGroups   = "user_groups"
	DateFormats  = "date_formats"
	Salutations  = "salutations"
	Industries   = "industries"
	Statuses     = "statuses"
	Genders      = "genders"
)

//go:embed catalogue.yaml
var embedded []byte

// Item is one vocabulary entry.
type Item struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Catalogue is an immutable set of named lists.
type Catalogue struct {
	lists map[string][]Item
	index map[string]map[string]string
}

// Parse reads a YAML mapping of list name to a sequence of {key, label}.
// Empty or duplicate keys are rejected.
func Parse(r io.Reader) (*Catalogue, error) {
	var raw map[string][]Item
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogue, err)
	}
	c := &Catalogue{lists: raw, index: make(map[string]map[string]string, len(raw))}
	for name, items := range raw {
		idx := make(map[string]string, len(items))
		for i, it := range items {
			if it.Key == "" {
				return nil, fmt.Errorf("%w: %s[%d] has no key", ErrCatalogue, name, i)
			}
			if _, dup := idx[it.Key]; dup {
				return nil, fmt.Errorf("%w: %s has duplicate key %q", ErrCatalogue, name, it.Key)
			}
			idx[it.Key] = it.Label
		}
		c.index[name] = idx
	}
	return c, nil
}

// Lists returns the list names in lexical order.
func (c *Catalogue) Lists() []string {
	names := make([]string, 0, len(c.lists))
	for n := range c.lists {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// List returns a copy of the named list in display order.
func (c *Catalogue) List(name string) ([]Item, error) {
	items, ok := c.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	return append([]Item(nil), items...), nil
}

// Keys returns the keys of the named list in display order, nil for an
// unknown list.
func (c *Catalogue) Keys(name string) []string {
	items := c.lists[name]
	if items == nil {
		return nil
	}
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	return keys
}

// Label returns the label for key in list.
func (c *Catalogue) Label(name, key string) (string, error) {
	idx, ok := c.index[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	label, ok := idx[key]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownKey, name, key)
	}
	return label, nil
}

// Has reports whether list contains key.
func (c *Catalogue) Has(name, key string) bool {
	_, ok := c.index[name][key]
	return ok
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the embedded catalogue.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		c, err := Parse(bytes.NewReader(embedded))
		if err != nil {
			// Unreachable while catalogue.yaml parses; see TestEmbedded.
			c = &Catalogue{lists: map[string][]Item{}, index: map[string]map[string]string{}}
		}
		defaultCat = c
	})
	return defaultCat
}

// Lists returns the list names of the embedded catalogue.
func Lists() []string { return Default().Lists() }

// List returns a list from the embedded catalogue.
func List(name string) ([]Item, error) { return Default().List(name) }

// Keys returns the keys of a list in the embedded catalogue.
func Keys(name string) []string { return Default().Keys(name) }

// Label looks up a label in the embedded catalogue.
func Label(name, key string) (string, error) { return Default().Label(name, key) }

// Has reports whether the embedded catalogue's list contains key.
func Has(name, key string) bool { return Default().Has(name, key) }
