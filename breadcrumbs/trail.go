package breadcrumbs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a crumb has no visible title.
	ErrEmptyTitle = errors.New("breadcrumbs: empty title")
	// ErrEmptyTrail is returned when rendering a trail with no crumbs.
	ErrEmptyTrail = errors.New("breadcrumbs: empty trail")
)

// Crumb is one step of a trail. Href may be empty for unlinked steps.
type Crumb struct {
	Title string
	Href  string
}

// Trail is an ordered breadcrumb list. The zero value is ready to use.
type Trail struct {
	items []Crumb
}

// New builds a trail from crumbs, validating each one.
func New(crumbs ...Crumb) (*Trail, error) {
	t := &Trail{}
	for _, c := range crumbs {
		if err := t.Add(c.Title, c.Href); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add appends a crumb. Titles are trimmed and must not be blank.
func (t *Trail) Add(title, href string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w (href %q)", ErrEmptyTitle, href)
	}
	t.items = append(t.items, Crumb{Title: title, Href: strings.TrimSpace(href)})
	return nil
}

// Len returns the number of crumbs.
func (t *Trail) Len() int { return len(t.items) }

// Items returns a copy of the crumbs.
func (t *Trail) Items() []Crumb {
	return append([]Crumb(nil), t.items...)
}

// Current returns the last crumb.
func (t *Trail) Current() (Crumb, bool) {
	if len(t.items) == 0 {
		return Crumb{}, false
	}
	return t.items[len(t.items)-1], true
}
