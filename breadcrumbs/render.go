package breadcrumbs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvkit/urls"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options controls Render output.
type Options struct {
	AriaLabel   string // nav aria-label
	ListClass   string // class of <ol>
	ItemClass   string // class of every <li>
	ActiveClass string // extra class of the current <li>
	Separator   string // text between items, hidden from screen readers
	Home        *Crumb // prepended when set and the trail does not start with it
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions mirror the Bootstrap breadcrumb markup.
func DefaultOptions() Options {
	return Options{
		AriaLabel:   "breadcrumb",
		ListClass:   "breadcrumb",
		ItemClass:   "breadcrumb-item",
		ActiveClass: "active",
	}
}

// WithSeparator sets the visible separator.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithClasses overrides list, item and active classes.
func WithClasses(list, item, active string) Option {
	return func(o *Options) {
		o.ListClass, o.ItemClass, o.ActiveClass = list, item, active
	}
}

// WithHome prepends a home crumb. Panics on a blank title.
func WithHome(title, href string) Option {
	if title == "" {
		panic("breadcrumbs: WithHome(title) must be non-empty")
	}
	return func(o *Options) { o.Home = &Crumb{Title: title, Href: href} }
}

func (t *Trail) crumbs(o Options) []Crumb {
	items := t.items
	if o.Home != nil && (len(items) == 0 || items[0].Href != o.Home.Href) {
		items = append([]Crumb{*o.Home}, items...)
	}
	return items
}

// Render writes the trail as <nav><ol>...</ol></nav>.
func (t *Trail) Render(opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	items := t.crumbs(o)
	if len(items) == 0 {
		return "", ErrEmptyTrail
	}

	nav := element(atom.Nav, attr("aria-label", o.AriaLabel))
	ol := element(atom.Ol, attr("class", o.ListClass))
	nav.AppendChild(ol)

	last := len(items) - 1
	for i, c := range items {
		class := o.ItemClass
		if i == last && o.ActiveClass != "" {
			class = joinClass(class, o.ActiveClass)
		}
		li := element(atom.Li, attr("class", class))
		if i == last {
			li.Attr = append(li.Attr, html.Attribute{Key: "aria-current", Val: "page"})
			li.AppendChild(text(c.Title))
		} else if c.Href != "" {
			a := element(atom.A, attr("href", c.Href))
			a.AppendChild(text(c.Title))
			li.AppendChild(a)
		} else {
			li.AppendChild(text(c.Title))
		}
		ol.AppendChild(li)

		if i != last && o.Separator != "" {
			sep := element(atom.Li, attr("class", "separator"), attr("aria-hidden", "true"))
			sep.AppendChild(text(o.Separator))
			ol.AppendChild(sep)
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, nav); err != nil {
		return "", fmt.Errorf("breadcrumbs: render: %w", err)
	}
	return buf.String(), nil
}

// JSONLD returns a schema.org BreadcrumbList with item URLs resolved
// against baseURL. The current page has no item URL.
func (t *Trail) JSONLD(baseURL string, opts ...Option) ([]byte, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	items := t.crumbs(o)
	if len(items) == 0 {
		return nil, ErrEmptyTrail
	}

	type listItem struct {
		Type     string `json:"@type"`
		Position int    `json:"position"`
		Name     string `json:"name"`
		Item     string `json:"item,omitempty"`
	}
	list := make([]listItem, len(items))
	for i, c := range items {
		li := listItem{Type: "ListItem", Position: i + 1, Name: c.Title}
		if i != len(items)-1 && c.Href != "" {
			abs, err := urls.Resolve(baseURL, c.Href)
			if err != nil {
				return nil, err
			}
			li.Item = abs
		}
		list[i] = li
	}
	return json.Marshal(struct {
		Context string     `json:"@context"`
		Type    string     `json:"@type"`
		Items   []listItem `json:"itemListElement"`
	}{"https://schema.org", "BreadcrumbList", list})
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	var kept []html.Attribute
	for _, at := range attrs {
		if at.Val != "" {
			kept = append(kept, at)
		}
	}
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: kept}
}

func attr(k, v string) html.Attribute { return html.Attribute{Key: k, Val: v} }

func text(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }

func joinClass(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
