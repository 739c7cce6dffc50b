package seo

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrParse = errors.New("seo: cannot parse document")

// Meta is the SEO-relevant part of a document head.
type Meta struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Keywords    []string          `json:"keywords,omitempty"`
	Canonical   string            `json:"canonical,omitempty"`
	Robots      []string          `json:"robots,omitempty"`
	Lang        string            `json:"lang,omitempty"`
	OpenGraph   map[string]string `json:"open_graph,omitempty"`
	Twitter     map[string]string `json:"twitter,omitempty"`
	H1          []string          `json:"h1,omitempty"`
}

// Indexable reports whether robots directives allow indexing.
func (m Meta) Indexable() bool {
	for _, r := range m.Robots {
		if r == "noindex" || r == "none" {
			return false
		}
	}
	return true
}

// ParseMeta reads an HTML document from r.
func ParseMeta(r io.Reader) (Meta, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var m Meta
	walk(doc, &m)
	return m, nil
}

func walk(n *html.Node, m *Meta) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Html:
			m.Lang = attr(n, "lang")
		case atom.Title:
			if m.Title == "" {
				m.Title = collapse(text(n))
			}
			return
		case atom.H1:
			if t := collapse(text(n)); t != "" {
				m.H1 = append(m.H1, t)
			}
			return
		case atom.Meta:
			readMeta(n, m)
		case atom.Link:
			if m.Canonical == "" && hasToken(attr(n, "rel"), "canonical") {
				m.Canonical = strings.TrimSpace(attr(n, "href"))
			}
		case atom.Script, atom.Style, atom.Template:
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, m)
	}
}

func readMeta(n *html.Node, m *Meta) {
	content := strings.TrimSpace(attr(n, "content"))
	name := strings.ToLower(attr(n, "name"))
	prop := strings.ToLower(attr(n, "property"))
	switch {
	case name == "description":
		m.Description = content
	case name == "keywords":
		m.Keywords = splitList(content)
	case name == "robots":
		m.Robots = splitList(strings.ToLower(content))
	case strings.HasPrefix(prop, "og:"):
		if m.OpenGraph == nil {
			m.OpenGraph = map[string]string{}
		}
		m.OpenGraph[strings.TrimPrefix(prop, "og:")] = content
	case strings.HasPrefix(name, "twitter:"), strings.HasPrefix(prop, "twitter:"):
		if m.Twitter == nil {
			m.Twitter = map[string]string{}
		}
		key := name
		if key == "" {
			key = prop
		}
		m.Twitter[strings.TrimPrefix(key, "twitter:")] = content
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func hasToken(list, tok string) bool {
	for _, f := range strings.Fields(strings.ToLower(list)) {
		if f == tok {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var sb strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return sb.String()
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Tags renders m as head elements in a stable order: title, description,
// keywords, robots, canonical, then og:* and twitter:* sorted by key.
func Tags(w io.Writer, m Meta) error {
	var nodes []*html.Node
	if m.Title != "" {
		t := &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		t.AppendChild(&html.Node{Type: html.TextNode, Data: m.Title})
		nodes = append(nodes, t)
	}
	metaNode := func(key, k, v string) *html.Node {
		return &html.Node{Type: html.ElementNode, Data: "meta", DataAtom: atom.Meta,
			Attr: []html.Attribute{{Key: key, Val: k}, {Key: "content", Val: v}}}
	}
	if m.Description != "" {
		nodes = append(nodes, metaNode("name", "description", m.Description))
	}
	if len(m.Keywords) > 0 {
		nodes = append(nodes, metaNode("name", "keywords", strings.Join(m.Keywords, ", ")))
	}
	if len(m.Robots) > 0 {
		nodes = append(nodes, metaNode("name", "robots", strings.Join(m.Robots, ", ")))
	}
	if m.Canonical != "" {
		nodes = append(nodes, &html.Node{Type: html.ElementNode, Data: "link", DataAtom: atom.Link,
			Attr: []html.Attribute{{Key: "rel", Val: "canonical"}, {Key: "href", Val: m.Canonical}}})
	}
	for _, k := range sortedKeys(m.OpenGraph) {
		nodes = append(nodes, metaNode("property", "og:"+k, m.OpenGraph[k]))
	}
	for _, k := range sortedKeys(m.Twitter) {
		nodes = append(nodes, metaNode("name", "twitter:"+k, m.Twitter[k]))
	}
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
