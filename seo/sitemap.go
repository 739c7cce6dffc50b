package seo

import (
	"compress/gzip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrSitemap is returned for documents that are neither a <urlset> nor
// a <sitemapindex>.
var ErrSitemap = errors.New("seo: invalid sitemap")

// MaxSitemapDepth bounds how deep Sitemap follows nested indexes.
const MaxSitemapDepth = 3

// SitemapURL is one <url> entry.
type SitemapURL struct {
	Loc        string    `xml:"loc" json:"loc"`
	LastMod    time.Time `xml:"-" json:"lastmod,omitempty"`
	ChangeFreq string    `xml:"changefreq" json:"changefreq,omitempty"`
	Priority   float64   `xml:"priority" json:"priority,omitempty"`
}

type sitemapDoc struct {
	XMLName  xml.Name
	URLs     []sitemapEntry `xml:"url"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// ParseSitemap decodes a urlset or sitemapindex. For an index, the
// child sitemap locations are returned as the second value.
func ParseSitemap(r io.Reader) ([]SitemapURL, []string, error) {
	var doc sitemapDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSitemap, err)
	}
	switch doc.XMLName.Local {
	case "urlset":
		out := make([]SitemapURL, 0, len(doc.URLs))
		for _, e := range doc.URLs {
			loc := strings.TrimSpace(e.Loc)
			if loc == "" {
				continue
			}
			out = append(out, SitemapURL{
				Loc:        loc,
				LastMod:    parseLastMod(e.LastMod),
				ChangeFreq: strings.TrimSpace(e.ChangeFreq),
				Priority:   e.Priority,
			})
		}
		return out, nil, nil
	case "sitemapindex":
		children := make([]string, 0, len(doc.Sitemaps))
		for _, e := range doc.Sitemaps {
			if loc := strings.TrimSpace(e.Loc); loc != "" {
				children = append(children, loc)
			}
		}
		return nil, children, nil
	}
	return nil, nil, fmt.Errorf("%w: root element <%s>", ErrSitemap, doc.XMLName.Local)
}

// parseLastMod accepts the W3C datetime profiles sitemaps use.
func parseLastMod(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Sitemap fetches a sitemap, following sitemap indexes up to
// MaxSitemapDepth, and returns every page URL it lists. Gzipped
// sitemaps (".gz" or a gzip Content-Type) are decompressed.
func (c *Client) Sitemap(ctx context.Context, rawURL string) ([]SitemapURL, error) {
	seen := map[string]bool{}
	var out []SitemapURL
	var visit func(u string, depth int) error
	visit = func(u string, depth int) error {
		if seen[u] {
			return nil
		}
		seen[u] = true
		var children []string
		err := c.get(ctx, u, "application/xml,text/xml;q=0.9,*/*;q=0.5", func(resp *http.Response, body io.Reader) error {
			if strings.HasSuffix(strings.ToLower(resp.Request.URL.Path), ".gz") ||
				strings.Contains(resp.Header.Get("Content-Type"), "gzip") {
				zr, err := gzip.NewReader(body)
				if err != nil {
					return fmt.Errorf("%w: %s: %w", ErrSitemap, u, err)
				}
				defer zr.Close()
				body = zr
			}
			pages, kids, err := ParseSitemap(body)
			if err != nil {
				return fmt.Errorf("%s: %w", u, err)
			}
			out = append(out, pages...)
			children = kids
			return nil
		})
		if err != nil {
			return err
		}
		if len(children) > 0 && depth >= MaxSitemapDepth {
			return fmt.Errorf("%w: %s: index nesting deeper than %d", ErrSitemap, u, MaxSitemapDepth)
		}
		for _, child := range children {
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(rawURL, 0); err != nil {
		return nil, err
	}
	return out, nil
}
