// Package seo extracts and renders search-engine metadata.
//
// ParseMeta reads the <head> of an HTML document: title, description,
// keywords, canonical link, robots directives, language, Open Graph and
// Twitter card properties. Tags renders a Meta back into head elements.
//
// Client fetches pages and XML sitemaps over HTTP. Requests are paced by
// a token bucket (golang.org/x/time/rate) and FetchAll fans out with a
// bounded worker group (golang.org/x/sync/errgroup). Every network or
// parse failure is returned to the caller.
package seo
