// Package sanitize cleans untrusted text before it is stored or shown.
//
//   - StripTags: remove every HTML tag, returning plain text.
//   - HTML: keep a user-generated-content safe subset of HTML.
//   - Markdown: render Markdown to HTML, then apply the HTML policy.
//   - Filename, Email, Int, Float, Whitespace: character-class filters
//     in the spirit of PHP's FILTER_SANITIZE_* family.
//
// Policies are built once and are safe for concurrent use.
package sanitize
