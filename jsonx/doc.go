// Package jsonx formats, queries and patches JSON documents.
//
// Pretty is a token-level printer: it re-indents without decoding, so
// numbers keep their exact text, key order is preserved and string
// contents (including escaped quotes) are copied verbatim. Minify and
// SortKeys use github.com/tidwall/pretty; Get uses GJSON path syntax
// (github.com/tidwall/gjson); MergePatch and ApplyPatch implement
// RFC 7396 and RFC 6902 (github.com/evanphx/json-patch/v5).
package jsonx
