// Package str provides Unicode-aware string helpers.
//
// What:
//
//   - Case conversion: Camel, Studly, Snake, Kebab, Title, UcFirst, LcFirst.
//   - Transliteration and slugs: Ascii, Slugify.
//   - Length, Truncate, Words, Mask and Reverse operate on grapheme
//     clusters, so "e" + combining accent or a flag emoji count as one.
//   - Width and PadWidth measure terminal cells (East Asian wide = 2).
//   - Substring search: Between, After, Before, AfterLast, BeforeLast,
//     StartsWith, EndsWith, Contains, Excerpt.
//   - Match, MatchAll and ReplacePattern accept PCRE-style patterns
//     (lookarounds, backreferences) with a match timeout.
//   - Levenshtein and Similarity for fuzzy comparison.
//   - Random for crypto-random alphanumeric tokens.
//
// All helpers are pure and safe for concurrent use.
package str
