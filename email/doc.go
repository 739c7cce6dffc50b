// Package email validates, normalises and presents e-mail addresses.
//
// Validate checks RFC 5322 syntax for a single bare address (no display
// name, no group). ValidateDomain asks DNS for MX records, falling back
// to A/AAAA as RFC 5321 allows; the resolver is injectable for tests.
// Mask and Obfuscate prepare addresses for display, Gravatar builds an
// avatar URL.
package email
