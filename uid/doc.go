// Package uid generates and inspects RFC 9562 UUIDs (github.com/google/uuid).
//
// New(version, opts...) produces versions 1, 3, 4, 5, 6 and 7. The
// name-based versions 3 and 5 need a namespace and a name (WithName,
// WithNamespace); the others ignore them. Short renders a UUID as a
// compact base-36 string and FromShort reverses it.
package uid
