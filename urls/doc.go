// Package urls builds, inspects and normalises URLs.
//
// Build, WithQuery and WithoutQuery edit the query string with stable
// (sorted) key order. Domain and RootDomain extract hosts, the latter via
// the public suffix list. ToASCII and ToUnicode convert internationalised
// host names (IDNA). Current reconstructs the absolute URL of an incoming
// *http.Request, honouring X-Forwarded-Proto and X-Forwarded-Host.
package urls
