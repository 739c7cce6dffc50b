// Package reqinfo answers common questions about an incoming
// *http.Request: who sent it, over which scheme, to which host and port,
// and in which language the client would like the answer.
//
// Forwarding headers (X-Forwarded-For, X-Real-IP, X-Forwarded-Proto,
// X-Forwarded-Host, X-Forwarded-Port) are honoured only when the direct
// peer is a trusted proxy. By default loopback and private networks are
// trusted; WithTrustedProxies replaces that list.
package reqinfo
