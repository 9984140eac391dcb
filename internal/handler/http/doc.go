// Package http implements the HTTP transport layer of the journal.
//
// It exposes route wiring, page and form handlers, and middleware. Request
// tracing, access logging, response compression and the session gate are
// handled in this package before requests are delegated to the service
// layer. Every form post answers with 303 See Other so that browsers follow
// up with a GET.
package http
