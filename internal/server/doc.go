// Package server runs the journal's HTTP server.
//
// It owns the server lifecycle: startup, OS signal handling and graceful
// shutdown that lets in-flight requests finish.
package server
