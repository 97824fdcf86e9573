// Package server wires and runs the application's HTTP server.
//
// It owns the process lifecycle: background workers and the HTTP listener
// share one context that is cancelled on SIGINT, SIGTERM or SIGQUIT, after
// which the listener is shut down gracefully.
package server
