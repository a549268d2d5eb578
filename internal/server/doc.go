// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown for the
// transport layer.
package server
