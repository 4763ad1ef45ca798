// Package server runs the sandbox backend's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured request timeout.
package server
