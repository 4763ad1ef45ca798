package server

// Server defines the lifecycle of the sandbox backend.
//
// RunServer blocks until a stop signal arrives or the listener fails, and
// returns after the in-flight requests have drained.
type Server interface {
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
