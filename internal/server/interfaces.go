package server

// Server is the lifecycle contract for the transport servers owned by this
// package. RunServer blocks until shutdown is requested; Shutdown stops the
// listener and releases its resources.
type Server interface {
	RunServer()
	Shutdown()
}
