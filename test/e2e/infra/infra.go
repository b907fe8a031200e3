package infra

// InfraManager abstracts the lifecycle of the server under test.
// In-process: starts the API on an httptest server.
// External: no-op, the server is managed outside the suite.
type InfraManager interface {
	// StartServer starts the server and returns its base URL.
	StartServer() (string, error)
	StopServer() error
}
