/*
Package e2e provides end-to-end tests for the search-gang HTTP API.

# Package Structure

	test/e2e/
	├── e2e_suite_test.go  Suite entry point: flags, InfraManager setup, API client
	├── search_test.go     Ginkgo specs for /api/v1/searches and /api/v1/health
	├── doc.go             This file
	└── infra/
	    ├── infra.go       InfraManager interface
	    ├── inprocess.go   InProcessInfraManager (httptest server, own scheduler)
	    └── external.go    ExternalInfraManager (no-op, server managed outside)

# Target Server

InfraManager starts and stops the server under test. By default the suite
uses InProcessInfraManager, which serves the API on an httptest server
backed by its own scheduler. Pass -api-url to select ExternalInfraManager
and run the specs against a running server instead:

	search-gang serve --http-port 8000 &
	go test ./test/e2e/... -args -api-url http://localhost:8000

The specs only use the public API through pkg/client.
*/
package e2e
