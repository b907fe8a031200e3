package infra

import (
	"go.uber.org/zap"
)

// ExternalInfraManager targets a server started outside of the suite.
type ExternalInfraManager struct {
	url string
}

func NewExternalInfraManager(url string) *ExternalInfraManager {
	return &ExternalInfraManager{url: url}
}

func (m *ExternalInfraManager) StartServer() (string, error) {
	zap.S().Infow("using external server", "url", m.url)
	return m.url, nil
}

func (m *ExternalInfraManager) StopServer() error {
	return nil
}
