package ports

import "go.trai.ch/matrix/internal/core/domain"

// ConfigLoader defines the interface for loading the matrix configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the run request.
	Load(path string) (*domain.RunRequest, error)
}
