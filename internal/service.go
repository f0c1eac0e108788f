package service

import (
	"github.com/golangid/subscriber-service/internal/modules/subscriber"
	"github.com/golangid/subscriber-service/pkg/codebase/factory"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/dependency"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/types"
)

// Service model
type Service struct {
	dependency dependency.Dependency
	modules    []factory.ModuleFactory
	name       types.Service
}

// NewService in this service
func NewService(serviceName string, dependency dependency.Dependency) factory.ServiceFactory {
	modules := []factory.ModuleFactory{
		subscriber.NewModule(dependency),
	}

	return &Service{
		dependency: dependency,
		modules:    modules,
		name:       types.Service(serviceName),
	}
}

// GetDependency method
func (s *Service) GetDependency() dependency.Dependency {
	return s.dependency
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() types.Service {
	return s.name
}
