package factory

import (
	"context"

	"github.com/golangid/subscriber-service/pkg/codebase/factory/dependency"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/types"
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
)

// AppServerFactory factory for server and/or worker abstraction
type AppServerFactory interface {
	Serve()
	Shutdown(ctx context.Context)
}

// ServiceFactory factory
type ServiceFactory interface {
	GetDependency() dependency.Dependency
	GetModules() []ModuleFactory
	Name() types.Service
}

// ModuleFactory factory
type ModuleFactory interface {
	RestHandler() interfaces.EchoRestHandler
	Name() types.Module
}
