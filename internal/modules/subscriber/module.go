package subscriber

import (
	"github.com/golangid/subscriber-service/internal/modules/subscriber/delivery/resthandler"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/repository"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/usecase"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/dependency"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/types"
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
	usecase     usecase.SubscriberUsecase
}

// NewModule module constructor
func NewModule(deps dependency.Dependency) *Module {
	repo := repository.NewRepoMongo(deps.GetMongoDatabase().ReadDB(), deps.GetMongoDatabase().WriteDB())
	uc := usecase.NewSubscriberUsecase(repo.Subscriber, deps.GetValidator())

	var mod Module
	mod.usecase = uc
	mod.restHandler = resthandler.NewRestHandler(uc, deps.GetValidator())
	return &mod
}

// RestHandler method
func (m *Module) RestHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Usecase method, used by seeder command
func (m *Module) Usecase() usecase.SubscriberUsecase {
	return m.usecase
}

// Name get module name
func (m *Module) Name() types.Module {
	return types.Subscriber
}
