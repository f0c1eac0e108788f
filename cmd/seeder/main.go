package main

import (
	"os"

	"github.com/golangid/subscriber-service/config"
	"github.com/golangid/subscriber-service/internal/cmd/seeder"
	"github.com/golangid/subscriber-service/internal/configs"
	"github.com/golangid/subscriber-service/internal/modules/subscriber"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/usecase"
)

const serviceName = "subscriber-seeder"

func main() {
	cmd := seeder.NewCommand(func() (usecase.SubscriberUsecase, func()) {
		cfg := config.Init(serviceName)
		deps := configs.LoadServiceConfigs(cfg)
		return subscriber.NewModule(deps).Usecase(), cfg.Exit
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
