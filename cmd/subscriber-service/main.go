package main

import (
	"fmt"
	"runtime/debug"

	"github.com/golangid/subscriber-service/config"
	service "github.com/golangid/subscriber-service/internal"
	"github.com/golangid/subscriber-service/internal/configs"
	"github.com/golangid/subscriber-service/pkg/codebase/app"
)

const serviceName = "subscriber-service"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mFailed to start %s service: %v\x1b[0m\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	cfg := config.Init(serviceName)
	defer cfg.Exit()

	deps := configs.LoadServiceConfigs(cfg)
	srv := service.NewService(serviceName, deps)
	app.New(srv).Run()
}
