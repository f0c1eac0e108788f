package configs

import (
	"context"
	"io"

	"github.com/golangid/subscriber-service/api"
	"github.com/golangid/subscriber-service/config"
	"github.com/golangid/subscriber-service/config/database"
	"github.com/golangid/subscriber-service/config/env"
	subscribermongo "github.com/golangid/subscriber-service/internal/modules/subscriber/repository/mongo"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/dependency"
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
	"github.com/golangid/subscriber-service/pkg/logger"
	"github.com/golangid/subscriber-service/pkg/tracer"
	"github.com/golangid/subscriber-service/pkg/validator"
)

// LoadServiceConfigs load selected dependency configuration in this service
func LoadServiceConfigs(baseCfg *config.Config) (deps dependency.Dependency) {

	baseCfg.LoadFunc(func(ctx context.Context) []interfaces.Closer {
		var closers []interfaces.Closer

		if env.BaseEnv().JaegerTracingHost != "" {
			tracerCloser, err := tracer.InitOpenTracing(env.BaseEnv().ServiceName,
				tracer.OptionSetAgentHost(env.BaseEnv().JaegerTracingHost),
				tracer.OptionSetLevel(env.BaseEnv().Environment),
				tracer.OptionSetBuildNumber(env.BaseEnv().BuildNumber),
				tracer.OptionSetMaxPacketSize(env.BaseEnv().JaegerMaxPacketSize),
			)
			if err != nil {
				panic(err)
			}
			closers = append(closers, ioCloser{tracerCloser})
		}

		mongoDeps := database.InitMongoDB(ctx)
		closers = append(closers, mongoDeps)
		logCollectionStatus(ctx, mongoDeps)

		deps = dependency.InitDependency(
			dependency.SetMongoDatabase(mongoDeps),
			dependency.SetValidator(validator.NewValidator(api.JSONSchema, api.JSONSchemaRoot)),
		)
		return closers
	})

	return deps
}

func logCollectionStatus(ctx context.Context, mongoDeps interfaces.MongoDatabase) {
	repo := subscribermongo.NewSubscriberRepoMongo(mongoDeps.ReadDB(), mongoDeps.WriteDB())
	exists, err := repo.CollectionExists(ctx)
	switch {
	case err != nil:
		logger.LogEf("check collection %s: %v", subscribermongo.CollectionName, err)
	case exists:
		logger.LogIf("collection %s exists", subscribermongo.CollectionName)
	default:
		logger.LogIf("collection %s does not exist, created on first insert", subscribermongo.CollectionName)
	}
}

type ioCloser struct {
	io.Closer
}

func (c ioCloser) Disconnect(ctx context.Context) error {
	return c.Close()
}
