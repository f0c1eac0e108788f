package config

import (
	"context"
	"fmt"
	"log"

	"github.com/golangid/subscriber-service/config/env"
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
	"github.com/golangid/subscriber-service/pkg/logger"
)

// Config app
type Config struct {
	closers []interfaces.Closer
}

// Init app config, load environment and set logger mode
func Init(serviceName string) *Config {
	env.Load(serviceName)
	logger.SetDebugMode(env.BaseEnv().DebugMode)
	return &Config{}
}

// LoadFunc load dependencies with LOAD_CONFIG_TIMEOUT, panic when loading failed or exceed timeout
func (c *Config) LoadFunc(depsFunc func(context.Context) []interfaces.Closer) {
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	if err := c.load(ctx, depsFunc); err != nil {
		panic(err)
	}
}

func (c *Config) load(ctx context.Context, depsFunc func(context.Context) []interfaces.Closer) error {
	result := make(chan []interfaces.Closer, 1)
	errConnect := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errConnect <- fmt.Errorf("failed init configuration :=> %v", r)
			}
		}()

		result <- depsFunc(ctx)
	}()

	// with timeout to init configuration
	select {
	case closers := <-result:
		c.closers = closers
		return nil
	case err := <-errConnect:
		return err
	case <-ctx.Done():
		return fmt.Errorf("timeout to load selected dependencies: %v", ctx.Err())
	}
}

// Exit release all loaded dependencies
func (c *Config) Exit() {
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().ShutdownTimeout)
	defer cancel()

	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Disconnect(ctx); err != nil {
			log.Printf("config: close dependency: %v", err)
		}
	}
	logger.Sync()
	log.Println("\x1b[33;1mConfig: Success close all connection\x1b[0m")
}
