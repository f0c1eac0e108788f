package restserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo"
	echoMidd "github.com/labstack/echo/middleware"
	"go.uber.org/zap/zapcore"

	"github.com/golangid/subscriber-service/config/env"
	"github.com/golangid/subscriber-service/pkg/codebase/factory"
	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/golangid/subscriber-service/pkg/logger"
	"github.com/golangid/subscriber-service/pkg/middleware"
	"github.com/golangid/subscriber-service/pkg/tracer"
	"github.com/golangid/subscriber-service/pkg/wrapper"
	"github.com/golangid/subscriber-service/web"
)

type restServer struct {
	serverEngine *echo.Echo
	service      factory.ServiceFactory
	opt          option
}

// NewServer create new REST server, all routes mounted on construction
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		serverEngine: echo.New(),
		service:      service,
		opt:          defaultOption(),
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	server.serverEngine.Use(
		echoMidd.Recover(),
		echoMidd.CORSWithConfig(echoMidd.CORSConfig{
			AllowOrigins:     server.opt.corsAllowOrigins,
			AllowMethods:     server.opt.corsAllowMethods,
			AllowHeaders:     server.opt.corsAllowHeaders,
			AllowCredentials: server.opt.corsAllowCredential,
		}),
		middleware.RequestID,
	)
	if server.opt.bodyLimit != "" {
		server.serverEngine.Use(echoMidd.BodyLimit(server.opt.bodyLimit))
	}

	server.serverEngine.GET("/", server.landingPage)
	server.serverEngine.GET("/health", server.health)

	groupMiddlewares := []echo.MiddlewareFunc{
		tracer.EchoRestTracerMiddleware,
		middleware.Timeout(server.opt.requestTimeout),
	}
	if server.opt.debugMode {
		groupMiddlewares = append(groupMiddlewares, middleware.Logger)
	}
	restRootPath := server.serverEngine.Group(server.opt.rootPath, groupMiddlewares...)
	for _, m := range service.GetModules() {
		if h := m.RestHandler(); h != nil {
			h.Mount(restRootPath)
		}
	}

	return server
}

func (h *restServer) Serve() {
	h.printRoutes()

	h.serverEngine.HideBanner = true
	h.serverEngine.HidePort = true
	port := fmt.Sprintf(":%d", h.opt.httpPort)
	fmt.Printf("\x1b[34;1m⇨ REST server run at port [::]%s\x1b[0m\n\n", port)
	if err := h.serverEngine.Start(port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (h *restServer) Shutdown(ctx context.Context) {
	deferFunc := logger.LogWithDefer("Stopping REST HTTP server...")
	defer deferFunc()

	if err := h.serverEngine.Shutdown(ctx); err != nil {
		logger.LogEf("rest server shutdown: %v", err)
	}
}

func (h *restServer) landingPage(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.IndexHTML)
}

func (h *restServer) health(c echo.Context) error {
	mongo := h.service.GetDependency().GetMongoDatabase()
	if mongo == nil {
		return c.JSON(http.StatusOK, wrapper.NewHTTPResponse(http.StatusOK, "ok"))
	}

	ctx := c.Request().Context()
	if h.opt.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opt.requestTimeout)
		defer cancel()
	}
	if err := mongo.Health(ctx); err != nil {
		logger.Log(zapcore.ErrorLevel, err.Error(), "RestServer", "health")
		return wrapper.NewHTTPResponse(http.StatusServiceUnavailable, "Service unavailable", err).JSON(c.Response())
	}
	return c.JSON(http.StatusOK, wrapper.NewHTTPResponse(http.StatusOK, "ok"))
}

func (h *restServer) printRoutes() {
	var routes strings.Builder
	httpRoutes := h.serverEngine.Routes()
	sort.Slice(httpRoutes, func(i, j int) bool {
		return httpRoutes[i].Path < httpRoutes[j].Path
	})
	for _, route := range httpRoutes {
		if !strings.Contains(route.Name, "(*Group)") {
			routes.WriteString(helper.StringGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-30s --> %s\n", route.Method, route.Path, route.Name)))
		}
	}
	logger.LogYellow(strings.TrimSuffix(routes.String(), "\n"))
}

// DefaultBodyLimit max request body size, larger request rejected with 413
const DefaultBodyLimit = "1M"

type option struct {
	httpPort            uint16
	bodyLimit           string
	debugMode           bool
	rootPath            string
	requestTimeout      time.Duration
	corsAllowOrigins    []string
	corsAllowMethods    []string
	corsAllowHeaders    []string
	corsAllowCredential bool
}

func defaultOption() option {
	return option{
		httpPort:            env.BaseEnv().HTTPPort,
		bodyLimit:           DefaultBodyLimit,
		debugMode:           env.BaseEnv().DebugMode,
		rootPath:            env.BaseEnv().HTTPRootPath,
		requestTimeout:      env.BaseEnv().RequestTimeout,
		corsAllowOrigins:    env.BaseEnv().CORSAllowOrigins,
		corsAllowMethods:    env.BaseEnv().CORSAllowMethods,
		corsAllowHeaders:    env.BaseEnv().CORSAllowHeaders,
		corsAllowCredential: env.BaseEnv().CORSAllowCredential,
	}
}

// OptionFunc type
type OptionFunc func(*option)

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootPath option func
func SetRootPath(rootPath string) OptionFunc {
	return func(o *option) {
		o.rootPath = rootPath
	}
}

// SetRequestTimeout option func
func SetRequestTimeout(timeout time.Duration) OptionFunc {
	return func(o *option) {
		o.requestTimeout = timeout
	}
}

// SetBodyLimit option func, size in echo format (e.g. "4K", "2M"), empty disable limit
func SetBodyLimit(limit string) OptionFunc {
	return func(o *option) {
		o.bodyLimit = limit
	}
}
