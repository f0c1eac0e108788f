package env

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/joho/godotenv"
)

const (
	defaultMongoHost    = "mongodb://localhost/subscribers"
	defaultDatabaseName = "subscribers"
)

// Env model
type Env struct {
	ServiceName string
	BuildNumber string
	// Env on application
	Environment string
	DebugMode   bool

	// HTTPPort config
	HTTPPort     uint16
	HTTPRootPath string

	LoadConfigTimeout time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration

	// JaegerTracingHost env
	JaegerTracingHost string
	// JaegerMaxPacketSize env
	JaegerMaxPacketSize int

	// Database environment
	DbMongoWriteHost, DbMongoReadHost string
	DbMongoDatabaseName               string

	// CORS Environment
	CORSAllowOrigins, CORSAllowMethods, CORSAllowHeaders []string
	CORSAllowCredential                                  bool

	StartAt string
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment, panic if there is invalid value
func Load(serviceName string) {
	// load main .env, value from process environment is not overridden
	if err := godotenv.Load(os.Getenv(helper.WORKDIR) + ".env"); err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	newEnv, err := parse(serviceName)
	if err != nil {
		panic("Basic environment error: \n" + err.Error())
	}
	env = newEnv
}

func parse(serviceName string) (e Env, err error) {
	mErrs := helper.NewMultiError()
	e.ServiceName = serviceName
	e.BuildNumber = os.Getenv("BUILD_NUMBER")

	e.Environment = os.Getenv("ENVIRONMENT")
	if e.Environment == "" {
		e.Environment = "development"
	}
	if debugMode := os.Getenv("DEBUG_MODE"); debugMode != "" {
		if e.DebugMode, err = strconv.ParseBool(debugMode); err != nil {
			mErrs.Append("DEBUG_MODE", errors.New("DEBUG_MODE environment must in boolean format"))
		}
	} else {
		e.DebugMode = true
	}

	e.HTTPPort = 3000
	if httpPort := os.Getenv("HTTP_PORT"); httpPort != "" {
		port, err := strconv.ParseUint(httpPort, 10, 16)
		if err != nil || port == 0 {
			mErrs.Append("HTTP_PORT", errors.New("HTTP_PORT environment must in valid port number"))
		}
		e.HTTPPort = uint16(port)
	}
	e.HTTPRootPath = strings.TrimSuffix(os.Getenv("HTTP_ROOT_PATH"), "/")

	e.LoadConfigTimeout = parseDuration(mErrs, "LOAD_CONFIG_TIMEOUT", 10*time.Second)
	e.RequestTimeout = parseDuration(mErrs, "REQUEST_TIMEOUT", 10*time.Second)
	e.ShutdownTimeout = parseDuration(mErrs, "SHUTDOWN_TIMEOUT", 30*time.Second)

	e.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")
	jaegerMaxPacketSize, err := strconv.Atoi(os.Getenv("JAEGER_MAX_PACKET_SIZE"))
	if err != nil || jaegerMaxPacketSize <= 0 {
		jaegerMaxPacketSize = 65000 // default max packet size of UDP
	}
	e.JaegerMaxPacketSize = jaegerMaxPacketSize * int(helper.Byte)

	parseDatabaseEnv(&e)
	parseCorsEnv(&e)

	e.StartAt = time.Now().Format(time.RFC3339)

	if mErrs.HasError() {
		return e, mErrs
	}
	return e, nil
}

func parseDuration(mErrs *helper.MultiError, envName string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(envName)
	if val == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		mErrs.Append(envName, errors.New(envName+" environment must in duration format (example: 10s)"))
		return defaultValue
	}
	return d
}

func parseDatabaseEnv(e *Env) {
	e.DbMongoWriteHost = os.Getenv("MONGODB_HOST_WRITE")
	if e.DbMongoWriteHost == "" {
		e.DbMongoWriteHost = os.Getenv("MONGODB_URL")
	}
	if e.DbMongoWriteHost == "" {
		e.DbMongoWriteHost = defaultMongoHost
	}
	e.DbMongoReadHost = os.Getenv("MONGODB_HOST_READ")

	e.DbMongoDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
}

// MongoDatabaseName resolve database name from environment, dsn path, or default name
func (e Env) MongoDatabaseName(dsnDatabase string) string {
	if e.DbMongoDatabaseName != "" {
		return e.DbMongoDatabaseName
	}
	if dsnDatabase != "" {
		return dsnDatabase
	}
	return defaultDatabaseName
}

func parseCorsEnv(e *Env) {
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins == "" {
		e.CORSAllowOrigins = []string{"*"}
	} else {
		e.CORSAllowOrigins = helper.SplitTrim(origins, ",")
	}
	if methods := os.Getenv("CORS_ALLOW_METHODS"); methods == "" {
		e.CORSAllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	} else {
		e.CORSAllowMethods = helper.SplitTrim(methods, ",")
	}
	if headers := os.Getenv("CORS_ALLOW_HEADERS"); headers != "" {
		e.CORSAllowHeaders = helper.SplitTrim(headers, ",")
	}
	e.CORSAllowCredential, _ = strconv.ParseBool(os.Getenv("CORS_ALLOW_CREDENTIAL"))
}
