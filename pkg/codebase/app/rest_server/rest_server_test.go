package restserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golangid/subscriber-service/pkg/codebase/factory"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/dependency"
	"github.com/golangid/subscriber-service/pkg/codebase/factory/types"
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMongo struct{ healthErr error }

func (f *fakeMongo) ReadDB() *mongo.Database              { return nil }
func (f *fakeMongo) WriteDB() *mongo.Database             { return nil }
func (f *fakeMongo) Health(ctx context.Context) error     { return f.healthErr }
func (f *fakeMongo) Disconnect(ctx context.Context) error { return nil }

type pingHandler struct{}

func (pingHandler) Mount(group *echo.Group) {
	group.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})
	group.GET("/panic", func(c echo.Context) error {
		panic("unexpected")
	})
	group.POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
	})
}

type fakeModule struct{}

func (fakeModule) RestHandler() interfaces.EchoRestHandler { return pingHandler{} }
func (fakeModule) Name() types.Module                      { return "ping" }

type fakeService struct{ deps dependency.Dependency }

func (s fakeService) GetDependency() dependency.Dependency { return s.deps }
func (s fakeService) GetModules() []factory.ModuleFactory {
	return []factory.ModuleFactory{fakeModule{}}
}
func (s fakeService) Name() types.Service { return "fake-service" }

func newTestServer(mongoDB interfaces.MongoDatabase, opts ...OptionFunc) *restServer {
	var deps dependency.Dependency
	if mongoDB != nil {
		deps = dependency.InitDependency(dependency.SetMongoDatabase(mongoDB))
	} else {
		deps = dependency.InitDependency()
	}
	return NewServer(fakeService{deps: deps}, opts...).(*restServer)
}

func doRequest(server *restServer, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.serverEngine.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRestServer(t *testing.T) {
	t.Run("Testcase #1: Positive, landing page", func(t *testing.T) {
		rec := doRequest(newTestServer(nil), http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))
		assert.Contains(t, rec.Body.String(), "/subscribers")
		assert.NotEmpty(t, rec.Header().Get(helper.HeaderXRequestID))
	})

	t.Run("Testcase #2: Positive, mounted module route", func(t *testing.T) {
		rec := doRequest(newTestServer(nil), http.MethodGet, "/ping")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	})

	t.Run("Testcase #3: Positive, mounted with root path", func(t *testing.T) {
		server := newTestServer(nil, SetRootPath("/api"))
		assert.Equal(t, http.StatusOK, doRequest(server, http.MethodGet, "/api/ping").Code)
	})

	t.Run("Testcase #4: Negative, unknown route", func(t *testing.T) {
		rec := doRequest(newTestServer(nil), http.MethodGet, "/unknown")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Resource \"GET /unknown\" not found"}`, rec.Body.String())
	})

	t.Run("Testcase #5: Negative, recover panic in handler", func(t *testing.T) {
		rec := doRequest(newTestServer(nil), http.MethodGet, "/panic")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message"`)
	})
}

func TestRestServer_Health(t *testing.T) {
	t.Run("Testcase #1: Positive, store reachable", func(t *testing.T) {
		rec := doRequest(newTestServer(&fakeMongo{}), http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
	})

	t.Run("Testcase #2: Negative, store unreachable", func(t *testing.T) {
		mErr := helper.NewMultiError().Append("mongo_write", errors.New("server selection timeout"))
		rec := doRequest(newTestServer(&fakeMongo{healthErr: mErr}), http.MethodGet, "/health")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"message":"Service unavailable","errors":{"mongo_write":"server selection timeout"}}`, rec.Body.String())
	})
}

func TestRestServer_BodyLimit(t *testing.T) {
	post := func(server *restServer, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		server.serverEngine.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Testcase #1: Positive, body within limit", func(t *testing.T) {
		rec := post(newTestServer(nil, SetBodyLimit("1K")), `{"name":"Test User"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"Test User"}`, rec.Body.String())
	})

	t.Run("Testcase #2: Negative, body exceed limit", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("a", 2048) + `"}`
		rec := post(newTestServer(nil, SetBodyLimit("1K")), body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"message":"Request Entity Too Large"}`, rec.Body.String())
	})

	t.Run("Testcase #3: Positive, default limit applied", func(t *testing.T) {
		assert.Equal(t, DefaultBodyLimit, newTestServer(nil).opt.bodyLimit)
	})
}
