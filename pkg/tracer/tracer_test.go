package tracer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/labstack/echo"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMockTracer(t *testing.T) *mocktracer.MockTracer {
	mockTracer := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(mockTracer)
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })
	return mockTracer
}

func TestStartTrace(t *testing.T) {
	mockTracer := setMockTracer(t)

	trace, ctx := StartTraceWithContext(context.Background(), "SubscriberUsecase:GetAllSubscribers")
	child, _ := StartTraceWithContext(ctx, "SubscriberRepoMongo:FetchAll")
	child.SetTag("collection", "subscribers")
	child.SetError(errors.New("server selection timeout"))
	child.Finish()
	trace.Finish(map[string]interface{}{"total": 2})

	spans := mockTracer.FinishedSpans()
	require.Len(t, spans, 2)

	repoSpan, ucSpan := spans[0], spans[1]
	assert.Equal(t, "SubscriberRepoMongo:FetchAll", repoSpan.OperationName)
	assert.Equal(t, ucSpan.SpanContext.SpanID, repoSpan.ParentID)
	assert.Equal(t, "subscribers", repoSpan.Tag("collection"))
	assert.Equal(t, true, repoSpan.Tag("error"))
	assert.Equal(t, "server selection timeout", repoSpan.Tag("error.message"))
	assert.Equal(t, "2", ucSpan.Tag("total"))
}

func TestSkipTraceContext(t *testing.T) {
	mockTracer := setMockTracer(t)

	trace := StartTrace(SkipTraceContext(context.Background()), "skipped")
	trace.SetTag("key", "value")
	trace.Finish()
	assert.Empty(t, mockTracer.FinishedSpans())
}

func TestToString(t *testing.T) {
	assert.Equal(t, "boom", toString(errors.New("boom")))
	assert.Equal(t, "12", toString(12))
	assert.Equal(t, "raw", toString([]byte("raw")))
	assert.Equal(t, `{"name":"Test User"}`, toString(map[string]string{"name": "Test User"}))
	assert.Contains(t, toString(strings.Repeat("x", maxPacketSize)), "<<Overflow")
}

func TestEchoRestTracerMiddleware(t *testing.T) {
	mockTracer := setMockTracer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/subscribers", strings.NewReader(`{"name":"Test User"}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := EchoRestTracerMiddleware(func(c echo.Context) error {
		assert.NotNil(t, opentracing.SpanFromContext(c.Request().Context()))
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "store down"})
	})
	assert.NoError(t, handler(c))

	spans := mockTracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "POST example.com/subscribers", spans[0].OperationName)
	assert.Equal(t, uint16(http.StatusInternalServerError), spans[0].Tag("http.status_code"))
	assert.Equal(t, true, spans[0].Tag("error"))
	assert.Contains(t, rec.Body.String(), "store down")
}

func TestEchoRestTracerMiddleware_DisableTrace(t *testing.T) {
	mockTracer := setMockTracer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
	req.Header.Set(helper.HeaderDisableTrace, "true")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := EchoRestTracerMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Empty(t, mockTracer.FinishedSpans())
}
