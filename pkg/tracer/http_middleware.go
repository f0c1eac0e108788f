package tracer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/golangid/subscriber-service/pkg/logger"
	"github.com/golangid/subscriber-service/pkg/wrapper"
	"github.com/labstack/echo"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// EchoRestTracerMiddleware for wrap from http inbound (request from client)
func EchoRestTracerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		if isDisableTrace, _ := strconv.ParseBool(req.Header.Get(helper.HeaderDisableTrace)); isDisableTrace {
			c.SetRequest(req.WithContext(SkipTraceContext(req.Context())))
			return next(c)
		}

		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}

		globalTracer := opentracing.GlobalTracer()
		operationName := fmt.Sprintf("%s %s%s", req.Method, req.Host, req.URL.Path)

		var span opentracing.Span
		var ctx context.Context
		if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header)); err != nil {
			span, ctx = opentracing.StartSpanFromContext(req.Context(), operationName)
			ext.SpanKindRPCServer.Set(span)
		} else {
			span = globalTracer.StartSpan(operationName, ext.RPCServerOption(spanCtx))
			ctx = opentracing.ContextWithSpan(req.Context(), span)
		}

		if len(body) < maxPacketSize {
			span.LogKV("request.body", string(body))
		} else {
			span.LogKV("request.body.size", len(body))
		}
		req.Body = io.NopCloser(bytes.NewBuffer(body))

		ext.HTTPUrl.Set(span, req.Host+req.RequestURI)
		ext.HTTPMethod.Set(span, req.Method)
		span.SetTag("http.request_id", c.Response().Header().Get(helper.HeaderXRequestID))

		defer func() {
			span.Finish()
			if traceURL := GetTraceURL(ctx); traceURL != "" {
				logger.LogGreen("rest_api > trace_url: " + traceURL)
			}
		}()

		resBody := new(bytes.Buffer)
		c.Response().Writer = wrapper.NewWrapHTTPResponseWriter(resBody, c.Response().Writer)
		c.SetRequest(req.WithContext(ctx))

		err = next(c)
		statusCode := c.Response().Status
		ext.HTTPStatusCode.Set(span, uint16(statusCode))
		if statusCode >= http.StatusInternalServerError {
			ext.Error.Set(span, true)
		}

		if resBody.Len() < maxPacketSize {
			span.LogKV("response.body", resBody.String())
		} else {
			span.LogKV("response.body.size", resBody.Len())
		}
		return err
	}
}
