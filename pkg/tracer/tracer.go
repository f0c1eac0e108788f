package tracer

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/url"
	"runtime"
	"strings"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
)

type contextKey string

const skipTracer contextKey = "nooptracer"

var (
	agentHost     string
	maxPacketSize = 65000
)

// Tracer abstraction of span, must call Finish in deferred function
type Tracer interface {
	Context() context.Context
	Tags() map[string]interface{}
	SetTag(key string, value interface{})
	SetError(err error)
	Log(key string, value interface{})
	Finish(additionalTags ...map[string]interface{})
}

// Option for jaeger tracer
type Option struct {
	AgentHost     string
	Level         string
	BuildNumber   string
	MaxPacketSize int
}

// OptionFunc func
type OptionFunc func(*Option)

// OptionSetAgentHost option func
func OptionSetAgentHost(host string) OptionFunc {
	return func(o *Option) {
		o.AgentHost = host
	}
}

// OptionSetLevel option func, level appended to service name
func OptionSetLevel(level string) OptionFunc {
	return func(o *Option) {
		o.Level = level
	}
}

// OptionSetBuildNumber option func
func OptionSetBuildNumber(buildNumber string) OptionFunc {
	return func(o *Option) {
		o.BuildNumber = buildNumber
	}
}

// OptionSetMaxPacketSize option func, max size of body attached to span
func OptionSetMaxPacketSize(size int) OptionFunc {
	return func(o *Option) {
		o.MaxPacketSize = size
	}
}

// InitOpenTracing init jaeger tracing as opentracing global tracer, returned closer flush all buffered span
func InitOpenTracing(serviceName string, opts ...OptionFunc) (io.Closer, error) {
	option := Option{MaxPacketSize: maxPacketSize}
	for _, opt := range opts {
		opt(&option)
	}

	agentHost = option.AgentHost
	if option.MaxPacketSize > 0 {
		maxPacketSize = option.MaxPacketSize
	}
	if option.Level != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(option.Level))
	}

	defaultTags := []opentracing.Tag{
		{Key: "num_cpu", Value: runtime.NumCPU()},
		{Key: "go_version", Value: runtime.Version()},
	}
	if option.BuildNumber != "" {
		defaultTags = append(defaultTags, opentracing.Tag{Key: "build_number", Value: option.BuildNumber})
	}

	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:            true,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  option.AgentHost,
		},
		Tags: defaultTags,
	}
	tracer, closer, err := cfg.NewTracer(config.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

type jaegerImpl struct {
	ctx  context.Context
	span opentracing.Span
	tags map[string]interface{}
}

// StartTrace starting trace child span from parent span
func StartTrace(ctx context.Context, operationName string) Tracer {
	if ctx.Value(skipTracer) != nil {
		return &jaegerImpl{ctx: ctx}
	}

	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		span, ctx = opentracing.StartSpanFromContext(ctx, operationName)
	} else {
		span = opentracing.GlobalTracer().StartSpan(operationName, opentracing.ChildOf(span.Context()))
		ctx = opentracing.ContextWithSpan(ctx, span)
	}
	return &jaegerImpl{
		ctx:  ctx,
		span: span,
	}
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

// SkipTraceContext inject to context for skip span tracer
func SkipTraceContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipTracer, struct{}{})
}

// Context get active context
func (t *jaegerImpl) Context() context.Context {
	return t.ctx
}

// Tags create tags in tracer span
func (t *jaegerImpl) Tags() map[string]interface{} {
	if t.tags == nil {
		t.tags = make(map[string]interface{})
	}
	return t.tags
}

// SetTag set tags in tracer span
func (t *jaegerImpl) SetTag(key string, value interface{}) {
	if t.span == nil {
		return
	}
	t.Tags()[key] = value
}

// SetError set error in span
func (t *jaegerImpl) SetError(err error) {
	SetError(t.ctx, err)
}

// Log data in span
func (t *jaegerImpl) Log(key string, value interface{}) {
	Log(t.ctx, key, value)
}

// Finish trace with additional tags data, must in deferred function
func (t *jaegerImpl) Finish(additionalTags ...map[string]interface{}) {
	if t.span == nil {
		return
	}

	defer t.span.Finish()
	for _, tag := range additionalTags {
		for k, v := range tag {
			t.Tags()[k] = v
		}
	}

	for k, v := range t.tags {
		t.span.SetTag(k, toString(v))
	}
}

// GetTraceURL log trace url
func GetTraceURL(ctx context.Context) (u string) {
	traceID := GetTraceID(ctx)
	if traceID == "" || agentHost == "" {
		return
	}

	urlAgent, err := url.Parse("//" + agentHost)
	if urlAgent != nil && err == nil {
		u = fmt.Sprintf("http://%s:16686/trace/%s", urlAgent.Hostname(), traceID)
	}
	return
}
