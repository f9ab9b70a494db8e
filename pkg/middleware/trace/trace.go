package trace

import (
	// 外部依赖
	"context"
	"time"

	host "go.opentelemetry.io/contrib/instrumentation/host"
	runtimemetrics "go.opentelemetry.io/contrib/instrumentation/runtime"
	otel "go.opentelemetry.io/otel"
	otlpmetricgrpc "go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	otlptracegrpc "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	stdoutmetric "go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	resource "go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	// 内部引用
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
)

type InitConfig struct {
	ServiceName    string
	Version        string
	TraceEndpoint  string
	MetricEndpoint string
}

var (
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
)

// InitTrace 初始化 otel trace / metric，未配置 endpoint 时降级到 stdout
func InitTrace(ctx context.Context, conf *InitConfig) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(conf.ServiceName),
		semconv.ServiceVersion(conf.Version),
	))
	if err != nil {
		logger.Warnf(ctx, "build otel resource err: %+v", err)
		res = resource.Default()
	}

	var traceExp sdktrace.SpanExporter
	if conf.TraceEndpoint != "" {
		traceExp, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(conf.TraceEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	} else {
		traceExp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		logger.Warnf(ctx, "init trace exporter err: %+v", err)
		return
	}
	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	var metricExp sdkmetric.Exporter
	if conf.MetricEndpoint != "" {
		metricExp, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(conf.MetricEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	} else {
		metricExp, err = stdoutmetric.New()
	}
	if err != nil {
		logger.Warnf(ctx, "init metric exporter err: %+v", err)
		return
	}
	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp, sdkmetric.WithInterval(30*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	if err := host.Start(host.WithMeterProvider(meterProvider)); err != nil {
		logger.Warnf(ctx, "start host metrics err: %+v", err)
	}
	if err := runtimemetrics.Start(runtimemetrics.WithMeterProvider(meterProvider)); err != nil {
		logger.Warnf(ctx, "start runtime metrics err: %+v", err)
	}
}

func CloseTrace() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if tracerProvider != nil {
		_ = tracerProvider.Shutdown(ctx)
	}
	if meterProvider != nil {
		_ = meterProvider.Shutdown(ctx)
	}
}
