package riptide

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// MetricsPlugin instruments every request passing through the pipeline
// with a Prometheus histogram (duration, labeled by method and outcome;
// failures are recorded with outcome "failure"). Nothing in the spec requires this -- circuit
// breaking and retries are explicitly out of scope -- but §5 licenses any
// plugin that "observes completion," and this is the idiomatic way an
// HTTP client library wires Prometheus, grounded on
// rivaas-dev-rivaas/router/metrics.go's registration-and-recording split.
func MetricsPlugin(reg prometheus.Registerer) Plugin {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "riptide_request_duration_seconds",
		Help:    "Duration of Riptide-dispatched HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "outcome"})
	if reg != nil {
		reg.MustRegister(duration)
	}

	return func(args RequestArguments, next Supplier[*Response]) Supplier[*Response] {
		return func(ctx context.Context) *Future[*Response] {
			start := time.Now()
			settled := Catch(next(ctx), func(ctx context.Context, err error) (*Response, error) {
				duration.WithLabelValues(args.Method, "failure").Observe(time.Since(start).Seconds())
				return nil, err
			})
			return Then(settled, func(ctx context.Context, resp *Response) *Future[*Response] {
				duration.WithLabelValues(args.Method, outcomeOf(resp)).Observe(time.Since(start).Seconds())
				return Resolved(resp)
			})
		}
	}
}

// outcomeOf buckets a resolved response into a Prometheus label value.
func outcomeOf(resp *Response) string {
	switch {
	case resp == nil:
		return "success"
	case resp.StatusCode >= 500:
		return "server_error"
	case resp.StatusCode >= 400:
		return "client_error"
	default:
		return "success"
	}
}

// RequestCounterPlugin counts dispatched requests through an OpenTelemetry
// meter, the instrument API rivaas-dev-rivaas/router/metrics.go builds its
// Prometheus, OTLP and stdout exporters on top of -- unlike MetricsPlugin's
// direct Prometheus histogram, this records through the OTel meter so the
// count reaches whichever exporter the caller's MeterProvider is wired to.
func RequestCounterPlugin(meter metric.Meter) Plugin {
	counter, err := meter.Int64Counter(
		"riptide_requests_total",
		metric.WithDescription("Total number of requests dispatched by Riptide."),
	)
	if err != nil {
		counter, _ = otel.GetMeterProvider().Meter("riptide").Int64Counter("riptide_requests_total")
	}
	return func(args RequestArguments, next Supplier[*Response]) Supplier[*Response] {
		return func(ctx context.Context) *Future[*Response] {
			settled := Catch(next(ctx), func(ctx context.Context, err error) (*Response, error) {
				counter.Add(ctx, 1, metric.WithAttributes(
					attribute.String("http.method", args.Method),
					attribute.String("outcome", "failure"),
				))
				return nil, err
			})
			return Then(settled, func(ctx context.Context, resp *Response) *Future[*Response] {
				counter.Add(ctx, 1, metric.WithAttributes(
					attribute.String("http.method", args.Method),
					attribute.String("outcome", outcomeOf(resp)),
				))
				return Resolved(resp)
			})
		}
	}
}

// TracingPlugin wraps each request in an OpenTelemetry span, recording the
// resolved status code and marking the span as errored on transport
// failure. Grounded on rivaas-dev-rivaas/router/tracing.go's
// span-per-request wrapping.
func TracingPlugin(tracer trace.Tracer) Plugin {
	if tracer == nil {
		tracer = otel.Tracer("riptide")
	}
	return func(args RequestArguments, next Supplier[*Response]) Supplier[*Response] {
		return func(ctx context.Context) *Future[*Response] {
			ctx, span := tracer.Start(ctx, args.Method+" "+args.URL)
			inner := next(ctx)
			out, resolve := NewFuture[*Response](inner.Cancel)
			go func() {
				resp, err := inner.Wait(ctx)
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				} else if resp != nil {
					span.SetAttributes(
						attribute.Int("http.status_code", resp.StatusCode),
						attribute.String("http.method", args.Method),
					)
					if resp.StatusCode >= 500 {
						span.SetStatus(codes.Error, strconv.Itoa(resp.StatusCode))
					}
				}
				span.End()
				resolve(resp, err)
			}()
			return out
		}
	}
}
