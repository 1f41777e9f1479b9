package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/syntaxlabz/errors-playground/internal/config"
)

func preserveOTelGlobals(t *testing.T) {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
}

func enabledConfig(name string) config.OTELConfig {
	return config.OTELConfig{
		Enabled:     true,
		Insecure:    true,
		Endpoint:    "localhost:4317",
		ServiceName: name,
		SampleRatio: 1.0,
	}
}

func TestSetupOTel_Disabled_NoOp(t *testing.T) {
	preserveOTelGlobals(t)
	prevTP := otel.GetTracerProvider()

	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Enabled: false}, "v0.0.0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("no-op shutdown returned error: %v", err)
	}
	if otel.GetTracerProvider() != prevTP {
		t.Fatalf("disabled tracing must not replace the provider")
	}
}

func TestSetupOTel_InstallsProvider(t *testing.T) {
	for _, insecure := range []bool{true, false} {
		preserveOTelGlobals(t)

		cfg := enabledConfig("errors-playground")
		cfg.Insecure = insecure
		shutdown, err := SetupOTel(context.Background(), cfg, "v1.2.3")
		if err != nil {
			t.Fatalf("insecure=%v: %v", insecure, err)
		}

		if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
			t.Fatalf("insecure=%v: expected *sdktrace.TracerProvider", insecure)
		}
		_, span := otel.Tracer("services/RecommendService").Start(context.Background(), "Recommend")
		if !span.SpanContext().IsSampled() {
			t.Fatalf("ratio 1.0 should sample root spans")
		}
		span.End()

		ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
		_ = shutdown(ctx)
		cancel()
	}
}

func TestSetupOTel_ResourceAttributes(t *testing.T) {
	preserveOTelGlobals(t)

	orig := newResourceFn
	t.Cleanup(func() { newResourceFn = orig })

	var got []attribute.KeyValue
	newResourceFn = func(ctx context.Context, attrs []attribute.KeyValue) (*resource.Resource, error) {
		got = attrs
		return orig(ctx, attrs)
	}

	shutdown, err := SetupOTel(context.Background(), enabledConfig("svc-attrs"), "v2",
		attribute.String("catalog.source", "sqlite"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	want := map[string]string{
		"service.name":      "svc-attrs",
		"service.version":   "v2",
		"service.namespace": ServiceNamespace,
		"catalog.source":    "sqlite",
	}
	for _, kv := range got {
		if w, ok := want[string(kv.Key)]; ok {
			if kv.Value.AsString() != w {
				t.Fatalf("%s = %q, want %q", kv.Key, kv.Value.AsString(), w)
			}
			delete(want, string(kv.Key))
		}
	}
	if len(want) != 0 {
		t.Fatalf("missing resource attributes: %v", want)
	}
}

func TestSetupOTel_Errors_LeaveGlobalsIntact(t *testing.T) {
	cases := map[string]func(){
		"exporter": func() {
			newOTLPExporterFn = func(context.Context, otlptrace.Client) (*otlptrace.Exporter, error) {
				return nil, errors.New("boom-exporter")
			}
		},
		"resource": func() {
			newResourceFn = func(context.Context, []attribute.KeyValue) (*resource.Resource, error) {
				return nil, errors.New("boom-resource")
			}
		},
	}
	for name, breakSeam := range cases {
		t.Run(name, func(t *testing.T) {
			preserveOTelGlobals(t)
			origExp, origRes := newOTLPExporterFn, newResourceFn
			t.Cleanup(func() { newOTLPExporterFn, newResourceFn = origExp, origRes })
			breakSeam()

			prevTP := otel.GetTracerProvider()
			prevProp := otel.GetTextMapPropagator()

			if _, err := SetupOTel(context.Background(), enabledConfig("svc"), "v0"); err == nil || !strings.Contains(err.Error(), "boom-"+name) {
				t.Fatalf("expected boom-%s, got %v", name, err)
			}
			if otel.GetTracerProvider() != prevTP || otel.GetTextMapPropagator() != prevProp {
				t.Fatalf("globals changed on failure")
			}
		})
	}
}

func TestSetupOTel_CanceledContext_StillSucceeds(t *testing.T) {
	preserveOTelGlobals(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the gRPC client connects lazily

	shutdown, err := SetupOTel(ctx, enabledConfig("svc-canceled"), "vX")
	if err != nil {
		t.Fatalf("unexpected err with canceled ctx: %v", err)
	}
	_ = shutdown(context.Background())
}

func TestSamplerFor(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{1, "AlwaysOnSampler"},
		{1.5, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range cases {
		desc := samplerFor(tc.ratio).Description()
		if !strings.HasPrefix(desc, "ParentBased{root:"+tc.want) {
			t.Fatalf("samplerFor(%v) = %s, want root %s", tc.ratio, desc, tc.want)
		}
	}
}

func TestLogExportError(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logExportError(errors.New("export failed: connection refused"))

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "connection refused") {
		t.Fatalf("unexpected log: %s", out)
	}
}
