package otel

import (
	"context"
	"strings"
	"testing"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), "test-service", Config{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), "test-service", Config{Enabled: false, Endpoint: "http://localhost:4318"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	shutdown, err := Setup(context.Background(), "test-service", Config{Enabled: true, Endpoint: "http://192.0.2.1:4318", SampleRatio: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("STAFFDESK_OTEL_ENABLED", "false")
	t.Setenv("STAFFDESK_OTEL_ENDPOINT", "http://collector:4318")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Enabled || cfg.Endpoint != "http://collector:4318" || cfg.SampleRatio != 1 {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfigRejectsBadRatio(t *testing.T) {
	t.Setenv("STAFFDESK_OTEL_SAMPLE_RATIO", "most")

	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "load otel config") {
		t.Fatalf("LoadConfig() error = %v", err)
	}
}

func TestSamplerDescriptions(t *testing.T) {
	if got := sampler(1).Description(); got != "AlwaysOnSampler" {
		t.Fatalf("sampler(1) = %q", got)
	}
	if got := sampler(0.25).Description(); !strings.Contains(got, "TraceIDRatioBased") {
		t.Fatalf("sampler(0.25) = %q", got)
	}
}
