package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Addr    string        `env:"TEST_ADDR" envDefault:"localhost:8090"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"2s"`
	Trust   bool          `env:"TEST_TRUST"`
}

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want envTestConfig
	}{
		{
			name: "defaults",
			want: envTestConfig{Addr: "localhost:8090", Timeout: 2 * time.Second},
		},
		{
			name: "prefixed names win",
			env: map[string]string{
				"STAFFDESK_TEST_ADDR":    ":9000",
				"TEST_ADDR":              ":9999",
				"STAFFDESK_TEST_TIMEOUT": "150ms",
				"STAFFDESK_TEST_TRUST":   "true",
			},
			want: envTestConfig{Addr: ":9000", Timeout: 150 * time.Millisecond, Trust: true},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			var cfg envTestConfig
			if err := ParseEnv(&cfg); err != nil {
				t.Fatalf("ParseEnv() error = %v", err)
			}
			if cfg != tc.want {
				t.Fatalf("ParseEnv() = %+v, want %+v", cfg, tc.want)
			}
		})
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("STAFFDESK_TEST_TIMEOUT", "soon")

	var cfg envTestConfig
	err := ParseEnv(&cfg)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("ParseEnv() error = %v, want parse env failure", err)
	}
}
