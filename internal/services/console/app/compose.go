// Package app mounts console modules onto one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/staffdesk/internal/services/console/module"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
)

// Compose mounts every module, rejecting prefixes claimed twice. The health
// route reports degraded modules with a 503.
func Compose(modules ...module.Module) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	var reporters []module.Module

	for _, feature := range modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		if len(mount.Prefixes) == 0 {
			return nil, fmt.Errorf("mount module %q: prefix is required", feature.ID())
		}
		for _, prefix := range mount.Prefixes {
			prefix = strings.TrimSpace(prefix)
			if !strings.HasPrefix(prefix, "/") {
				return nil, fmt.Errorf("mount module %q: prefix %q must start with /", feature.ID(), prefix)
			}
			if previous, ok := seen[prefix]; ok {
				return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
			}
			seen[prefix] = feature.ID()
			root.Handle(prefix, mount.Handler)
		}
		if _, ok := feature.(module.HealthReporter); ok {
			reporters = append(reporters, feature)
		}
	}

	if _, taken := seen[routepath.Health]; !taken {
		root.HandleFunc("GET "+routepath.Health, healthHandler(reporters))
	}
	return root, nil
}

func healthHandler(reporters []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var degraded []string
		for _, feature := range reporters {
			if !feature.(module.HealthReporter).Healthy() {
				degraded = append(degraded, feature.ID())
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(degraded) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "degraded: %s\n", strings.Join(degraded, ","))
			return
		}
		fmt.Fprintln(w, "ok")
	}
}
