package provider

import (
	"context"
	"fmt"
	"log/slog"
)

// Router chains providers in priority order and returns the first answer that
// arrives without error. If every backend fails, the last error is returned.
type Router struct {
	providers []Provider
}

func NewRouter(providers ...Provider) *Router {
	return &Router{providers: providers}
}

func (r *Router) Name() string {
	return "router"
}

func (r *Router) Providers() []Provider {
	return r.providers
}

func (r *Router) Chat(ctx context.Context, system, user, model string, temperature float64) (string, error) {
	if len(r.providers) == 0 {
		return "", fmt.Errorf("router: no providers configured")
	}

	var lastErr error
	for _, p := range r.providers {
		text, err := p.Chat(ctx, system, user, model, temperature)
		if err == nil {
			return text, nil
		}
		lastErr = err
		slog.Debug("provider failed, trying next",
			slog.String("provider", p.Name()),
			slog.String("error", err.Error()))
	}
	return "", lastErr
}
