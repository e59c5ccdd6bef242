// Package provider abstracts the model backends behind one contract:
// Chat(system, user, model, temperature) → text. Backends that can emit tool
// calls normalise them into the OpenAI-style tool_calls JSON the agent loop
// dispatches on.
//
// Non-2xx HTTP responses come back as a synthetic success string
// "HTTP <code>: <body>" so the model can see and react to server-side errors.
// Errors are returned for transport failures and for 2xx bodies that cannot
// be decoded, carry an error object, or hold no answer. The Router advances
// to its next backend on those errors, never on an HTTP status code.
package provider

import (
	"context"
)

type Provider interface {
	Name() string
	Chat(ctx context.Context, system, user, model string, temperature float64) (string, error)
}

// Echo is the explicit no-network fallback, used directly or substituted when
// a keyed backend has no credentials.
type Echo struct{}

func (Echo) Name() string {
	return "echo"
}

func (Echo) Chat(_ context.Context, _, user, _ string, _ float64) (string, error) {
	return "BareClaw echo (no API key configured): " + user, nil
}
