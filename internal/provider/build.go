package provider

import (
	"log/slog"
	"os"

	"github.com/Jaruso/bareclaw/internal/config"
	"github.com/Jaruso/bareclaw/internal/provider/anthropic"
	"github.com/Jaruso/bareclaw/internal/provider/ollama"
	"github.com/Jaruso/bareclaw/internal/provider/openai"
)

// FromConfig builds the router for the configured provider chain. A keyed
// backend without credentials degrades to Echo so the binary always answers.
func FromConfig(cfg *config.Config) *Router {
	var providers []Provider
	for _, name := range cfg.ProviderChain() {
		providers = append(providers, Make(name, cfg))
	}
	return NewRouter(providers...)
}

// Make builds one backend by name. Unknown names degrade to Echo.
func Make(name string, cfg *config.Config) Provider {
	switch name {
	case "anthropic":
		key := cfg.ResolveKey("ANTHROPIC_API_KEY")
		if key == "" {
			return Echo{}
		}
		return anthropic.New(key, "")

	case "openai":
		key := cfg.ResolveKey("OPENAI_API_KEY")
		if key == "" {
			return Echo{}
		}
		return openai.New(openai.KindOpenAI, key, "")

	case "openrouter":
		key := cfg.ResolveKey("OPENROUTER_API_KEY")
		if key == "" {
			return Echo{}
		}
		return openai.New(openai.KindOpenRouter, key, "")

	case "openai-compatible":
		// Local compatible servers commonly run keyless.
		return openai.New(openai.KindCompatible, cfg.ResolveKey(""), os.Getenv("BARECLAW_API_URL"))

	case "ollama":
		return ollama.New(os.Getenv("OLLAMA_URL"))

	case "echo":
		return Echo{}

	default:
		slog.Warn("unknown provider, using echo", slog.String("name", name))
		return Echo{}
	}
}
