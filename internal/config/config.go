// Package config reads ~/.bareclaw/config.toml — a flat key = "value" file,
// double-quoted values, # comments, no sections — and applies environment
// overrides. Environment always wins over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jaruso/bareclaw/internal/utils"
)

type MCPServer struct {
	Name string
	Argv []string
}

type Config struct {
	DefaultProvider   string
	DefaultModel      string
	MemoryBackend     string
	FallbackProviders []string
	APIKey            string
	DiscordToken      string
	DiscordWebhook    string
	TelegramToken     string
	MCPServers        []MCPServer
}

func defaults() *Config {
	return &Config{
		DefaultProvider: "anthropic",
		DefaultModel:    "claude-sonnet-4-5",
		MemoryBackend:   "markdown",
	}
}

// Load reads the config file if present and layers env overrides on top.
// A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg := defaults()

	dir, err := utils.BareClawDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	switch {
	case err == nil:
		if err := cfg.parse(string(data)); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) parse(data string) error {
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("config: line %d: missing '='", i+1)
		}
		key = strings.TrimSpace(key)
		value := strings.Trim(strings.TrimSpace(rawValue), `"`)

		switch key {
		case "default_provider":
			c.DefaultProvider = value
		case "default_model":
			c.DefaultModel = value
		case "memory_backend":
			c.MemoryBackend = value
		case "fallback_providers":
			c.FallbackProviders = splitList(value, ",")
		case "api_key":
			c.APIKey = value
		case "discord_token":
			c.DiscordToken = value
		case "discord_webhook":
			c.DiscordWebhook = value
		case "telegram_token":
			c.TelegramToken = value
		case "mcp_servers":
			c.MCPServers = parseMCPServers(value)
		}
	}
	return nil
}

// parseMCPServers splits "name=cmd arg1 arg2|name2=cmd2 ..." entries.
// Malformed entries are skipped.
func parseMCPServers(value string) []MCPServer {
	var servers []MCPServer
	for _, entry := range splitList(value, "|") {
		name, cmd, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		argv := strings.Fields(cmd)
		if name = strings.TrimSpace(name); name == "" || len(argv) == 0 {
			continue
		}
		servers = append(servers, MCPServer{Name: name, Argv: argv})
	}
	return servers
}

func splitList(value, sep string) []string {
	var out []string
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DISCORD_BOT_TOKEN"); v != "" {
		c.DiscordToken = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramToken = v
	}
}

// ResolveKey returns the API key for a backend: the backend-specific env var,
// then BARECLAW_API_KEY, then API_KEY, then the config file value.
func (c *Config) ResolveKey(backendEnv string) string {
	if backendEnv != "" {
		if v := os.Getenv(backendEnv); v != "" {
			return v
		}
	}
	if v := os.Getenv("BARECLAW_API_KEY"); v != "" {
		return v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		return v
	}
	return c.APIKey
}

// ProviderChain is the router order: the default provider followed by the
// configured fallbacks.
func (c *Config) ProviderChain() []string {
	chain := []string{c.DefaultProvider}
	for _, name := range c.FallbackProviders {
		if name != c.DefaultProvider {
			chain = append(chain, name)
		}
	}
	return chain
}
