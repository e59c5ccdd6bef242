package config

import (
	"testing"
)

func TestParse(t *testing.T) {
	cfg := defaults()
	err := cfg.parse(`
# BareClaw configuration
default_provider = "openrouter"
default_model = "deepseek/deepseek-chat"
memory_backend = "markdown"
fallback_providers = "ollama, echo"
api_key = "sk-or-abc"
discord_token = "dsc-123"
telegram_token = "tg-456"
mcp_servers = "fs=npx mcp-fs /tmp|py=python3 server.py"
`)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DefaultProvider != "openrouter" {
		t.Errorf("DefaultProvider = %q", cfg.DefaultProvider)
	}
	if cfg.DefaultModel != "deepseek/deepseek-chat" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if len(cfg.FallbackProviders) != 2 || cfg.FallbackProviders[0] != "ollama" || cfg.FallbackProviders[1] != "echo" {
		t.Errorf("FallbackProviders = %v", cfg.FallbackProviders)
	}
	if cfg.APIKey != "sk-or-abc" || cfg.DiscordToken != "dsc-123" || cfg.TelegramToken != "tg-456" {
		t.Errorf("credentials not parsed: %+v", cfg)
	}

	if len(cfg.MCPServers) != 2 {
		t.Fatalf("MCPServers = %+v", cfg.MCPServers)
	}
	if cfg.MCPServers[0].Name != "fs" {
		t.Errorf("server name = %q", cfg.MCPServers[0].Name)
	}
	if got := cfg.MCPServers[0].Argv; len(got) != 3 || got[0] != "npx" || got[2] != "/tmp" {
		t.Errorf("server argv = %v", got)
	}
}

func TestParseMalformedLine(t *testing.T) {
	cfg := defaults()
	if err := cfg.parse("default_provider\n"); err == nil {
		t.Fatal("expected error for line without '='")
	}
}

func TestParseSkipsUnknownKeys(t *testing.T) {
	cfg := defaults()
	if err := cfg.parse(`future_knob = "x"` + "\n"); err != nil {
		t.Fatalf("unknown keys should be tolerated: %v", err)
	}
}

func TestParseMCPServersMalformedEntries(t *testing.T) {
	servers := parseMCPServers("ok=cmd arg|noequals|=cmd|empty=")
	if len(servers) != 1 || servers[0].Name != "ok" {
		t.Errorf("servers = %+v", servers)
	}
}

func TestResolveKeyOrder(t *testing.T) {
	cfg := defaults()
	cfg.APIKey = "from-config"

	t.Setenv("BARECLAW_API_KEY", "")
	t.Setenv("API_KEY", "")

	if got := cfg.ResolveKey("BARECLAW_TEST_NOPE"); got != "from-config" {
		t.Errorf("config fallback = %q", got)
	}

	t.Setenv("API_KEY", "generic")
	if got := cfg.ResolveKey("BARECLAW_TEST_NOPE"); got != "generic" {
		t.Errorf("API_KEY should override config: %q", got)
	}

	t.Setenv("BARECLAW_API_KEY", "bareclaw-wide")
	if got := cfg.ResolveKey("BARECLAW_TEST_NOPE"); got != "bareclaw-wide" {
		t.Errorf("BARECLAW_API_KEY should override API_KEY: %q", got)
	}

	t.Setenv("BARECLAW_TEST_SPECIFIC", "specific")
	if got := cfg.ResolveKey("BARECLAW_TEST_SPECIFIC"); got != "specific" {
		t.Errorf("backend env should win: %q", got)
	}
}

func TestEnvOverridesTokens(t *testing.T) {
	cfg := defaults()
	cfg.DiscordToken = "file-token"
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")

	cfg.applyEnv()
	if cfg.DiscordToken != "env-token" {
		t.Errorf("DiscordToken = %q", cfg.DiscordToken)
	}
}

func TestProviderChain(t *testing.T) {
	cfg := defaults()
	cfg.DefaultProvider = "anthropic"
	cfg.FallbackProviders = []string{"ollama", "anthropic", "echo"}

	chain := cfg.ProviderChain()
	want := []string{"anthropic", "ollama", "echo"}
	if len(chain) != len(want) {
		t.Fatalf("chain = %v", chain)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, chain[i], want[i])
		}
	}
}
