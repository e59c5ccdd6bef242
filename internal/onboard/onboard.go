// Package onboard is the first-run wizard: pick a provider, name a model,
// paste a key, and get a working ~/.bareclaw tree.
package onboard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"

	"github.com/Jaruso/bareclaw/internal/utils"
)

var providerChoices = []string{
	"anthropic",
	"openai",
	"openrouter",
	"openai-compatible",
	"ollama",
	"echo",
}

var defaultModels = map[string]string{
	"anthropic":  "claude-sonnet-4-5",
	"openai":     "gpt-4o-mini",
	"openrouter": "deepseek/deepseek-chat",
	"ollama":     "qwen3:8b",
}

// Run walks the wizard and writes config.toml. An existing config is
// overwritten only after an explicit confirm.
func Run() error {
	dir, err := utils.BareClawDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(configPath); err == nil {
		confirm := promptui.Prompt{
			Label:     "Config exists, overwrite",
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			fmt.Println("Keeping existing config.")
			return nil
		}
	}

	sel := promptui.Select{
		Label: "Default provider",
		Items: providerChoices,
	}
	_, providerName, err := sel.Run()
	if err != nil {
		return fmt.Errorf("prompt.Run: %w", err)
	}

	model := defaultModels[providerName]
	modelPrompt := promptui.Prompt{
		Label:   "Default model",
		Default: model,
	}
	if model, err = modelPrompt.Run(); err != nil {
		return fmt.Errorf("prompt.Run: %w", err)
	}

	apiKey := ""
	if providerName != "ollama" && providerName != "echo" {
		keyPrompt := promptui.Prompt{
			Label: "API key (empty to use environment variables)",
			Mask:  '*',
		}
		if apiKey, err = keyPrompt.Run(); err != nil {
			return fmt.Errorf("prompt.Run: %w", err)
		}
	}

	content := fmt.Sprintf(`# BareClaw configuration
default_provider = %q
default_model = %q
memory_backend = "markdown"
fallback_providers = "echo"
api_key = %q
`, providerName, model, apiKey)

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	if _, err := utils.WorkspaceDir(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
