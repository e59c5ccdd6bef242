package agent

import (
	_ "embed"
	"strings"

	"github.com/Jaruso/bareclaw/internal/tools"
)

//go:embed prompt/system.md
var systemPreamble string

const toolInstructions = `To use a tool, respond with exactly one JSON object of the form:
{"tool_calls":[{"function":{"name":"<tool_name>","arguments":"<json string of arguments>"}}]}

You may request several calls in one array. After you receive tool results,
answer the user in plain text with no JSON.`

// BuildSystemPrompt is the fixed preamble plus, when any tools are
// registered, the manifest and the tool-call instructions.
func BuildSystemPrompt(registry *tools.Registry) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(systemPreamble, "\n"))

	if registry.Len() > 0 {
		sb.WriteString("\n\nAvailable tools:\n")
		sb.WriteString(registry.Manifest())
		sb.WriteString("\n")
		sb.WriteString(toolInstructions)
	}
	return sb.String()
}
