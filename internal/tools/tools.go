// Package tools holds the registry the model's tool calls dispatch through:
// built-in capabilities plus tools proxied from external capability servers.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Jaruso/bareclaw/internal/mcp"
	"github.com/Jaruso/bareclaw/internal/memory"
	"github.com/Jaruso/bareclaw/internal/security"
)

// Result is the uniform outcome of a tool call. Output is bounded by the
// context's output limit.
type Result struct {
	Success bool
	Output  string
}

// McpProxyMeta carries the closed-over state of a proxied tool: which server
// command to (re)start and which remote name to invoke on it.
type McpProxyMeta struct {
	Argv       []string
	RemoteName string
}

// Tool is a named capability. Execute has no reference to its own Tool entry;
// proxied tools read their meta from Context.CurrentMeta, which the
// dispatcher sets before each invocation.
type Tool struct {
	Name        string
	Description string
	Execute     func(ctx *Context, args json.RawMessage) (Result, error)
	Meta        *McpProxyMeta
}

const (
	DefaultMaxToolOutputChars = 8000
	minToolOutputChars        = 1000
	maxToolOutputChars        = 32000
)

// Context is the per-call environment. One Context outlives all tool calls of
// an agent turn; CurrentMeta is rewritten by the dispatcher per call.
type Context struct {
	Policy             *security.Policy
	Memory             *memory.Store
	Pool               *mcp.Pool
	ProviderName       string
	ToolCount          int
	MaxToolOutputChars int
	CurrentMeta        *McpProxyMeta
}

func NewContext(policy *security.Policy, mem *memory.Store, pool *mcp.Pool) *Context {
	return &Context{
		Policy:             policy,
		Memory:             mem,
		Pool:               pool,
		MaxToolOutputChars: DefaultMaxToolOutputChars,
	}
}

func (c *Context) outputLimit() int {
	switch {
	case c.MaxToolOutputChars < minToolOutputChars:
		return minToolOutputChars
	case c.MaxToolOutputChars > maxToolOutputChars:
		return maxToolOutputChars
	default:
		return c.MaxToolOutputChars
	}
}

// Cap bounds raw to the output limit, marking truncation.
func (c *Context) Cap(raw string) string {
	limit := c.outputLimit()
	if len(raw) <= limit {
		return raw
	}
	return raw[:limit] + fmt.Sprintf("\n[... output truncated at %d chars ...]", limit)
}

// Registry is an ordered tool list. Lookup is a linear scan; the first match
// wins.
type Registry struct {
	tools []Tool
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(t Tool) {
	r.tools = append(r.tools, t)
}

func (r *Registry) Find(name string) *Tool {
	for i := range r.tools {
		if r.tools[i].Name == name {
			return &r.tools[i]
		}
	}
	return nil
}

func (r *Registry) Len() int {
	return len(r.tools)
}

// Manifest renders the "- name: description" listing injected into the system
// prompt when the registry is non-empty.
func (r *Registry) Manifest() string {
	var sb strings.Builder
	for _, t := range r.tools {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Name, t.Description)
	}
	return sb.String()
}
