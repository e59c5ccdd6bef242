package tools

import (
	"encoding/json"
	"fmt"

	"github.com/Jaruso/bareclaw/internal/tools/browser"
)

func webFetchTool() Tool {
	return Tool{
		Name:        "web_fetch",
		Description: "Render a web page in a headless browser and return it as markdown",
		Execute:     execWebFetch,
	}
}

func execWebFetch(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("web_fetch", params.URL)

	text, err := browser.Fetch(params.URL)
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("web_fetch: %v", err)}, nil
	}
	return Result{Success: true, Output: ctx.Cap(text)}, nil
}
