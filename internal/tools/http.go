package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

func httpRequestTool() Tool {
	return Tool{
		Name:        "http_request",
		Description: "Send an HTTP GET or POST request and return the response body",
		Execute:     execHTTPRequest,
	}
}

func execHTTPRequest(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		URL    string `json:"url"`
		Method string `json:"method"`
		Body   string `json:"body"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("http_request", params.URL)

	parsed, err := url.Parse(params.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Result{Success: false, Output: "http_request: invalid url"}, nil
	}

	method := "GET"
	var body io.Reader
	if params.Method == "POST" {
		method = "POST"
		body = strings.NewReader(params.Body)
	}

	req, err := http.NewRequest(method, parsed.String(), body)
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("http_request: %v", err)}, nil
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("http_request: %v", err)}, nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("http_request: %v", err)}, nil
	}

	if resp.StatusCode >= 400 {
		return Result{
			Success: false,
			Output:  ctx.Cap(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, data)),
		}, nil
	}
	return Result{Success: true, Output: ctx.Cap(string(data))}, nil
}
