package tools

import (
	"encoding/json"
	"fmt"
)

func memoryTools() []Tool {
	return []Tool{
		{
			Name:        "memory_store",
			Description: "Persist a note under a memory key",
			Execute:     execMemoryStore,
		},
		{
			Name:        "memory_recall",
			Description: "Recall a memory entry by key or substring",
			Execute:     execMemoryRecall,
		},
		{
			Name:        "memory_forget",
			Description: "Delete a memory entry",
			Execute:     execMemoryForget,
		},
		{
			Name:        "memory_list_keys",
			Description: "List all memory keys",
			Execute:     execMemoryListKeys,
		},
		{
			Name:        "memory_delete_prefix",
			Description: "Delete every memory entry whose key starts with a prefix",
			Execute:     execMemoryDeletePrefix,
		},
	}
}

func execMemoryStore(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Key     string `json:"key"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if params.Key == "" {
		params.Key = "default"
	}

	ctx.Policy.AuditLog("memory_store", params.Key)

	if !ctx.Policy.AllowPath(params.Key) {
		return Result{Success: false, Output: "memory_store: key is not allowed"}, nil
	}
	if err := ctx.Memory.Store(params.Key, params.Content); err != nil {
		return Result{Success: false, Output: fmt.Sprintf("memory_store: %v", err)}, nil
	}
	return Result{Success: true, Output: "stored under " + params.Key}, nil
}

func execMemoryRecall(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("memory_recall", params.Key)

	if !ctx.Policy.AllowPath(params.Key) {
		return Result{Success: false, Output: "memory_recall: key is not allowed"}, nil
	}
	text, err := ctx.Memory.Recall(params.Key)
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("memory_recall: %v", err)}, nil
	}
	return Result{Success: true, Output: ctx.Cap(text)}, nil
}

func execMemoryForget(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("memory_forget", params.Key)

	if !ctx.Policy.AllowPath(params.Key) {
		return Result{Success: false, Output: "memory_forget: key is not allowed"}, nil
	}
	if err := ctx.Memory.Forget(params.Key); err != nil {
		return Result{Success: false, Output: fmt.Sprintf("memory_forget: %v", err)}, nil
	}
	return Result{Success: true, Output: "forgot " + params.Key}, nil
}

func execMemoryListKeys(ctx *Context, _ json.RawMessage) (Result, error) {
	ctx.Policy.AuditLog("memory_list_keys", "")
	return Result{Success: true, Output: ctx.Cap(ctx.Memory.ListKeys())}, nil
}

func execMemoryDeletePrefix(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Prefix string `json:"prefix"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("memory_delete_prefix", params.Prefix)

	if !ctx.Policy.AllowPath(params.Prefix) {
		return Result{Success: false, Output: "memory_delete_prefix: prefix is not allowed"}, nil
	}
	n, err := ctx.Memory.DeletePrefix(params.Prefix)
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("memory_delete_prefix: %v", err)}, nil
	}
	return Result{Success: true, Output: fmt.Sprintf("deleted %d entries", n)}, nil
}
