package tools

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose wrapped", `Sure!\n{"a":1}\nHope that helps.`, `{"a":1}`, true},
		{"nested objects", `x {"a":{"b":{"c":1}}} y`, `{"a":{"b":{"c":1}}}`, true},
		{"braces in strings", `{"a":"}{"}`, `{"a":"}{"}`, true},
		{"escaped quote in string", `{"a":"say \"}\" loud"}`, `{"a":"say \"}\" loud"}`, true},
		{"markdown fence", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`, true},
		{"no braces", "nothing here", "", false},
		{"unbalanced", `{"a":1`, "", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONExactBoundaries(t *testing.T) {
	obj := `{"tool_calls":[{"function":{"name":"x","arguments":"{\"k\":\"v\"}"}}]}`
	got, ok := ExtractJSON("prefix " + obj + " suffix")
	if !ok || got != obj {
		t.Errorf("got %q", got)
	}
}
