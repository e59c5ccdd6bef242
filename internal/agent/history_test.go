package agent

import (
	"strings"
	"testing"
)

func TestHistoryTotalChars(t *testing.T) {
	h := NewHistory()
	h.Add("user", "abc")
	h.Add("assistant", "defgh")

	if h.TotalChars() != 8 {
		t.Errorf("TotalChars = %d", h.TotalChars())
	}
}

func TestHistoryTrim(t *testing.T) {
	h := NewHistory()
	h.Add("user", strings.Repeat("a", 100))
	h.Add("assistant", strings.Repeat("b", 100))
	h.Add("user", strings.Repeat("c", 100))

	h.Trim(250)
	if h.Len() != 2 || h.TotalChars() != 200 {
		t.Errorf("after trim: len=%d chars=%d", h.Len(), h.TotalChars())
	}
	if h.Messages()[0].Content[0] != 'b' {
		t.Error("oldest message should be evicted first")
	}
}

func TestHistoryTrimKeepsLastMessage(t *testing.T) {
	h := NewHistory()
	h.Add("user", "tiny")
	h.Add("assistant", strings.Repeat("x", 5000))

	h.Trim(10)
	if h.Len() != 1 {
		t.Fatalf("len = %d, want 1", h.Len())
	}
	if h.Messages()[0].Role != "assistant" {
		t.Error("the most recent message must survive")
	}
}

func TestHistoryTrimNoop(t *testing.T) {
	h := NewHistory()
	h.Add("user", "ok")

	h.Trim(100)
	if h.Len() != 1 || h.TotalChars() != 2 {
		t.Errorf("trim within budget should not change history")
	}
}
