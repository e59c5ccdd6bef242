package channel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Jaruso/bareclaw/internal/agent"
	"github.com/Jaruso/bareclaw/internal/utils"
)

const telegramPollSeconds = 30

type telegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		From *struct {
			IsBot bool `json:"is_bot"`
		} `json:"from"`
	} `json:"message"`
}

type telegramUpdates struct {
	OK     bool             `json:"ok"`
	Result []telegramUpdate `json:"result"`
}

// RunTelegram long-polls getUpdates and answers each text message with one
// agent turn. Offset tracking keeps updates exactly-once within the process.
func RunTelegram(ctx context.Context, a *agent.Agent, token string) error {
	base := "https://api.telegram.org/bot" + token
	client := &http.Client{Timeout: (telegramPollSeconds + 10) * time.Second}

	slog.Info("telegram channel polling")

	var offset int64
	for {
		if ctx.Err() != nil {
			return nil
		}

		api := fmt.Sprintf("%s/getUpdates?timeout=%d&offset=%d", base, telegramPollSeconds, offset)
		updates, _, err := utils.GET[telegramUpdates](ctx, client, api, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("telegram poll failed", slog.String("error", err.Error()))
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates.Result {
			offset = update.UpdateID + 1
			msg := update.Message
			if msg == nil || msg.Text == "" || (msg.From != nil && msg.From.IsBot) {
				continue
			}

			response, err := a.RunCaptured(ctx, msg.Text)
			if err != nil {
				slog.Error("telegram turn failed", slog.String("error", err.Error()))
				response = "(something went wrong, check the logs)"
			}
			sendTelegram(ctx, client, base, msg.Chat.ID, strings.TrimRight(response, "\n"))
		}
	}
}

func sendTelegram(ctx context.Context, client *http.Client, base string, chatID int64, text string) {
	type sendAck struct {
		OK bool `json:"ok"`
	}
	ack, _, err := utils.POST[sendAck](ctx, client, base+"/sendMessage", nil, map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		slog.Warn("telegram send failed", slog.String("error", err.Error()))
		return
	}
	if !ack.OK {
		slog.Warn("telegram send rejected")
	}
}
