package channel

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/Jaruso/bareclaw/internal/agent"
)

const discordMessageLimit = 2000

// RunDiscord connects to the gateway and answers messages that mention the
// bot or arrive by DM. The bot's own messages are ignored. Blocks until
// SIGINT/SIGTERM.
func RunDiscord(ctx context.Context, a *agent.Agent, token string) error {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("discordgo.New: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author.ID == s.State.User.ID || m.Author.Bot {
			return
		}

		content, ok := addressedContent(s, m)
		if !ok {
			return
		}

		response, err := a.RunCaptured(ctx, content)
		if err != nil {
			slog.Error("discord turn failed", slog.String("error", err.Error()))
			response = "(something went wrong, check the logs)"
		}
		for _, chunk := range chunkMessage(strings.TrimRight(response, "\n"), discordMessageLimit) {
			if _, err := s.ChannelMessageSend(m.ChannelID, chunk); err != nil {
				slog.Error("discord send failed", slog.String("error", err.Error()))
				return
			}
		}
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("session.Open: %w", err)
	}
	defer session.Close()

	slog.Info("discord channel connected", slog.String("user", session.State.User.Username))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}
	return nil
}

// addressedContent reports whether the bot was addressed (DM or mention) and
// returns the message with the mention stripped.
func addressedContent(s *discordgo.Session, m *discordgo.MessageCreate) (string, bool) {
	if m.GuildID == "" {
		return strings.TrimSpace(m.Content), true
	}

	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			content := strings.ReplaceAll(m.Content, "<@"+user.ID+">", "")
			content = strings.ReplaceAll(content, "<@!"+user.ID+">", "")
			return strings.TrimSpace(content), true
		}
	}
	return "", false
}

func chunkMessage(s string, limit int) []string {
	if s == "" {
		return []string{"(empty response)"}
	}

	var chunks []string
	for len(s) > limit {
		cut := strings.LastIndexByte(s[:limit], '\n')
		if cut <= 0 {
			cut = limit
		}
		chunks = append(chunks, s[:cut])
		s = strings.TrimLeft(s[cut:], "\n")
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}
