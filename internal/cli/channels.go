package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jaruso/bareclaw/internal/channel"
)

var gatewayAddr string

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Interactive stdin REPL",
		Run: func(cmd *cobra.Command, args []string) {
			s, err := buildStack()
			if err != nil {
				exitErr("build stack", err)
			}
			defer s.Close()

			if err := channel.RunREPL(context.Background(), s.Agent, os.Stdin, os.Stdout); err != nil {
				exitErr("repl", err)
			}
		},
	})

	RootCmd.AddCommand(&cobra.Command{
		Use:   "discord",
		Short: "Connect the Discord gateway channel",
		Run: func(cmd *cobra.Command, args []string) {
			s, err := buildStack()
			if err != nil {
				exitErr("build stack", err)
			}
			defer s.Close()

			if s.Config.DiscordToken == "" {
				exitErr("discord", errMissingToken("discord_token / DISCORD_BOT_TOKEN"))
			}
			if err := channel.RunDiscord(context.Background(), s.Agent, s.Config.DiscordToken); err != nil {
				exitErr("discord", err)
			}
		},
	})

	RootCmd.AddCommand(&cobra.Command{
		Use:   "telegram",
		Short: "Long-poll the Telegram bot API",
		Run: func(cmd *cobra.Command, args []string) {
			s, err := buildStack()
			if err != nil {
				exitErr("build stack", err)
			}
			defer s.Close()

			if s.Config.TelegramToken == "" {
				exitErr("telegram", errMissingToken("telegram_token / TELEGRAM_BOT_TOKEN"))
			}
			if err := channel.RunTelegram(context.Background(), s.Agent, s.Config.TelegramToken); err != nil {
				exitErr("telegram", err)
			}
		},
	})

	gateway := &cobra.Command{
		Use:   "gateway",
		Short: "Serve the local HTTP gateway (/health, /webhook)",
		Run: func(cmd *cobra.Command, args []string) {
			if err := channel.RunGateway(gatewayAddr); err != nil {
				exitErr("gateway", err)
			}
		},
	}
	gateway.Flags().StringVar(&gatewayAddr, "addr", channel.GatewayAddr, "Listen address")
	RootCmd.AddCommand(gateway)
}

type errMissingToken string

func (e errMissingToken) Error() string {
	return "no token configured (" + string(e) + ")"
}
