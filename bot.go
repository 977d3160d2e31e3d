package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

func runBot(token, guildID string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return err
	}

	// Message-content intent is needed for the t! prefix commands.
	dg.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(onReady)
	dg.AddHandler(onMessageCreate)
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleTimestampCommand(s, i)
		handleComponentInteraction(s, i)
	})

	// Open a websocket connection to Discord
	if err := dg.Open(); err != nil {
		return err
	}
	defer dg.Close()

	// Register slash commands (after opening so s.State is available)
	registerTimestampCommand(dg, guildID)

	slog.Info("bot is now running, press CTRL+C to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

func onReady(s *discordgo.Session, event *discordgo.Ready) {
	if err := s.UpdateGameStatus(0, "type "+helpCommand+" to see help"); err != nil {
		slog.Warn("failed to set presence", "error", err)
	}
	slog.Info("connected to Discord and ready to accept commands", "user", s.State.User.String())
}
