package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load from .env (if present) and then from the environment
	envLoaded := godotenv.Load() == nil

	setupLogging(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_JSON") == "true")
	if envLoaded {
		slog.Info("loaded .env file")
	}

	// Load environment variables
	token := os.Getenv("DISCORD_TIMESTAMP_TOKEN")
	guildID := os.Getenv("GUILD_ID") // empty registers the slash command globally
	if token == "" {
		slog.Error("missing required environment variable DISCORD_TIMESTAMP_TOKEN")
		os.Exit(1)
	}

	// Create and run the bot
	if err := runBot(token, guildID); err != nil {
		slog.Error("bot error", "error", err)
		os.Exit(1)
	}
}
