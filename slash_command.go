package main

import (
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

func registerTimestampCommand(s *discordgo.Session, guildID string) {
	var (
		monthMin  = float64(1)
		dayMin    = float64(1)
		hourMin   = float64(0)
		minuteMin = float64(0)
	)
	cmd := &discordgo.ApplicationCommand{
		Name:        "timestamp",
		Description: "Converts a datetime to a Discord timestamp interactively in 1 of 6 formats.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "year",
				Description: "Year, e.g. 2021",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "month",
				Description: "Month (1-12)",
				Required:    true,
				MinValue:    &monthMin,
				MaxValue:    12,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "day",
				Description: "Day (1-31)",
				Required:    true,
				MinValue:    &dayMin,
				MaxValue:    31,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "hour",
				Description: "Hour (0-23)",
				Required:    true,
				MinValue:    &hourMin,
				MaxValue:    23,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minutes",
				Description: "Minutes (0-59)",
				Required:    true,
				MinValue:    &minuteMin,
				MaxValue:    59,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "offset",
				Description: "UTC offset in format ±HHMM (*note no colon*)",
				Required:    false,
			},
		},
	}

	_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
	if err != nil {
		slog.Error("cannot create '/timestamp' command", "error", err)
	}
}

func handleTimestampCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != "timestamp" {
		return
	}

	var year, month, day, hour, minutes int64
	var offset string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "year":
			year = opt.IntValue()
		case "month":
			month = opt.IntValue()
		case "day":
			day = opt.IntValue()
		case "hour":
			hour = opt.IntValue()
		case "minutes":
			minutes = opt.IntValue()
		case "offset":
			offset = opt.StringValue()
		}
	}

	// Reassemble the fields and run them through the same parser as the
	// text command, so impossible dates (Feb 30) and malformed offsets
	// fail identically on both paths.
	input := buildDatetimeInput(year, month, day, hour, minutes, offset)
	p, err := ParseUserDatetime(input)
	if err != nil {
		embed, components := BuildErrorReply()
		respondEphemeral(s, i, &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		})
		slog.Info("sent error reply", "user", userTag(i), "input", input)
		return
	}

	content, components := BuildFormatSelectionReply(p, time.Now())
	respondEphemeral(s, i, &discordgo.InteractionResponseData{
		Content:    content,
		Components: components,
	})
	slog.Info("sent format selection reply", "user", userTag(i))
}
