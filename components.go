package main

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// handleComponentInteraction serves the format menu and the Show All
// button. Everything needed to build the reply travels in the component's
// custom ID, so a selection made long after the original message still
// resolves without any retained state.
func handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	data := i.MessageComponentData()

	if epoch, offsetProvided, ok := decodeSelectID(data.CustomID); ok {
		if len(data.Values) == 0 {
			return
		}
		code := data.Values[0]
		embed, components := BuildSingleFormatReply(epoch, code, offsetProvided)
		respondEphemeral(s, i, &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		})
		slog.Info("sent single format reply", "user", userTag(i), "format", code)
		return
	}

	if epoch, ok := decodeShowAllID(data.CustomID); ok {
		respondEphemeral(s, i, &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{BuildAllFormatsReply(epoch)},
		})
		slog.Info("sent all formats reply", "user", userTag(i))
	}
}
