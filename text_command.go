package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Together with the t! prefix, "mestamp" spells the main bot command.
const (
	commandPrefix  = "t!"
	mestampCommand = commandPrefix + "mestamp"
	helpCommand    = commandPrefix + "help"
)

const helpMessage = "**`" + mestampCommand + "`** - Converts datetime to Discord timestamp. Also available as `/timestamp`.\n" +
	"Use `" + mestampCommand + " YYYY/MM/DD HH:MM[±HHMM]` to convert a datetime " +
	"to a Discord usable timestamp in 1 of 6 formats.\n" +
	"`±HHMM` (*note no colon*) is an optional UTC-offset. " +
	"Use your local `HH:MM` together with your UTC offset, or just UTC `HH:MM` with no offset.\n\n" +
	"e.g. `" + mestampCommand + " 2021/08/21 22:05` -> format number 5 selected -> `<t:1629583500:F>`\n" +
	"(displayed in UTC+1 regions as 'Saturday, 21 August 2021 23:05')\n\n" +
	"e.g. `" + mestampCommand + " 2021/08/21 09:55+0100` -> format number 1 selected -> `<t:1629536100:t>`\n" +
	"(displayed in UTC+1 regions as '09:55')"

func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	switch {
	case strings.HasPrefix(m.Content, mestampCommand):
		handleMestampMessage(s, m, strings.TrimPrefix(m.Content, mestampCommand))
	case strings.HasPrefix(m.Content, helpCommand):
		sendReply(s, m, &discordgo.MessageSend{Content: helpMessage})
		slog.Info("sent help reply", "user", m.Author.String())
	}
}

func handleMestampMessage(s *discordgo.Session, m *discordgo.MessageCreate, raw string) {
	p, err := ParseUserDatetime(raw)
	if err != nil {
		embed, components := BuildErrorReply()
		sendReply(s, m, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		})
		slog.Info("sent error reply", "user", m.Author.String(), "input", strings.TrimSpace(raw))
		return
	}

	content, components := BuildFormatSelectionReply(p, time.Now())
	sendReply(s, m, &discordgo.MessageSend{
		Content:    content,
		Components: components,
	})
	slog.Info("sent format selection reply", "user", m.Author.String())
}

func sendReply(s *discordgo.Session, m *discordgo.MessageCreate, msg *discordgo.MessageSend) {
	msg.Reference = m.Reference()
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, msg); err != nil {
		slog.Error("failed to send reply", "channel_id", m.ChannelID, "error", err)
	}
}
