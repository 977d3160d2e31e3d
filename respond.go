package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	selectCustomIDPrefix  = "timestamp_select"
	showAllCustomIDPrefix = "timestamp_all"

	timezoneGuideURL = "https://en.wikipedia.org/wiki/List_of_tz_database_time_zones"
)

// Component custom IDs carry the epoch seconds (and, for the menu, the
// offset flag) so a later selection is a fresh, self-contained computation:
// nothing is kept in memory between the reply going out and the menu or
// button event coming back.

func encodeSelectID(p PointInTime) string {
	flag := "u" // HH:MM was taken as UTC
	if p.OffsetProvided {
		flag = "o"
	}
	return fmt.Sprintf("%s:%d:%s", selectCustomIDPrefix, p.Epoch(), flag)
}

func decodeSelectID(customID string) (epoch int64, offsetProvided bool, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != selectCustomIDPrefix {
		return 0, false, false
	}
	epoch, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false, false
	}
	return epoch, parts[2] == "o", true
}

func encodeShowAllID(epoch int64) string {
	return fmt.Sprintf("%s:%d", showAllCustomIDPrefix, epoch)
}

func decodeShowAllID(customID string) (int64, bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 2 || parts[0] != showAllCustomIDPrefix {
		return 0, false
	}
	epoch, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return epoch, true
}

func showAllButton(epoch int64) discordgo.Button {
	return discordgo.Button{
		Label:    "Show All!",
		Style:    discordgo.PrimaryButton,
		Emoji:    &discordgo.ComponentEmoji{Name: "🤩"},
		CustomID: encodeShowAllID(epoch),
	}
}

func timezoneGuideButton() discordgo.Button {
	return discordgo.Button{
		Label: "Find out your timezone offset",
		Style: discordgo.LinkButton,
		Emoji: &discordgo.ComponentEmoji{Name: "🕑"},
		URL:   timezoneGuideURL,
	}
}

func formatSelectMenu(p PointInTime, now time.Time) discordgo.SelectMenu {
	one := 1
	options := make([]discordgo.SelectMenuOption, 0, len(formatStyles))
	for _, opt := range FormatOptions(p, now) {
		options = append(options, discordgo.SelectMenuOption{
			Label: opt.Label,
			Value: opt.Code,
		})
	}
	return discordgo.SelectMenu{
		CustomID:    encodeSelectID(p),
		Placeholder: "Or choose a specific format for your timestamp",
		MinValues:   &one,
		MaxValues:   1,
		Options:     options,
	}
}

// BuildFormatSelectionReply is the success payload: confirmation text plus
// the Show All button and the six-way format menu. The relative menu label
// is rendered against now.
func BuildFormatSelectionReply(p PointInTime, now time.Time) (string, []discordgo.MessageComponent) {
	content := "Your date passed the reality test!\n" +
		"*NB: The final numbers and format may differ slightly from those shown in the dropdown*"
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{showAllButton(p.Epoch())}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{formatSelectMenu(p, now)}},
	}
	return content, components
}

// BuildSingleFormatReply shows one rendered timestamp with its copy-paste
// literal. The warning guidance depends on whether the original input
// carried a UTC offset.
func BuildSingleFormatReply(epoch int64, code string, offsetProvided bool) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	stamp := Stamp(epoch, code)

	warning := "make sure `HH:MM` is in UTC or you include a UTC offset (`±HHMM` *note no colon*)."
	if offsetProvided {
		warning = "make sure your UTC offset (`±HHMM` *note no colon*) is correct."
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("For *__you__*, this timestamp will display as\n%s\nIt will be localised for everyone else! 🎉", stamp),
		Description: "***On mobile**, long press the date/time string above to copy the format code shown below.*\n" +
			`\` + stamp,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "⚠", Value: "If the displayed timestamp looks wrong, " + warning},
		},
	}
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			showAllButton(epoch),
			timezoneGuideButton(),
		}},
	}
	return embed, components
}

// BuildAllFormatsReply enumerates all six rendered timestamps, each paired
// with its backslash-escaped literal for copy-paste use.
func BuildAllFormatsReply(epoch int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "All the timestamp options!",
		Description: "Too much choice can only be a good thing, right?\n" +
			"***On mobile**, long press the date/time string to copy the format code shown below.*",
	}
	for _, code := range FormatCodes() {
		stamp := Stamp(epoch, code)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   stamp,
			Value:  `\` + stamp,
			Inline: true,
		})
	}
	return embed
}

// BuildErrorReply describes the accepted grammar with worked examples.
func BuildErrorReply() (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: "That date didn't seem to work out :/",
		Description: "Make sure your input date+time is in the format " +
			"`YYYY/MM/DD HH:MM[±HHMM]` and is actually a date that exists!\n" +
			"e.g. `2021/08/21 22:05`, `2021/08/22 00:05+0200`, `2021/08/21 18:35-0330`\n" +
			"Don't forget: either `HH:MM` is in UTC " +
			"or you've included a UTC-offset, `±HHMM` (*note no colon*)!",
	}
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{timezoneGuideButton()}},
	}
	return embed, components
}

// userTag identifies the acting user for log lines, whether the
// interaction came from a guild or a DM.
func userTag(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.String()
	}
	if i.User != nil {
		return i.User.String()
	}
	return "unknown"
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	data.Flags = discordgo.MessageFlagsEphemeral
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "user", userTag(i), "error", err)
	}
}
