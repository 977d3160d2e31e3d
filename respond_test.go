package main

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomIDRoundTrip(t *testing.T) {
	withOffset := PointInTime{Time: time.Unix(1629536100, 0), OffsetProvided: true}
	epoch, offsetProvided, ok := decodeSelectID(encodeSelectID(withOffset))
	require.True(t, ok)
	assert.Equal(t, int64(1629536100), epoch)
	assert.True(t, offsetProvided)

	utc := PointInTime{Time: time.Unix(1629583500, 0)}
	epoch, offsetProvided, ok = decodeSelectID(encodeSelectID(utc))
	require.True(t, ok)
	assert.Equal(t, int64(1629583500), epoch)
	assert.False(t, offsetProvided)

	epoch, ok = decodeShowAllID(encodeShowAllID(1629583500))
	require.True(t, ok)
	assert.Equal(t, int64(1629583500), epoch)
}

func TestDecodeRejectsForeignCustomIDs(t *testing.T) {
	for _, id := range []string{"", "other:123:o", "timestamp_select:abc:o", "timestamp_select:123", "timestamp_all:xyz", "timestamp_all:1:2"} {
		if _, _, ok := decodeSelectID(id); ok {
			t.Errorf("decodeSelectID accepted %q", id)
		}
		if _, ok := decodeShowAllID(id); ok {
			t.Errorf("decodeShowAllID accepted %q", id)
		}
	}
}

func TestBuildFormatSelectionReply(t *testing.T) {
	p, err := ParseUserDatetime("2021/08/21 22:05")
	require.NoError(t, err)

	content, components := BuildFormatSelectionReply(p, p.Time.Add(2*time.Hour))
	assert.Contains(t, content, "passed the reality test")
	require.Len(t, components, 2)

	buttonRow, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	button, ok := buttonRow.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "Show All!", button.Label)
	assert.Equal(t, "timestamp_all:1629583500", button.CustomID)

	menuRow, ok := components[1].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := menuRow.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, "timestamp_select:1629583500:u", menu.CustomID)
	require.Len(t, menu.Options, 6)
	assert.Equal(t, "Saturday, 21 August 2021 22:05", menu.Options[4].Label)
	assert.Equal(t, "F", menu.Options[4].Value)
	assert.Equal(t, "2 hours ago", menu.Options[5].Label)
	assert.Equal(t, "R", menu.Options[5].Value)
}

func TestBuildFormatSelectionReplyEncodesOffsetFlag(t *testing.T) {
	p, err := ParseUserDatetime("2021/08/21 09:55+0100")
	require.NoError(t, err)

	_, components := BuildFormatSelectionReply(p, p.Time)
	menuRow := components[1].(discordgo.ActionsRow)
	menu := menuRow.Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "timestamp_select:1629536100:o", menu.CustomID)
}

func TestBuildSingleFormatReply(t *testing.T) {
	embed, components := BuildSingleFormatReply(1629536100, "t", true)
	assert.Contains(t, embed.Title, "<t:1629536100:t>")
	assert.Contains(t, embed.Description, `\<t:1629536100:t>`)

	require.Len(t, components, 1)
	row := components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)
	showAll := row.Components[0].(discordgo.Button)
	assert.Equal(t, "timestamp_all:1629536100", showAll.CustomID)
	guide := row.Components[1].(discordgo.Button)
	assert.Equal(t, discordgo.LinkButton, guide.Style)
	assert.Equal(t, timezoneGuideURL, guide.URL)
}

func TestBuildSingleFormatReplyGuidanceDependsOnOffsetFlag(t *testing.T) {
	withOffset, _ := BuildSingleFormatReply(1629536100, "t", true)
	require.Len(t, withOffset.Fields, 1)
	assert.Contains(t, withOffset.Fields[0].Value, "is correct")

	utcDefault, _ := BuildSingleFormatReply(1629583500, "F", false)
	require.Len(t, utcDefault.Fields, 1)
	assert.Contains(t, utcDefault.Fields[0].Value, "is in UTC")

	assert.NotEqual(t, withOffset.Fields[0].Value, utcDefault.Fields[0].Value)
}

func TestBuildAllFormatsReply(t *testing.T) {
	embed := BuildAllFormatsReply(1629583500)
	require.Len(t, embed.Fields, 6)

	for _, field := range embed.Fields {
		assert.Equal(t, `\`+field.Name, field.Value)
		assert.True(t, field.Inline)
	}
	assert.Equal(t, "<t:1629583500:t>", embed.Fields[0].Name)
	assert.Equal(t, "<t:1629583500:F>", embed.Fields[4].Name)
	assert.Equal(t, "<t:1629583500:R>", embed.Fields[5].Name)
}

func TestBuildErrorReply(t *testing.T) {
	embed, components := BuildErrorReply()
	assert.Contains(t, embed.Description, "YYYY/MM/DD HH:MM")
	for _, example := range []string{"2021/08/21 22:05", "2021/08/22 00:05+0200", "2021/08/21 18:35-0330"} {
		assert.Contains(t, embed.Description, example)
	}

	require.Len(t, components, 1)
	row := components[0].(discordgo.ActionsRow)
	guide := row.Components[0].(discordgo.Button)
	assert.Equal(t, discordgo.LinkButton, guide.Style)
	assert.Equal(t, timezoneGuideURL, guide.URL)
	assert.Empty(t, guide.CustomID)
}
