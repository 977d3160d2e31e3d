package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Discord timestamp display styles, in menu order.
// From https://discord.com/developers/docs/reference#message-formatting-timestamp-styles
// The relative style has no layout: its label depends on the rendering instant.
var formatStyles = []struct {
	Code   string
	Layout string
}{
	{"t", "15:04"},                         // 16:20
	{"d", "02/01/2006"},                    // 20/04/2021
	{"D", "02 January 2006"},               // 20 April 2021
	{"f", "02 January 2006 15:04"},         // 20 April 2021 16:20
	{"F", "Monday, 02 January 2006 15:04"}, // Tuesday, 20 April 2021 16:20
	{"R", ""},                              // 2 months ago
}

// FormatOption pairs a Discord format code with an example label rendered
// for a concrete instant.
type FormatOption struct {
	Label string
	Code  string
}

// FormatOptions renders the six menu entries for p. Fixed styles are
// formatted in p's own zone; the relative entry is computed against now,
// so it changes between renders of the same instant.
func FormatOptions(p PointInTime, now time.Time) []FormatOption {
	opts := make([]FormatOption, 0, len(formatStyles))
	for _, style := range formatStyles {
		label := relativeLabel(p.Time, now)
		if style.Layout != "" {
			label = p.Time.Format(style.Layout)
		}
		opts = append(opts, FormatOption{Label: label, Code: style.Code})
	}
	return opts
}

// FormatCodes returns the six format codes in menu order.
func FormatCodes() []string {
	codes := make([]string, 0, len(formatStyles))
	for _, style := range formatStyles {
		codes = append(codes, style.Code)
	}
	return codes
}

// relativeLabel approximates Discord's own relative rendering,
// e.g. "3 hours ago" or "2 days from now".
func relativeLabel(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Stamp renders Discord timestamp markup for epoch seconds and a format
// code, e.g. <t:1629583500:F>.
func Stamp(epoch int64, code string) string {
	return fmt.Sprintf("<t:%d:%s>", epoch, code)
}
