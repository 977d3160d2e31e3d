package main

import (
	"fmt"
	"strings"
	"time"
)

// Accepted input layouts. The offset variant requires a signed 4-digit
// UTC offset with no colon (e.g. +0100); the bare variant is taken as UTC.
const (
	layoutWithOffset = "2006/01/02 15:04-0700"
	layoutUTC        = "2006/01/02 15:04"
)

// PointInTime is a parsed user datetime. Time always carries an explicit
// zone: the one built from the ±HHMM offset, or UTC when none was given.
type PointInTime struct {
	Time           time.Time
	OffsetProvided bool
}

// Epoch returns the instant as Unix seconds, the form Discord's timestamp
// markup expects.
func (p PointInTime) Epoch() int64 {
	return p.Time.Unix()
}

// ParseError reports input that matched neither accepted grammar.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid YYYY/MM/DD HH:MM[±HHMM] datetime", e.Input)
}

// ParseUserDatetime interprets input as "YYYY/MM/DD HH:MM±HHMM". If that
// fails it retries without the offset and pins the result to UTC. Calendar
// validity (month range, days per month, leap years) comes from time.Parse.
// Both attempts failing yields a *ParseError.
func ParseUserDatetime(input string) (PointInTime, error) {
	s := strings.TrimSpace(input)

	if t, err := time.Parse(layoutWithOffset, s); err == nil {
		return PointInTime{Time: t, OffsetProvided: true}, nil
	}
	if t, err := time.Parse(layoutUTC, s); err == nil {
		return PointInTime{Time: t.UTC(), OffsetProvided: false}, nil
	}
	return PointInTime{}, &ParseError{Input: s}
}

// buildDatetimeInput reassembles the slash command's discrete fields into
// the canonical datetime string so both entry points share one parser. A
// malformed offset string simply fails the parse like any other bad input.
func buildDatetimeInput(year, month, day, hour, minutes int64, offset string) string {
	return fmt.Sprintf("%04d/%02d/%02d %02d:%02d%s", year, month, day, hour, minutes, offset)
}
