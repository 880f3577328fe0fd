package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/meetsync/scheduler-backend/internal/scheduling/domain"
)

// ordinalRe strips day ordinals ("14th" -> "14") before parsing.
var ordinalRe = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)

// Trailing zone designators ("GMT+2", "UTC", "CET") are dropped before
// parsing: the conversion API takes the zone as a separate parameter, and
// leaving the token in place lets loose parsers eat it as part of the date
// or shift the wall clock. Three letters minimum so AM/PM survive.
var (
	trailingOffsetRe = regexp.MustCompile(`\s+(GMT|UTC)([+-]\d{1,2}(:\d{2})?)?$`)
	trailingAbbrevRe = regexp.MustCompile(`\s+[A-Z]{3,5}$`)
)

// fallbackLayouts are tried when dateparse gives up, covering spoken-style
// expressions like "August 14, 2024 11:06 PM". Zone-bearing layouts are
// deliberately absent: they would re-anchor the wall clock.
var fallbackLayouts = []string{
	"January 2, 2006 3:04 PM",
	"January 2, 2006 15:04",
	"2006-01-02 3:04 PM",
}

// FormatForAPI normalizes a free-form date/time expression into the exact
// string the conversion API expects. It never returns an error: an input
// nothing can parse passes through (minus cleanup) and fails downstream when
// the API rejects it.
func FormatForAPI(raw string) string {
	cleaned := cleanDateTime(raw)
	t, err := parseLoose(cleaned)
	if err != nil {
		return cleaned
	}
	return t.Format(apiDateTimeLayout)
}

// ReadableClock renders the hour:minute of a date/time string in 12-hour
// AM/PM form. Parsing is generic, not zone-aware: the wall clock embedded in
// the string is what comes back, whatever zone it was written in.
func ReadableClock(raw string) (string, error) {
	t, err := parseLoose(cleanDateTime(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnparseableTime, raw)
	}
	return t.Format(clockLayout), nil
}

func cleanDateTime(raw string) string {
	s := strings.TrimSpace(raw)
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, " at ", " ")
	s = trailingOffsetRe.ReplaceAllString(s, "")
	s = trailingAbbrevRe.ReplaceAllString(s, "")
	return s
}

func parseLoose(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s)
	if err == nil {
		return t, nil
	}
	for _, layout := range fallbackLayouts {
		if t, lerr := time.Parse(layout, s); lerr == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
