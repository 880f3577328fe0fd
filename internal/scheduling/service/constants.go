package service

import "time"

const (
	// ConvertTimeout bounds a single round trip to the conversion service.
	ConvertTimeout = 30 * time.Second
)

const (
	// apiDateTimeLayout is the exact lexical format the conversion API's
	// dateTime parameter requires. The zone travels as a separate parameter,
	// so the string carries no offset.
	apiDateTimeLayout = "2006-01-02 15:04:05"

	// clockLayout renders a wall-clock time the way humans read it.
	clockLayout = "3:04 PM"
)
