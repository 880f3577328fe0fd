package domain

// SchedulingRequest carries one proposed meeting to convert.
// user_timezone is descriptive input supplied by the caller; see the
// orchestrator for how it is used.
type SchedulingRequest struct {
	MeetingTime     string // free-form date/time expression
	UserTimezone    string
	FromTimezone    string // IANA zone name
	TargetTimezone  string // IANA zone name
	DurationMinutes int64
}

// ConversionResult is the external service's description of a date-time
// re-expressed in the destination zone, plus that zone's metadata.
type ConversionResult struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Day          int    `json:"day"`
	Hour         int    `json:"hour"`
	Minute       int    `json:"minute"`
	Seconds      int    `json:"seconds"`
	MilliSeconds int    `json:"milliSeconds"`
	DateTime     string `json:"dateTime"` // ISO-like wall clock in the destination zone
	Date         string `json:"date"`
	Time         string `json:"time"`
	TimeZone     string `json:"timeZone"`
	DstActive    bool   `json:"dstActive"`
}

// SchedulingResult is the sole output of a scheduling computation.
type SchedulingResult struct {
	ReadableTimeOrigin      string `json:"readable_time_origin"`
	ReadableTimeParticipant string `json:"readable_time_participant"`
	CalendarMeetingTime     int64  `json:"calendar_meeting_time"` // epoch seconds
	CalendarEndTime         int64  `json:"calendar_end_time"`     // epoch seconds
}
