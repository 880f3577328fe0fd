package http

// ConvertRequest is the inbound structured call. Field presence is enforced
// here, not in the service layer.
type ConvertRequest struct {
	MeetingTime     string `json:"meeting_time" binding:"required"`
	UserTimezone    string `json:"user_timezone" binding:"required"`
	FromTimezone    string `json:"from_timezone" binding:"required"`
	TargetTimezone  string `json:"target_timezone" binding:"required"`
	DurationMinutes int64  `json:"duration_minutes" binding:"required,gt=0"`
}

// ConvertOutputs carries the four computed values.
type ConvertOutputs struct {
	ReadableTimeOrigin      string `json:"readable_time_origin"`
	ReadableTimeParticipant string `json:"readable_time_participant"`
	CalendarMeetingTime     int64  `json:"calendar_meeting_time"`
	CalendarEndTime         int64  `json:"calendar_end_time"`
}

// ConvertResponse is an envelope: exactly one of Outputs or Error is set.
type ConvertResponse struct {
	Outputs *ConvertOutputs `json:"outputs,omitempty"`
	Error   string          `json:"error,omitempty"`
}
