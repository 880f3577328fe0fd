package service

import (
	"context"
	"time"

	"github.com/meetsync/scheduler-backend/internal/scheduling/domain"
)

// Converter re-expresses a wall-clock time in another IANA zone.
type Converter interface {
	ConvertTimeZone(ctx context.Context, fromZone, dateTime, toZone string) (*domain.ConversionResult, error)
}

// SchedulerService computes meeting times across zones.
type SchedulerService struct {
	converter Converter
}

// NewSchedulerService creates a new SchedulerService
func NewSchedulerService(converter Converter) *SchedulerService {
	return &SchedulerService{
		converter: converter,
	}
}

// wallClockLayouts cover the zone-less date-time shapes the conversion
// service returns.
var wallClockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Schedule converts the proposed meeting time into the participant's and the
// user's zones and derives the calendar timestamps. The two conversions run
// sequentially, participant first. Any failure aborts the whole computation;
// no partial result is returned.
func (s *SchedulerService) Schedule(ctx context.Context, req *domain.SchedulingRequest) (*domain.SchedulingResult, error) {
	logger := NewLogger(ctx)

	formatted := FormatForAPI(req.MeetingTime)

	participant, err := s.converter.ConvertTimeZone(ctx, req.FromTimezone, formatted, req.TargetTimezone)
	if err != nil {
		return nil, err
	}

	// NOTE: the user-view conversion targets the literal user_timezone input,
	// even though that field is documented as a display label. This mirrors
	// the behavior the callers depend on today; flag to stakeholders before
	// changing it.
	userView, err := s.converter.ConvertTimeZone(ctx, req.FromTimezone, formatted, req.UserTimezone)
	if err != nil {
		return nil, err
	}

	meetingEpoch, err := wallClockEpoch(userView.DateTime)
	if err != nil {
		return nil, err
	}

	readableOrigin, err := ReadableClock(req.MeetingTime)
	if err != nil {
		return nil, err
	}

	readableParticipant, err := ReadableClock(participant.DateTime)
	if err != nil {
		return nil, err
	}

	result := &domain.SchedulingResult{
		ReadableTimeOrigin:      readableOrigin,
		ReadableTimeParticipant: readableParticipant,
		CalendarMeetingTime:     meetingEpoch,
		CalendarEndTime:         meetingEpoch + req.DurationMinutes*60,
	}

	logger.LogInfof("schedule",
		"origin=%q participant=%q meeting_epoch=%d end_epoch=%d",
		result.ReadableTimeOrigin,
		result.ReadableTimeParticipant,
		result.CalendarMeetingTime,
		result.CalendarEndTime,
	)

	return result, nil
}

// wallClockEpoch turns a zone-less converted date-time string into epoch
// seconds. The string is taken at face value as UTC; an epoch second is
// zone-independent, so this is the instant the converted wall clock denotes
// to a parser with no zone information.
func wallClockEpoch(dateTime string) (int64, error) {
	for _, layout := range wallClockLayouts {
		if t, err := time.Parse(layout, dateTime); err == nil {
			return t.Unix(), nil
		}
	}
	// Last resort for strings that carry an explicit offset.
	t, err := parseLoose(dateTime)
	if err != nil {
		return 0, domain.ErrInvalidAPIResponse
	}
	return t.Unix(), nil
}
