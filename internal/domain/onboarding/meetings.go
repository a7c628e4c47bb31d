package onboarding

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeetingDurations are the suggested duration labels. Other labels are accepted.
var MeetingDurations = []string{"15 min", "30 min", "45 min", "1 hour", "1.5 hours", "2 hours"}

const defaultMeetingLength = 30 * time.Minute

// MeetingLength parses labels such as "45 min" or "1.5 hours", falling back
// to half an hour for anything it does not recognise.
func MeetingLength(label string) time.Duration {
	fields := strings.Fields(strings.ToLower(label))
	if len(fields) != 2 {
		return defaultMeetingLength
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || n <= 0 {
		return defaultMeetingLength
	}
	switch strings.TrimSuffix(fields[1], "s") {
	case "min", "minute":
		return time.Duration(n * float64(time.Minute))
	case "hour", "hr":
		return time.Duration(n * float64(time.Hour))
	}
	return defaultMeetingLength
}

func newMeeting(in MeetingInput, now time.Time) (Meeting, error) {
	if strings.TrimSpace(in.Type) == "" {
		return Meeting{}, fmt.Errorf("meeting type is required: %w", ErrInvalidInput)
	}
	if in.ScheduledAt.IsZero() {
		return Meeting{}, fmt.Errorf("meeting time is required: %w", ErrInvalidInput)
	}
	return Meeting{
		ID:          uuid.NewString(),
		Type:        strings.TrimSpace(in.Type),
		ScheduledAt: in.ScheduledAt,
		Duration:    in.Duration,
		Location:    in.Location,
		Attendees:   in.Attendees,
		Notes:       in.Notes,
		Status:      MeetingScheduled,
		CreatedAt:   now,
	}, nil
}

func findMeeting(meetings []Meeting, id string) (int, error) {
	for i := range meetings {
		if meetings[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("meeting %q: %w", id, ErrNotFound)
}

func completeMeeting(e *Employee, id string) (Meeting, error) {
	i, err := findMeeting(e.Meetings, id)
	if err != nil {
		return Meeting{}, err
	}
	if e.Meetings[i].Status != MeetingScheduled {
		return Meeting{}, fmt.Errorf("meeting %q is %s: %w", id, e.Meetings[i].Status, ErrInvalidState)
	}
	e.Meetings[i].Status = MeetingCompleted
	return e.Meetings[i], nil
}

func cancelMeeting(e *Employee, id string) (Meeting, error) {
	i, err := findMeeting(e.Meetings, id)
	if err != nil {
		return Meeting{}, err
	}
	removed := e.Meetings[i]
	e.Meetings = slices.Delete(e.Meetings, i, i+1)
	return removed, nil
}

type MeetingView struct {
	Meeting
	Upcoming bool `json:"upcoming"`
}

type MeetingStats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
}

// SortedMeetings orders meetings by scheduled time and flags future ones.
func SortedMeetings(meetings []Meeting, now time.Time) ([]MeetingView, MeetingStats) {
	out := make([]MeetingView, 0, len(meetings))
	var stats MeetingStats
	for _, m := range meetings {
		v := MeetingView{Meeting: m, Upcoming: m.ScheduledAt.After(now)}
		out = append(out, v)
		stats.Total++
		if m.Status == MeetingCompleted {
			stats.Completed++
		} else {
			stats.Scheduled++
		}
		if v.Upcoming && m.Status == MeetingScheduled {
			stats.Upcoming++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out, stats
}
