package reports

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"onboardhub/internal/domain/onboarding"
)

const calendarProductID = "-//onboardhub//onboarding meetings//EN"

// RenderMeetingsICS exports an employee's meetings as an iCalendar feed.
func RenderMeetingsICS(emp onboarding.Employee, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName(fmt.Sprintf("Onboarding: %s", emp.Name))

	views, _ := onboarding.SortedMeetings(emp.Meetings, now)
	for _, m := range views {
		event := cal.AddEvent(m.ID + "@onboardhub")
		event.SetCreatedTime(m.CreatedAt)
		event.SetDtStampTime(now)
		event.SetStartAt(m.ScheduledAt)
		event.SetEndAt(m.ScheduledAt.Add(onboarding.MeetingLength(m.Duration)))
		summary := fmt.Sprintf("%s: %s", m.Type, emp.Name)
		if m.Status == onboarding.MeetingCompleted {
			summary = "[Completed] " + summary
		}
		event.SetSummary(summary)
		if m.Location != "" {
			event.SetLocation(m.Location)
		}
		var desc []string
		if m.Attendees != "" {
			desc = append(desc, "Attendees: "+m.Attendees)
		}
		if m.Notes != "" {
			desc = append(desc, m.Notes)
		}
		if len(desc) > 0 {
			event.SetDescription(strings.Join(desc, "\n"))
		}
		event.SetProperty(ics.ComponentPropertyStatus, "CONFIRMED")
	}
	return cal.Serialize()
}
