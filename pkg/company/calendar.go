package company

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// CalendarFilter narrows the calendar view. Zero fields do not filter.
type CalendarFilter struct {
	From      time.Time
	To        time.Time
	Status    Status
	CompanyID uuid.UUID
}

// CalendarEntry is one application placed on the calendar.
type CalendarEntry struct {
	CompanyID     uuid.UUID `json:"companyId"`
	CompanyName   string    `json:"companyName"`
	ApplicationID uuid.UUID `json:"applicationId"`
	Position      string    `json:"position"`
	Time          string    `json:"time"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes"`
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

// Calendar groups the applications of all companies by day, oldest day first
// and by time within a day.
func (s *service) Calendar(ctx context.Context, f CalendarFilter) ([]CalendarDay, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrValidation("unknown status " + string(f.Status))
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byDay := map[string][]CalendarEntry{}
	for _, c := range all {
		if f.CompanyID != uuid.Nil && c.ID != f.CompanyID {
			continue
		}
		for _, a := range c.Applications {
			if f.Status != "" && a.Status != f.Status {
				continue
			}
			day, err := time.Parse(DateLayout, a.Date)
			if err != nil {
				continue
			}
			if !f.From.IsZero() && day.Before(truncateDay(f.From)) {
				continue
			}
			if !f.To.IsZero() && day.After(truncateDay(f.To)) {
				continue
			}
			byDay[a.Date] = append(byDay[a.Date], CalendarEntry{
				CompanyID:     c.ID,
				CompanyName:   c.Name,
				ApplicationID: a.ID,
				Position:      a.Position,
				Time:          a.Time,
				Status:        a.Status,
				Notes:         a.Notes,
			})
		}
	}

	days := make([]CalendarDay, 0, len(byDay))
	for date, entries := range byDay {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Time < entries[j].Time })
		days = append(days, CalendarDay{Date: date, Entries: entries})
	}
	// YYYY-MM-DD sorts lexically
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
