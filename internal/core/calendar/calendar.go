// Package calendar derives week grids and chronological views from the
// appointment collection. Every function is pure: inputs are never modified.
package calendar

import (
	"slices"
	"time"

	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// Week holds the seven dates of a Sunday-start week.
type Week [7]domain.Date

// StatusFilter selects appointments for the history view: a status value or FilterAll.
type StatusFilter string

const FilterAll StatusFilter = "All"

// DefaultHistoryFilter is used when no filter is given.
const DefaultHistoryFilter = StatusFilter(domain.StatusCompleted)

// DayBucket is the set of appointments on one calendar date.
type DayBucket struct {
	Date         domain.Date          `json:"date"`
	Weekday      string               `json:"weekday"`
	Appointments []domain.Appointment `json:"appointments"`
}

var weekdayLabels = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// WeekdayLabel returns the short Spanish label for a weekday.
func WeekdayLabel(d time.Weekday) string {
	return weekdayLabels[d]
}

// WeekOf returns the Sunday-start week containing ref.
func WeekOf(ref domain.Date) Week {
	start := ref.AddDays(-int(ref.Weekday()))
	var w Week
	for i := range w {
		w[i] = start.AddDays(i)
	}
	return w
}

// Contains reports whether d falls inside the week.
func (w Week) Contains(d domain.Date) bool {
	return !d.Before(w[0]) && !d.After(w[6])
}

// BucketByDay groups appointments by date for each day of the week. Each bucket
// is sorted by time of day; appointments at the same time keep collection order.
func BucketByDay(apps []domain.Appointment, week Week) []DayBucket {
	out := make([]DayBucket, len(week))
	for i, day := range week {
		bucket := make([]domain.Appointment, 0)
		for _, a := range apps {
			if a.Date.Equal(day) {
				bucket = append(bucket, a.Clone())
			}
		}
		slices.SortStableFunc(bucket, func(a, b domain.Appointment) int {
			return a.Time.Compare(b.Time)
		})
		out[i] = DayBucket{Date: day, Weekday: WeekdayLabel(day.Weekday()), Appointments: bucket}
	}
	return out
}

// SortChronologically returns a copy ordered ascending by (date, time), stable.
func SortChronologically(apps []domain.Appointment) []domain.Appointment {
	out := cloneAll(apps)
	slices.SortStableFunc(out, domain.CompareSchedule)
	return out
}

// Upcoming returns the appointments dated today or later in ascending order.
// The time of day is not considered.
func Upcoming(apps []domain.Appointment, today domain.Date) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(apps))
	for _, a := range apps {
		if !a.Date.Before(today) {
			out = append(out, a.Clone())
		}
	}
	slices.SortStableFunc(out, domain.CompareSchedule)
	return out
}

// History returns the appointments matching filter, newest first.
// An empty filter means DefaultHistoryFilter.
func History(apps []domain.Appointment, filter StatusFilter) []domain.Appointment {
	if filter == "" {
		filter = DefaultHistoryFilter
	}
	out := make([]domain.Appointment, 0, len(apps))
	for _, a := range apps {
		if filter == FilterAll || string(a.Status) == string(filter) {
			out = append(out, a.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Appointment) int {
		return domain.CompareSchedule(b, a)
	})
	return out
}

// ValidFilter reports whether f is FilterAll, empty, or a known status.
func ValidFilter(f StatusFilter) bool {
	return f == "" || f == FilterAll || domain.AppointmentStatus(f).Valid()
}

// NextFor returns the earliest upcoming appointment booked under clientName.
// Names are compared as display labels; there is no client identity behind them.
func NextFor(apps []domain.Appointment, clientName string, today domain.Date) (domain.Appointment, bool) {
	for _, a := range Upcoming(apps, today) {
		if a.ClientName == clientName {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

func cloneAll(apps []domain.Appointment) []domain.Appointment {
	out := make([]domain.Appointment, len(apps))
	for i, a := range apps {
		out[i] = a.Clone()
	}
	return out
}
