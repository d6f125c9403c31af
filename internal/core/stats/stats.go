// Package stats computes revenue series, status distribution and birthday
// lists. Results are recomputed from the collections on every call.
package stats

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// Window is a revenue aggregation period.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

var ErrUnknownWindow = errors.New("unknown revenue window")

// ParseWindow accepts day, week and month. An empty string means week.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "":
		return WindowWeek, nil
	case WindowDay, WindowWeek, WindowMonth:
		return Window(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// Point is one bucket of a revenue series.
type Point struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Series is the revenue of one window.
type Series struct {
	Window    Window          `json:"window"`
	Reference domain.Date     `json:"reference"`
	Points    []Point         `json:"points"`
	Total     decimal.Decimal `json:"total"`
}

// StatusCount is one slice of the status distribution.
type StatusCount struct {
	Status domain.AppointmentStatus `json:"status"`
	Count  int                      `json:"count"`
}

// Revenue sums completed-appointment revenue over the window containing ref.
// An appointment contributes the sum of its services' prices; unpriced services add 0.
//
// The month series buckets by day-of-month number of the appointment date.
// Because the filter already restricts to ref's month and year this matches
// by-date bucketing, but the bucket key is the day number.
func Revenue(apps []domain.Appointment, prices domain.Prices, window Window, ref domain.Date) (Series, error) {
	completed := make([]domain.Appointment, 0, len(apps))
	for _, a := range apps {
		if a.Status == domain.StatusCompleted {
			completed = append(completed, a)
		}
	}

	var points []Point
	switch window {
	case WindowDay:
		amount := decimal.Zero
		for _, a := range completed {
			if a.Date.Equal(ref) {
				amount = amount.Add(prices.Sum(a.Services))
			}
		}
		points = []Point{{Label: "Hoy", Amount: amount}}

	case WindowWeek:
		week := calendar.WeekOf(ref)
		points = make([]Point, len(week))
		for i, day := range week {
			amount := decimal.Zero
			for _, a := range completed {
				if a.Date.Equal(day) {
					amount = amount.Add(prices.Sum(a.Services))
				}
			}
			points[i] = Point{Label: calendar.WeekdayLabel(day.Weekday()), Amount: amount}
		}

	case WindowMonth:
		days := ref.DaysInMonth()
		buckets := make([]decimal.Decimal, days+1)
		for i := range buckets {
			buckets[i] = decimal.Zero
		}
		for _, a := range completed {
			if a.Date.Year() != ref.Year() || a.Date.Month() != ref.Month() {
				continue
			}
			day := a.Date.Day()
			buckets[day] = buckets[day].Add(prices.Sum(a.Services))
		}
		points = make([]Point, days)
		for day := 1; day <= days; day++ {
			points[day-1] = Point{Label: strconv.Itoa(day), Amount: buckets[day]}
		}

	default:
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownWindow, window)
	}

	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Amount)
	}
	return Series{Window: window, Reference: ref, Points: points, Total: total}, nil
}

// StatusDistribution counts appointments per status in canonical status order.
// Statuses with no appointments are left out.
func StatusDistribution(apps []domain.Appointment) []StatusCount {
	counts := make(map[domain.AppointmentStatus]int)
	for _, a := range apps {
		counts[a.Status]++
	}
	out := make([]StatusCount, 0, len(counts))
	for _, st := range domain.Statuses() {
		if n := counts[st]; n > 0 {
			out = append(out, StatusCount{Status: st, Count: n})
		}
	}
	return out
}

// BirthdaysInWeek returns the clients whose birthday (month and day, any year)
// falls on one of the week's dates, ordered by month then day.
func BirthdaysInWeek(clients []domain.Client, week calendar.Week) []domain.Client {
	out := make([]domain.Client, 0)
	for _, c := range clients {
		if c.BirthDate.IsZero() {
			continue
		}
		for _, day := range week {
			if day.Month() == c.BirthDate.Month() && day.Day() == c.BirthDate.Day() {
				out = append(out, c.Clone())
				break
			}
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Client) int {
		if a.BirthDate.Month() != b.BirthDate.Month() {
			return int(a.BirthDate.Month()) - int(b.BirthDate.Month())
		}
		return a.BirthDate.Day() - b.BirthDate.Day()
	})
	return out
}
