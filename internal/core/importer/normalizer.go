// Package importer turns loosely-typed rows from spreadsheets or JSON uploads
// into appointments ready for the store.
package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

const (
	UnspecifiedService = "No especificado"
	DefaultTime        = "12:00"
)

// Column names expected in imported rows (case-sensitive).
const (
	ColumnClientName = "clientName"
	ColumnService    = "service"
	ColumnServices   = "services"
	ColumnDate       = "date"
	ColumnTime       = "time"
	ColumnStatus     = "status"
)

// maxSerial is the spreadsheet serial of 9999-12-31. Read with the 1900 offset
// below it would land past year 9999, so valid serials stay under it.
const maxSerial = 2958465

// spreadsheetEpoch is day 1 of the spreadsheet serial calendar.
var spreadsheetEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var defaultClock = domain.MustClock(12, 0)

// Result is the outcome of normalising a batch of rows.
type Result struct {
	Accepted []domain.Appointment
	Dropped  int
	Rejected []ports.RowError
}

// Normalizer validates and coerces rows. NextID supplies fresh appointment ids.
type Normalizer struct {
	NextID func() int64
}

func New(nextID func() int64) *Normalizer {
	return &Normalizer{NextID: nextID}
}

// Normalize converts rows into appointments.
//
// A row is dropped silently only when all three of these hold: the client name
// fell back to the guest label, the services fell back to the unspecified
// label, and the date could not be read. Any other row with an unreadable date
// is reported in Rejected. When rows is non-empty and nothing is accepted the
// error wraps domain.ErrImportFormat.
func (n *Normalizer) Normalize(rows []ports.ImportRow) (Result, error) {
	var res Result
	if len(rows) == 0 {
		return res, fmt.Errorf("%w: no rows to import", domain.ErrImportFormat)
	}

	for i, row := range rows {
		date, dateOK := resolveDate(row[ColumnDate])
		clientName, guest := resolveClientName(row[ColumnClientName])
		services, unspecified := resolveServices(row)

		if guest && unspecified && !dateOK {
			res.Dropped++
			continue
		}
		if !dateOK {
			res.Rejected = append(res.Rejected, ports.RowError{
				Row:    i,
				Reason: fmt.Sprintf("unreadable date %v", row[ColumnDate]),
			})
			continue
		}

		res.Accepted = append(res.Accepted, domain.Appointment{
			ID:         n.NextID(),
			ClientName: clientName,
			Services:   services,
			Date:       date,
			Time:       resolveTime(row[ColumnTime]),
			Status:     resolveStatus(row[ColumnStatus]),
		})
	}

	if len(res.Accepted) == 0 {
		return res, fmt.Errorf("%w: none of the %d rows could be imported; expected columns clientName, service, date, time, status",
			domain.ErrImportFormat, len(rows))
	}
	return res, nil
}

func resolveDate(v any) (domain.Date, bool) {
	switch d := v.(type) {
	case domain.Date:
		return d, !d.IsZero()
	case time.Time:
		if d.IsZero() {
			return domain.Date{}, false
		}
		return domain.DateOf(d.UTC()), true
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return domain.DateOf(t.UTC()), true
			}
		}
		return domain.Date{}, false
	}
	if serial, ok := toFloat(v); ok {
		return fromSerial(serial)
	}
	return domain.Date{}, false
}

// fromSerial maps a spreadsheet day number to a date as 1900-01-01 + (n-1) days.
// Spreadsheets count a nonexistent 1900-02-29, so serials past 60 land one day
// later than the spreadsheet displays; imported files have always been read this way.
func fromSerial(serial float64) (domain.Date, bool) {
	if math.IsNaN(serial) || serial < 1 || serial >= maxSerial {
		return domain.Date{}, false
	}
	days := int(math.Floor(serial)) - 1
	return domain.DateOf(spreadsheetEpoch.AddDate(0, 0, days)), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case time.Time:
		return s.UTC().Format(time.RFC3339)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func resolveClientName(v any) (string, bool) {
	if name := stringify(v); name != "" {
		return name, false
	}
	return domain.GuestName, true
}

func resolveServices(row ports.ImportRow) ([]string, bool) {
	raw := row[ColumnService]
	if isBlank(raw) {
		raw = row[ColumnServices]
	}

	var services []string
	switch list := raw.(type) {
	case []any:
		for _, item := range list {
			if s := stringify(item); s != "" {
				services = append(services, s)
			}
		}
	case []string:
		for _, item := range list {
			if s := strings.TrimSpace(item); s != "" {
				services = append(services, s)
			}
		}
	default:
		if s := stringify(raw); s != "" {
			services = []string{s}
		}
	}

	if len(services) == 0 {
		return []string{UnspecifiedService}, true
	}
	return services, false
}

// isBlank reports whether a single cell value carries no text.
func isBlank(v any) bool {
	switch v.(type) {
	case []any, []string:
		return false
	}
	return stringify(v) == ""
}

func resolveTime(v any) domain.Clock {
	if t, ok := v.(time.Time); ok {
		c, err := domain.NewClock(t.Hour(), t.Minute())
		if err == nil {
			return c
		}
	}
	s := stringify(v)
	if s == "" {
		return defaultClock
	}
	c, err := domain.ParseClock(s)
	if err != nil {
		return defaultClock
	}
	return c
}

func resolveStatus(v any) domain.AppointmentStatus {
	s, _ := v.(string)
	if st, ok := domain.ParseStatus(s); ok {
		return st
	}
	return domain.StatusPending
}
