package domain

import (
	"errors"
	"slices"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// The Spanish labels are the canonical values on the wire and in imported files.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pendiente"
	StatusConfirmed AppointmentStatus = "Confirmada"
	StatusCompleted AppointmentStatus = "Completada"
	StatusCancelled AppointmentStatus = "Cancelada"
)

// GuestName is the client label used for walk-ins without a client record.
const GuestName = "Invitado"

var ErrValidation = errors.New("validation failed")
var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrImportFormat = errors.New("import format error")
var ErrNoUpcomingAppointment = errors.New("client has no upcoming appointment")

var statuses = []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Statuses returns every status in canonical order.
func Statuses() []AppointmentStatus {
	return slices.Clone(statuses)
}

// ParseStatus matches s exactly against the canonical status values.
func ParseStatus(s string) (AppointmentStatus, bool) {
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Valid reports whether s is one of the canonical statuses.
func (s AppointmentStatus) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Appointment is a scheduled service booking. Services is never empty once stored.
type Appointment struct {
	ID         int64             `json:"id"`
	ClientName string            `json:"clientName"`
	Services   []string          `json:"services"`
	Date       Date              `json:"date"`
	Time       Clock             `json:"time"`
	Status     AppointmentStatus `json:"status"`
}

// CompareSchedule orders two appointments by (date, time).
func CompareSchedule(a, b Appointment) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Time.Compare(b.Time)
}

// Clone returns a copy that shares no slices with a.
func (a Appointment) Clone() Appointment {
	a.Services = slices.Clone(a.Services)
	return a
}
