package ports

import (
	"context"

	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// AppointmentDraft carries the mutable fields of an appointment as received
// from the presentation layer. Nothing is defaulted: every field is required.
type AppointmentDraft struct {
	ClientName string   `json:"clientName" validate:"required,notblank"`
	Services   []string `json:"services"   validate:"required,min=1,dive,required,notblank"`
	Date       string   `json:"date"       validate:"required,datetime=2006-01-02"`
	Time       string   `json:"time"       validate:"required,clock"`
	Status     string   `json:"status"     validate:"required,status"`
}

// ImportRow is one loosely-typed record from an external spreadsheet or JSON upload.
type ImportRow map[string]any

// RowError reports why a row escaped the silent drop rule but could not be imported.
type RowError struct {
	Row    int    `json:"row"` // 0-based index in the submitted rows
	Reason string `json:"reason"`
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	BatchID  string     `json:"batchId"`
	Received int        `json:"received"`
	Accepted int        `json:"accepted"`
	Dropped  int        `json:"dropped"`
	Rejected []RowError `json:"rejected"`
}

// AppointmentService is the single mutation path for appointments.
type AppointmentService interface {
	Create(ctx context.Context, draft AppointmentDraft) (domain.Appointment, error)
	Update(ctx context.Context, id int64, patch AppointmentDraft) (domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
	BulkImport(ctx context.Context, rows []ImportRow) (*ImportResult, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	Get(ctx context.Context, id int64) (domain.Appointment, error)
	ServiceOptions(ctx context.Context) ([]string, error)
}
