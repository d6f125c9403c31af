package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAppointmentRepo struct {
	items      []domain.Appointment
	replaceErr error
	replaced   int
}

func (r *stubAppointmentRepo) All(_ context.Context) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, len(r.items))
	for i, a := range r.items {
		out[i] = a.Clone()
	}
	return out, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id int64) (domain.Appointment, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return domain.Appointment{}, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) Replace(_ context.Context, apps []domain.Appointment) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.items = slices.Clone(apps)
	r.replaced++
	return nil
}

type stubSettingsRepo struct {
	profile domain.Profile
	prices  domain.Prices
}

func (r *stubSettingsRepo) Profile(_ context.Context) (domain.Profile, error) {
	return r.profile, nil
}

func (r *stubSettingsRepo) SaveProfile(_ context.Context, p domain.Profile) error {
	r.profile = p
	return nil
}

func (r *stubSettingsRepo) Prices(_ context.Context) (domain.Prices, error) {
	return r.prices.Clone(), nil
}

func (r *stubSettingsRepo) SavePrices(_ context.Context, p domain.Prices) error {
	r.prices = p.Clone()
	return nil
}

// fixedClock returns a time source that advances one millisecond per call.
func fixedClock() func() time.Time {
	t := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func newAppointmentSvc(repo *stubAppointmentRepo) *AppointmentService {
	settings := &stubSettingsRepo{prices: domain.Prices{
		"Manicure": decimal.NewFromInt(20),
		"Pedicure": decimal.NewFromInt(25),
	}}
	return NewAppointmentService(repo, settings, NewIDSource(fixedClock()), zerolog.Nop())
}

func draft(client, date, clock string, status domain.AppointmentStatus, services ...string) ports.AppointmentDraft {
	return ports.AppointmentDraft{
		ClientName: client,
		Services:   services,
		Date:       date,
		Time:       clock,
		Status:     string(status),
	}
}

func assertChronological(t *testing.T, apps []domain.Appointment) {
	t.Helper()
	for i := 1; i < len(apps); i++ {
		if domain.CompareSchedule(apps[i-1], apps[i]) > 0 {
			t.Fatalf("collection out of order at %d: %s %s before %s %s",
				i, apps[i-1].Date, apps[i-1].Time, apps[i].Date, apps[i].Time)
		}
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAppointmentService_Create_HappyPath(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)

	got, err := svc.Create(context.Background(), draft("Ana", "2024-03-05", "09:30", domain.StatusConfirmed, "Manicure"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got.ID == 0 {
		t.Errorf("expected an id to be assigned")
	}
	if got.Time.String() != "09:30" || got.Date.String() != "2024-03-05" {
		t.Errorf("unexpected schedule: %s %s", got.Date, got.Time)
	}
	if len(repo.items) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(repo.items))
	}
}

func TestAppointmentService_Create_RejectsInvalidDraft(t *testing.T) {
	cases := map[string]ports.AppointmentDraft{
		"blank client":   draft("  ", "2024-03-05", "09:30", domain.StatusPending, "Manicure"),
		"no services":    draft("Ana", "2024-03-05", "09:30", domain.StatusPending),
		"blank service":  draft("Ana", "2024-03-05", "09:30", domain.StatusPending, ""),
		"bad date":       draft("Ana", "05/03/2024", "09:30", domain.StatusPending, "Manicure"),
		"missing date":   draft("Ana", "", "09:30", domain.StatusPending, "Manicure"),
		"bad time":       draft("Ana", "2024-03-05", "9h30", domain.StatusPending, "Manicure"),
		"unknown status": draft("Ana", "2024-03-05", "09:30", "Pending", "Manicure"),
	}

	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &stubAppointmentRepo{}
			svc := newAppointmentSvc(repo)

			_, err := svc.Create(context.Background(), d)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got: %v", err)
			}
			if repo.replaced != 0 {
				t.Errorf("expected no mutation on invalid draft")
			}
		})
	}
}

func TestAppointmentService_Create_KeepsChronologicalOrder(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)
	ctx := context.Background()

	drafts := []ports.AppointmentDraft{
		draft("C", "2024-03-07", "10:00", domain.StatusPending, "Manicure"),
		draft("A", "2024-03-05", "15:00", domain.StatusPending, "Manicure"),
		draft("B", "2024-03-05", "09:00", domain.StatusPending, "Manicure"),
		draft("D", "2024-03-06", "09:00", domain.StatusPending, "Manicure"),
	}
	for _, d := range drafts {
		if _, err := svc.Create(ctx, d); err != nil {
			t.Fatalf("create: %v", err)
		}
		assertChronological(t, repo.items)
	}

	var names []string
	for _, a := range repo.items {
		names = append(names, a.ClientName)
	}
	if !slices.Equal(names, []string{"B", "A", "D", "C"}) {
		t.Errorf("unexpected order: %v", names)
	}
}

func TestAppointmentService_Create_TiesPutNewestFirst(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)
	ctx := context.Background()

	first, _ := svc.Create(ctx, draft("First", "2024-03-05", "10:00", domain.StatusPending, "Manicure"))
	second, _ := svc.Create(ctx, draft("Second", "2024-03-05", "10:00", domain.StatusPending, "Manicure"))

	if repo.items[0].ID != second.ID || repo.items[1].ID != first.ID {
		t.Errorf("expected newly created record ahead of its tie, got %v", repo.items)
	}
}

func TestAppointmentService_Update_RoundTrip(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)
	ctx := context.Background()

	d := draft("Ana", "2024-03-05", "09:30", domain.StatusConfirmed, "Manicure", "Pedicure")
	created, err := svc.Create(ctx, d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(ctx, created.ID, d)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, _ := svc.Get(ctx, created.ID)
	for _, got := range []domain.Appointment{updated, stored} {
		if got.ID != created.ID ||
			got.ClientName != d.ClientName ||
			!slices.Equal(got.Services, d.Services) ||
			got.Date.String() != d.Date ||
			got.Time.String() != d.Time ||
			string(got.Status) != d.Status {
			t.Errorf("round trip mismatch: %+v", got)
		}
	}
}

func TestAppointmentService_Update_ReordersCollection(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)
	ctx := context.Background()

	early, _ := svc.Create(ctx, draft("Early", "2024-03-05", "09:00", domain.StatusPending, "Manicure"))
	_, _ = svc.Create(ctx, draft("Late", "2024-03-06", "09:00", domain.StatusPending, "Manicure"))

	if _, err := svc.Update(ctx, early.ID, draft("Early", "2024-03-08", "09:00", domain.StatusPending, "Manicure")); err != nil {
		t.Fatalf("update: %v", err)
	}
	assertChronological(t, repo.items)
	if repo.items[1].ID != early.ID {
		t.Errorf("expected moved appointment last, got %v", repo.items)
	}
}

func TestAppointmentService_Update_NotFound(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)

	_, err := svc.Update(context.Background(), 42, draft("Ana", "2024-03-05", "09:30", domain.StatusPending, "Manicure"))
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got: %v", err)
	}
}

func TestAppointmentService_Delete_Twice(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)
	ctx := context.Background()

	a, _ := svc.Create(ctx, draft("Ana", "2024-03-05", "09:30", domain.StatusPending, "Manicure"))
	b, _ := svc.Create(ctx, draft("Eva", "2024-03-06", "09:30", domain.StatusPending, "Manicure"))

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	after := slices.Clone(repo.items)

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if len(repo.items) != 1 || repo.items[0].ID != b.ID {
		t.Errorf("unexpected collection after delete: %v", repo.items)
	}
	if len(after) != len(repo.items) {
		t.Errorf("second delete changed the collection")
	}
}

func TestAppointmentService_BulkImport_TwoRowScenario(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)

	res, err := svc.BulkImport(context.Background(), []ports.ImportRow{
		{"clientName": "Ana", "service": "Manicure", "date": "2024-01-10", "time": "09:00", "status": "Confirmada"},
		{},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Accepted != 1 || res.Dropped != 1 || len(res.Rejected) != 0 || res.Received != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.BatchID == "" {
		t.Errorf("expected a batch id")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(repo.items))
	}
	got := repo.items[0]
	if got.ClientName != "Ana" || got.Status != domain.StatusConfirmed || got.Time.String() != "09:00" {
		t.Errorf("unexpected imported appointment: %+v", got)
	}
}

func TestAppointmentService_BulkImport_MergesIntoOrder(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)
	ctx := context.Background()

	existing, _ := svc.Create(ctx, draft("Existing", "2024-01-10", "09:00", domain.StatusPending, "Manicure"))

	_, err := svc.BulkImport(ctx, []ports.ImportRow{
		{"clientName": "Late", "service": "Manicure", "date": "2024-02-01"},
		{"clientName": "Tie", "service": "Manicure", "date": "2024-01-10", "time": "09:00"},
		{"clientName": "Early", "service": "Manicure", "date": "2023-12-31"},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	assertChronological(t, repo.items)

	var names []string
	for _, a := range repo.items {
		names = append(names, a.ClientName)
	}
	if !slices.Equal(names, []string{"Early", "Tie", "Existing", "Late"}) {
		t.Errorf("unexpected order: %v", names)
	}
	for _, a := range repo.items {
		if a.ClientName != "Existing" && a.ID <= existing.ID {
			t.Errorf("expected fresh ids for imported rows, got %d", a.ID)
		}
	}
}

func TestAppointmentService_BulkImport_NothingAccepted(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := newAppointmentSvc(repo)

	for name, rows := range map[string][]ports.ImportRow{
		"empty input":   nil,
		"all sentinels": {{}, {"date": "not a date"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.BulkImport(context.Background(), rows)
			if !errors.Is(err, domain.ErrImportFormat) {
				t.Fatalf("expected ErrImportFormat, got: %v", err)
			}
			if repo.replaced != 0 {
				t.Errorf("expected no mutation")
			}
		})
	}
}

func TestAppointmentService_ServiceOptions(t *testing.T) {
	svc := newAppointmentSvc(&stubAppointmentRepo{})

	got, err := svc.ServiceOptions(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !slices.Equal(got, []string{"Manicure", "Pedicure"}) {
		t.Errorf("unexpected options: %v", got)
	}
}

func TestIDSource_StrictlyIncreasing(t *testing.T) {
	frozen := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ids := NewIDSource(func() time.Time { return frozen })

	prev := ids.Next()
	for range 5 {
		next := ids.Next()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %d after %d", next, prev)
		}
		prev = next
	}
}
