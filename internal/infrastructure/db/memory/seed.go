package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// DefaultPrices is the price table a fresh salon starts with.
func DefaultPrices() domain.Prices {
	return domain.Prices{
		"Semi-permanente": decimal.NewFromInt(25),
		"Tradicional":     decimal.NewFromInt(15),
		"Acrílicas":       decimal.NewFromInt(40),
		"Retoque":         decimal.NewFromInt(30),
	}
}

// DefaultProfile is the profile a fresh salon starts with.
func DefaultProfile() domain.Profile {
	return domain.Profile{SalonName: "Manicurista Pro", OwnerName: "Ana Martínez"}
}

// SeedDefaults writes the default profile and prices.
func SeedDefaults(ctx context.Context, s *State) error {
	if err := s.Settings.SaveProfile(ctx, DefaultProfile()); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if err := s.Settings.SavePrices(ctx, DefaultPrices()); err != nil {
		return fmt.Errorf("seed prices: %w", err)
	}
	return nil
}

// SeedDemo fills the state with demo clients, products and appointments placed
// in the week containing today, so the dashboard has something to show.
func SeedDemo(ctx context.Context, s *State, today domain.Date) error {
	if err := SeedDefaults(ctx, s); err != nil {
		return err
	}

	week := calendar.WeekOf(today)
	birthday := func(weekday, age int) domain.Date {
		d := week[weekday]
		return domain.NewDate(d.Year()-age, d.Month(), d.Day())
	}

	clients := []domain.Client{
		{ID: 1, Name: "Elena Rodriguez", Phone: "555-0101", Email: "elena.r@example.com", BirthDate: birthday(2, 31),
			ServiceHistory: []string{"Semi-permanente", "Tradicional"}, Preferences: "Prefiere tonos nude. Alergia al látex."},
		{ID: 2, Name: "Sofia Garcia", Phone: "555-0102", Email: "sofia.g@example.com", BirthDate: domain.NewDate(1994, time.August, 17),
			ServiceHistory: []string{"Acrílicas"}, Preferences: "Le gustan los diseños florales."},
		{ID: 3, Name: "Camila Hernandez", Phone: "555-0103", Email: "camila.h@example.com", BirthDate: birthday(5, 26),
			ServiceHistory: []string{"Tradicional"}, Preferences: "No le gusta el color amarillo.", IsNew: true},
		{ID: 4, Name: "Valentina Martinez", Phone: "555-0104", Email: "valentina.m@example.com", BirthDate: domain.NewDate(1991, time.February, 3),
			ServiceHistory: []string{"Semi-permanente", "Tradicional", "Acrílicas"}, Preferences: "Siempre pide extra brillo."},
		{ID: 5, Name: "Isabella Lopez", Phone: "555-0105", Email: "isabella.l@example.com", BirthDate: domain.NewDate(1999, time.November, 22),
			ServiceHistory: []string{"Tradicional"}, Preferences: "Sensible en los pies.", IsNew: true},
	}
	for _, c := range clients {
		if err := s.Clients.Save(ctx, c); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}

	products := []domain.Product{
		{ID: 1, Name: "Esmalte Rojo Pasión", CurrentStock: 15, MinStock: 5},
		{ID: 2, Name: "Esmalte Blanco Nieve", CurrentStock: 8, MinStock: 5},
		{ID: 3, Name: "Top Coat Brillante", CurrentStock: 4, MinStock: 5},
		{ID: 4, Name: "Base Coat Fortalecedora", CurrentStock: 12, MinStock: 5},
		{ID: 5, Name: "Aceite de Cutícula", CurrentStock: 20, MinStock: 10},
		{ID: 6, Name: "Crema Hidratante de Manos", CurrentStock: 9, MinStock: 10},
		{ID: 7, Name: "Removedor de Esmalte", CurrentStock: 25, MinStock: 10},
	}
	for _, p := range products {
		if err := s.Products.Save(ctx, p); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	apps := []domain.Appointment{
		{ID: 1, ClientName: "Elena Rodriguez", Services: []string{"Semi-permanente"}, Date: week[1], Time: domain.MustClock(10, 0), Status: domain.StatusConfirmed},
		{ID: 2, ClientName: "Sofia Garcia", Services: []string{"Acrílicas"}, Date: week[1], Time: domain.MustClock(14, 0), Status: domain.StatusPending},
		{ID: 3, ClientName: domain.GuestName, Services: []string{"Tradicional"}, Date: week[2], Time: domain.MustClock(11, 0), Status: domain.StatusCompleted},
		{ID: 4, ClientName: "Valentina Martinez", Services: []string{"Retoque"}, Date: week[4], Time: domain.MustClock(16, 0), Status: domain.StatusCancelled},
		{ID: 5, ClientName: "Isabella Lopez", Services: []string{"Semi-permanente"}, Date: week[4], Time: domain.MustClock(10, 0), Status: domain.StatusPending},
	}
	if err := s.Appointments.Replace(ctx, calendar.SortChronologically(apps)); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}
	return nil
}
