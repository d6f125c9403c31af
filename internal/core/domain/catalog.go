package domain

import (
	"errors"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrClientNotFound = errors.New("client not found")
var ErrProductNotFound = errors.New("product not found")
var ErrInsufficientStock = errors.New("insufficient stock")

// Client is a salon customer. Appointments refer to clients by name only.
type Client struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	BirthDate      Date     `json:"birthDate"`
	ServiceHistory []string `json:"serviceHistory"`
	Preferences    string   `json:"preferences"`
	IsNew          bool     `json:"isNew"`
}

func (c Client) Clone() Client {
	c.ServiceHistory = slices.Clone(c.ServiceHistory)
	return c
}

// Product is an inventory item.
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
}

// LowStock reports whether the product reached its reorder point.
func (p Product) LowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// Prices maps a service name to its unit price.
type Prices map[string]decimal.Decimal

// PriceOf returns the price of a service, or zero when the service is not priced.
func (p Prices) PriceOf(service string) decimal.Decimal {
	if v, ok := p[service]; ok {
		return v
	}
	return decimal.Zero
}

// Sum adds up the prices of all given services.
func (p Prices) Sum(services []string) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		total = total.Add(p.PriceOf(s))
	}
	return total
}

// Services lists the priced service names alphabetically.
func (p Prices) Services() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Prices) Clone() Prices {
	out := make(Prices, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Profile holds the salon display names.
type Profile struct {
	SalonName string `json:"salonName"`
	OwnerName string `json:"ownerName"`
}

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
