package domain

import (
	"fmt"
	"strings"
	"time"
)

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "Available"
	CarStatusRented      CarStatus = "Rented"
	CarStatusRemoved     CarStatus = "Removed"
	CarStatusMaintenance CarStatus = "Maintenance"
)

// DefaultDailyRateCents is applied when a car is created without a rate.
const DefaultDailyRateCents int64 = 3500

// Maintenance thresholds. A car is due when either one is exceeded.
const (
	MaintenanceIntervalDays = 90
	MaintenanceMileageLimit = 10000
)

// ParseCarStatus maps stored or user-entered text onto a CarStatus.
// Unrecognized values fall back to Available.
func ParseCarStatus(s string) CarStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return CarStatusAvailable
	case "rented":
		return CarStatusRented
	case "removed":
		return CarStatusRemoved
	case "maintenance":
		return CarStatusMaintenance
	default:
		return CarStatusAvailable
	}
}

type Car struct {
	ID              int
	Make            string
	Model           string
	Year            int
	Type            string
	Status          CarStatus
	CurrentRenter   string
	DailyRateCents  int64
	LicensePlate    string
	Mileage         int
	LastMaintenance time.Time
}

// Valid reports whether the car passes the field-validity predicate.
// Year is bounded by the model year ahead of "now".
func (c Car) Valid(now time.Time) bool {
	return c.ID > 0 &&
		strings.TrimSpace(c.Make) != "" &&
		strings.TrimSpace(c.Model) != "" &&
		c.Year > 1900 && c.Year <= now.Year()+1 &&
		strings.TrimSpace(c.Type) != "" &&
		c.DailyRateCents >= 0 &&
		c.Mileage >= 0
}

// NeedsMaintenance reports whether the maintenance interval or the
// mileage limit has been exceeded.
func (c Car) NeedsMaintenance(now time.Time) bool {
	days := int(now.Sub(c.LastMaintenance).Hours() / 24)
	return days > MaintenanceIntervalDays || c.Mileage > MaintenanceMileageLimit
}

// DisplayInfo renders a one-line summary for shell listings.
func (c Car) DisplayInfo() string {
	return fmt.Sprintf("ID: %d | %s %s (%d) | %s | Status: %s | Rate: $%s/day",
		c.ID, c.Make, c.Model, c.Year, c.Type, c.Status, FormatCents(c.DailyRateCents))
}
