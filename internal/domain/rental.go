package domain

import (
	"fmt"
	"strings"
	"time"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
	RentalStatusOverdue   RentalStatus = "Overdue"
)

// ParseRentalStatus maps stored or user-entered text onto a RentalStatus.
// Unrecognized values fall back to Active.
func ParseRentalStatus(s string) RentalStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return RentalStatusActive
	case "completed":
		return RentalStatusCompleted
	case "overdue":
		return RentalStatusOverdue
	default:
		return RentalStatusActive
	}
}

// Rental is a single rental transaction. CustomerID is zero when the
// rental carries only a free-text customer name. ActualReturn is the
// zero time while the rental is open; TotalCostCents is meaningful only
// once Status is Completed.
type Rental struct {
	ID             int
	CarID          int
	CustomerID     int
	CustomerName   string
	StartDate      time.Time
	ExpectedReturn time.Time
	ActualReturn   time.Time
	DailyRateCents int64
	TotalCostCents int64
	Status         RentalStatus
}

// CostCents computes the rental cost: whole calendar days between start
// and end (actual return when set, expected otherwise), floored at one
// day, times the daily rate snapshot.
func (r Rental) CostCents() int64 {
	end := r.ExpectedReturn
	if !r.ActualReturn.IsZero() {
		end = r.ActualReturn
	}
	days := int64(end.Sub(r.StartDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days * r.DailyRateCents
}

// IsOverdue reports whether the rental is active and past its expected
// return. Overdue is derived at query time, never stored.
func (r Rental) IsOverdue(now time.Time) bool {
	return r.Status == RentalStatusActive && now.After(r.ExpectedReturn)
}

// Complete closes the rental at the given return date and fixes the
// total cost.
func (r *Rental) Complete(actualReturn time.Time) {
	r.ActualReturn = actualReturn
	r.Status = RentalStatusCompleted
	r.TotalCostCents = r.CostCents()
}

// DisplayInfo renders a one-line summary for shell listings.
func (r Rental) DisplayInfo() string {
	customer := r.CustomerName
	if r.CustomerID != 0 {
		customer = fmt.Sprintf("Customer %d (%s)", r.CustomerID, r.CustomerName)
	}
	return fmt.Sprintf("Rental %d: Car %d to %s, From %s to %s, Status: %s, Cost: $%s",
		r.ID, r.CarID, customer, FormatDate(r.StartDate), FormatDate(r.ExpectedReturn),
		r.Status, FormatCents(r.CostCents()))
}
