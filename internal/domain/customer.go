package domain

import (
	"fmt"
	"strings"
	"time"
)

type Customer struct {
	ID               int
	Name             string
	LicenseNumber    string
	Email            string
	Phone            string
	RegistrationDate time.Time
	IsActive         bool
}

// Valid reports whether the customer passes the field-validity predicate.
func (c Customer) Valid() bool {
	return c.ID > 0 &&
		strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.LicenseNumber) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Phone) != ""
}

// DisplayInfo renders a one-line summary for shell listings.
func (c Customer) DisplayInfo() string {
	status := "Active"
	if !c.IsActive {
		status = "Inactive"
	}
	return fmt.Sprintf("ID: %d | %s | License: %s | Email: %s | Phone: %s | Status: %s | Registered: %s",
		c.ID, c.Name, c.LicenseNumber, c.Email, c.Phone, status, FormatDate(c.RegistrationDate))
}
