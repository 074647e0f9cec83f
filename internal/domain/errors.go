package domain

import (
	"errors"
	"fmt"
)

// ValidationError signals an entity that fails its field-validity
// predicate.
type ValidationError struct {
	Entity string
	Msg    string
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("invalid %s: %s", e.Entity, e.Msg)
	}
	return fmt.Sprintf("invalid %s", e.Entity)
}

// DuplicateIDError signals an id collision on add.
type DuplicateIDError struct {
	Entity string
	ID     int
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("%s %d already exists", e.Entity, e.ID)
}

// NotFoundError signals a lookup miss on a required entity.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// NotAvailableError signals a rental request against a car that is not
// in the Available state.
type NotAvailableError struct {
	CarID  int
	Status CarStatus
}

func (e NotAvailableError) Error() string {
	return fmt.Sprintf("car %d is not available (status %s)", e.CarID, e.Status)
}

// NotRentedError signals a return against a car that is not rented.
type NotRentedError struct {
	CarID  int
	Status CarStatus
}

func (e NotRentedError) Error() string {
	return fmt.Sprintf("car %d is not rented (status %s)", e.CarID, e.Status)
}

// NoActiveRentalError signals a broken cross-entity invariant: a car
// marked Rented with no matching Active rental record.
type NoActiveRentalError struct {
	CarID int
}

func (e NoActiveRentalError) Error() string {
	return fmt.Sprintf("no active rental for car %d", e.CarID)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsDuplicateID(err error) bool {
	var target DuplicateIDError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsNotAvailable(err error) bool {
	var target NotAvailableError
	return errors.As(err, &target)
}

func IsNotRented(err error) bool {
	var target NotRentedError
	return errors.As(err, &target)
}

func IsNoActiveRental(err error) bool {
	var target NoActiveRentalError
	return errors.As(err, &target)
}
