package service

import (
	"strings"
	"time"

	"fleettrack/internal/domain"
	"fleettrack/internal/logger"
)

// Rental ids allocated by the service start here when no rentals exist.
const firstRentalID = 1001

// FleetService is the sole owner and mutator of the car, rental and
// customer collections. Every mutation that touches the car-status /
// active-rental pair happens inside one method so the two can never
// drift apart.
type FleetService struct {
	cars       []domain.Car
	rentals    []domain.Rental
	customers  []domain.Customer
	rentalDays int
	now        func() time.Time
}

// NewFleetService builds a service around the loaded collections.
// rentalDays is the default rental period applied by RentCar.
func NewFleetService(cars []domain.Car, rentals []domain.Rental, customers []domain.Customer, rentalDays int) *FleetService {
	if rentalDays < 1 {
		rentalDays = 7
	}
	return &FleetService{
		cars:       cars,
		rentals:    rentals,
		customers:  customers,
		rentalDays: rentalDays,
		now:        time.Now,
	}
}

func (s *FleetService) findCar(id int) *domain.Car {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return &s.cars[i]
		}
	}
	return nil
}

func (s *FleetService) findActiveRental(carID int) *domain.Rental {
	for i := range s.rentals {
		if s.rentals[i].CarID == carID && s.rentals[i].Status == domain.RentalStatusActive {
			return &s.rentals[i]
		}
	}
	return nil
}

// nextRentalID allocates max existing id + 1, or firstRentalID when the
// log is empty.
func (s *FleetService) nextRentalID() int {
	next := firstRentalID
	for _, r := range s.rentals {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return next
}

// AddCar appends a new car to the fleet.
func (s *FleetService) AddCar(car domain.Car) error {
	if s.findCar(car.ID) != nil {
		return domain.DuplicateIDError{Entity: "car", ID: car.ID}
	}
	if !car.Valid(s.now()) {
		return domain.ValidationError{Entity: "car"}
	}
	s.cars = append(s.cars, car)
	logger.Info("Car added", "id", car.ID, "make", car.Make, "model", car.Model)
	return nil
}

// UpdateCar replaces an existing car's fields. Updates that would break
// the rented/renter pairing are rejected.
func (s *FleetService) UpdateCar(car domain.Car) error {
	existing := s.findCar(car.ID)
	if existing == nil {
		return domain.NotFoundError{Entity: "car", ID: car.ID}
	}
	if !car.Valid(s.now()) {
		return domain.ValidationError{Entity: "car"}
	}
	if car.Status == domain.CarStatusRented && car.CurrentRenter == "" {
		return domain.ValidationError{Entity: "car", Msg: "rented car must have a renter"}
	}
	if car.Status != domain.CarStatusRented && car.CurrentRenter != "" {
		return domain.ValidationError{Entity: "car", Msg: "only a rented car may have a renter"}
	}
	*existing = car
	return nil
}

// RemoveCar soft-deletes a car so historical rentals stay resolvable.
func (s *FleetService) RemoveCar(id int) error {
	car := s.findCar(id)
	if car == nil {
		return domain.NotFoundError{Entity: "car", ID: id}
	}
	car.Status = domain.CarStatusRemoved
	logger.Info("Car removed", "id", id)
	return nil
}

// RentCar opens a rental for an available car: a new Active rental with
// the car's rate snapshot, and the car flipped to Rented. Both effects
// happen together or not at all.
func (s *FleetService) RentCar(id int, renterName string) (domain.Rental, error) {
	car := s.findCar(id)
	if car == nil || car.Status != domain.CarStatusAvailable {
		status := domain.CarStatus("")
		if car != nil {
			status = car.Status
		}
		return domain.Rental{}, domain.NotAvailableError{CarID: id, Status: status}
	}

	now := s.now()
	rental := domain.Rental{
		ID:             s.nextRentalID(),
		CarID:          id,
		CustomerName:   renterName,
		StartDate:      now,
		ExpectedReturn: now.AddDate(0, 0, s.rentalDays),
		DailyRateCents: car.DailyRateCents,
		Status:         domain.RentalStatusActive,
	}
	s.rentals = append(s.rentals, rental)
	car.Status = domain.CarStatusRented
	car.CurrentRenter = renterName
	logger.Info("Car rented", "car_id", id, "renter", renterName, "rental_id", rental.ID)
	return rental, nil
}

// ReturnCar completes the active rental for a rented car and makes the
// car available again. A rented car with no active rental is a broken
// invariant and is surfaced, never ignored.
func (s *FleetService) ReturnCar(id int) (domain.Rental, error) {
	car := s.findCar(id)
	if car == nil {
		return domain.Rental{}, domain.NotFoundError{Entity: "car", ID: id}
	}
	if car.Status != domain.CarStatusRented {
		return domain.Rental{}, domain.NotRentedError{CarID: id, Status: car.Status}
	}
	rental := s.findActiveRental(id)
	if rental == nil {
		return domain.Rental{}, domain.NoActiveRentalError{CarID: id}
	}

	rental.Complete(s.now())
	car.Status = domain.CarStatusAvailable
	car.CurrentRenter = ""
	logger.Info("Car returned", "car_id", id, "rental_id", rental.ID,
		"total_cost", domain.FormatCents(rental.TotalCostCents))
	return *rental, nil
}

// AddRental records a manually-entered rental. It mirrors RentCar's
// checks and likewise transitions the referenced car to Rented.
func (s *FleetService) AddRental(rental domain.Rental) (domain.Rental, error) {
	if rental.ID == 0 {
		rental.ID = s.nextRentalID()
	}
	for _, r := range s.rentals {
		if r.ID == rental.ID {
			return domain.Rental{}, domain.DuplicateIDError{Entity: "rental", ID: rental.ID}
		}
	}
	car := s.findCar(rental.CarID)
	if car == nil {
		return domain.Rental{}, domain.NotFoundError{Entity: "car", ID: rental.CarID}
	}
	if car.Status != domain.CarStatusAvailable {
		return domain.Rental{}, domain.NotAvailableError{CarID: rental.CarID, Status: car.Status}
	}

	now := s.now()
	if rental.StartDate.IsZero() {
		rental.StartDate = now
	}
	if rental.ExpectedReturn.IsZero() {
		rental.ExpectedReturn = rental.StartDate.AddDate(0, 0, s.rentalDays)
	}
	if rental.DailyRateCents == 0 {
		rental.DailyRateCents = car.DailyRateCents
	}
	rental.Status = domain.RentalStatusActive
	rental.ActualReturn = time.Time{}
	rental.TotalCostCents = 0

	s.rentals = append(s.rentals, rental)
	car.Status = domain.CarStatusRented
	car.CurrentRenter = rental.CustomerName
	return rental, nil
}

// CompleteRental closes the active rental for a car. A zero
// actualReturn means "unspecified" and the rental's expected return is
// used instead.
func (s *FleetService) CompleteRental(carID int, actualReturn time.Time) (domain.Rental, error) {
	rental := s.findActiveRental(carID)
	if rental == nil {
		return domain.Rental{}, domain.NoActiveRentalError{CarID: carID}
	}
	if actualReturn.IsZero() {
		actualReturn = rental.ExpectedReturn
	}
	rental.Complete(actualReturn)
	if car := s.findCar(carID); car != nil {
		car.Status = domain.CarStatusAvailable
		car.CurrentRenter = ""
	}
	return *rental, nil
}

// AddCustomer appends a new customer to the roster.
func (s *FleetService) AddCustomer(customer domain.Customer) error {
	for _, c := range s.customers {
		if c.ID == customer.ID {
			return domain.DuplicateIDError{Entity: "customer", ID: customer.ID}
		}
	}
	if customer.RegistrationDate.IsZero() {
		customer.RegistrationDate = s.now()
	}
	if !customer.Valid() {
		return domain.ValidationError{Entity: "customer"}
	}
	s.customers = append(s.customers, customer)
	logger.Info("Customer added", "id", customer.ID, "name", customer.Name)
	return nil
}

// GetCarByID returns a copy of the car with the given id.
func (s *FleetService) GetCarByID(id int) (domain.Car, bool) {
	if car := s.findCar(id); car != nil {
		return *car, true
	}
	return domain.Car{}, false
}

// GetCustomerByID returns a copy of the customer with the given id.
func (s *FleetService) GetCustomerByID(id int) (domain.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// SearchByModel matches the model name case-insensitively as a
// substring.
func (s *FleetService) SearchByModel(model string) []domain.Car {
	q := strings.ToLower(model)
	matches := []domain.Car{}
	for _, c := range s.cars {
		if strings.Contains(strings.ToLower(c.Model), q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// SearchByStatus matches the status case-insensitively, exact.
func (s *FleetService) SearchByStatus(status string) []domain.Car {
	matches := []domain.Car{}
	for _, c := range s.cars {
		if strings.EqualFold(string(c.Status), status) {
			matches = append(matches, c)
		}
	}
	return matches
}

// ListAvailable returns the cars currently available for rent.
func (s *FleetService) ListAvailable() []domain.Car {
	return s.carsWithStatus(domain.CarStatusAvailable)
}

// ListRented returns the cars currently out on rental.
func (s *FleetService) ListRented() []domain.Car {
	return s.carsWithStatus(domain.CarStatusRented)
}

func (s *FleetService) carsWithStatus(status domain.CarStatus) []domain.Car {
	matches := []domain.Car{}
	for _, c := range s.cars {
		if c.Status == status {
			matches = append(matches, c)
		}
	}
	return matches
}

// ListNeedingMaintenance returns the cars past the maintenance interval
// or mileage limit.
func (s *FleetService) ListNeedingMaintenance() []domain.Car {
	now := s.now()
	matches := []domain.Car{}
	for _, c := range s.cars {
		if c.NeedsMaintenance(now) {
			matches = append(matches, c)
		}
	}
	return matches
}

// GetOverdueRentals returns active rentals past their expected return.
// Overdue is computed here, never stored on the rental.
func (s *FleetService) GetOverdueRentals() []domain.Rental {
	now := s.now()
	matches := []domain.Rental{}
	for _, r := range s.rentals {
		if r.IsOverdue(now) {
			matches = append(matches, r)
		}
	}
	return matches
}

// GetAllCars returns a copy of the fleet for listing and saving.
func (s *FleetService) GetAllCars() []domain.Car {
	return append([]domain.Car{}, s.cars...)
}

// GetAllRentals returns a copy of the rental log.
func (s *FleetService) GetAllRentals() []domain.Rental {
	return append([]domain.Rental{}, s.rentals...)
}

// GetAllCustomers returns a copy of the customer roster.
func (s *FleetService) GetAllCustomers() []domain.Customer {
	return append([]domain.Customer{}, s.customers...)
}
