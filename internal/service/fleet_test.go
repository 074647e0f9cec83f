package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleettrack/internal/domain"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

func newTestService(cars []domain.Car, rentals []domain.Rental, customers []domain.Customer) *FleetService {
	svc := NewFleetService(cars, rentals, customers, 7)
	svc.now = func() time.Time { return testNow }
	return svc
}

func corolla() domain.Car {
	return domain.Car{
		ID: 1, Make: "Toyota", Model: "Corolla", Year: 2020, Type: "Sedan",
		Status: domain.CarStatusAvailable, DailyRateCents: 3500,
		LastMaintenance: testNow,
	}
}

func TestAddCar(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, svc.AddCar(corolla()))
		car, ok := svc.GetCarByID(1)
		require.True(t, ok)
		assert.Equal(t, "Corolla", car.Model)
	})

	t.Run("Duplicate id", func(t *testing.T) {
		err := svc.AddCar(corolla())
		assert.True(t, domain.IsDuplicateID(err))
	})

	t.Run("Invalid entity", func(t *testing.T) {
		bad := corolla()
		bad.ID = 2
		bad.Make = ""
		err := svc.AddCar(bad)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRentAndReturnCar(t *testing.T) {
	svc := newTestService([]domain.Car{corolla()}, nil, nil)

	rental, err := svc.RentCar(1, "Alice")
	require.NoError(t, err)

	// Both halves of the rent transition happened together.
	car, ok := svc.GetCarByID(1)
	require.True(t, ok)
	assert.Equal(t, domain.CarStatusRented, car.Status)
	assert.Equal(t, "Alice", car.CurrentRenter)

	rentals := svc.GetAllRentals()
	require.Len(t, rentals, 1)
	assert.Equal(t, rental.ID, rentals[0].ID)
	assert.Equal(t, 1, rentals[0].CarID)
	assert.Equal(t, domain.RentalStatusActive, rentals[0].Status)
	assert.Equal(t, int64(3500), rentals[0].DailyRateCents)
	assert.Equal(t, testNow.AddDate(0, 0, 7), rentals[0].ExpectedReturn)

	completed, err := svc.ReturnCar(1)
	require.NoError(t, err)

	car, _ = svc.GetCarByID(1)
	assert.Equal(t, domain.CarStatusAvailable, car.Status)
	assert.Equal(t, "", car.CurrentRenter)
	assert.Equal(t, domain.RentalStatusCompleted, completed.Status)
	// Same-day return bills the one-day floor.
	assert.Equal(t, int64(3500), completed.TotalCostCents)
}

func TestRentCarNotAvailable(t *testing.T) {
	svc := newTestService([]domain.Car{corolla()}, nil, nil)

	_, err := svc.RentCar(1, "Alice")
	require.NoError(t, err)

	// Second rent fails and mutates nothing.
	_, err = svc.RentCar(1, "Mallory")
	assert.True(t, domain.IsNotAvailable(err))

	car, _ := svc.GetCarByID(1)
	assert.Equal(t, "Alice", car.CurrentRenter)
	assert.Len(t, svc.GetAllRentals(), 1)

	t.Run("Unknown car id", func(t *testing.T) {
		_, err := svc.RentCar(99, "Alice")
		assert.True(t, domain.IsNotAvailable(err))
	})
}

func TestReturnCarFailures(t *testing.T) {
	t.Run("Unknown car", func(t *testing.T) {
		svc := newTestService(nil, nil, nil)
		_, err := svc.ReturnCar(1)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Not rented", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		_, err := svc.ReturnCar(1)
		assert.True(t, domain.IsNotRented(err))
	})

	t.Run("Rented car without active rental is surfaced", func(t *testing.T) {
		broken := corolla()
		broken.Status = domain.CarStatusRented
		broken.CurrentRenter = "Ghost"
		svc := newTestService([]domain.Car{broken}, nil, nil)

		_, err := svc.ReturnCar(1)
		assert.True(t, domain.IsNoActiveRental(err))
	})
}

func TestRentalIDAllocation(t *testing.T) {
	t.Run("First rental starts at 1001", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		rental, err := svc.RentCar(1, "Alice")
		require.NoError(t, err)
		assert.Equal(t, 1001, rental.ID)
	})

	t.Run("Subsequent ids are max plus one", func(t *testing.T) {
		existing := []domain.Rental{{
			ID: 2040, CarID: 9, CustomerName: "Old", StartDate: testNow.AddDate(0, -1, 0),
			ExpectedReturn: testNow.AddDate(0, -1, 7), Status: domain.RentalStatusCompleted,
		}}
		svc := newTestService([]domain.Car{corolla()}, existing, nil)
		rental, err := svc.RentCar(1, "Alice")
		require.NoError(t, err)
		assert.Equal(t, 2041, rental.ID)
	})
}

func TestRemoveCarPreservesHistory(t *testing.T) {
	svc := newTestService([]domain.Car{corolla()}, nil, nil)

	_, err := svc.RentCar(1, "Alice")
	require.NoError(t, err)
	_, err = svc.ReturnCar(1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCar(1))

	car, ok := svc.GetCarByID(1)
	require.True(t, ok)
	assert.Equal(t, domain.CarStatusRemoved, car.Status)

	rentals := svc.GetAllRentals()
	require.Len(t, rentals, 1)
	assert.Equal(t, 1, rentals[0].CarID)
	assert.Equal(t, domain.RentalStatusCompleted, rentals[0].Status)

	t.Run("Unknown car", func(t *testing.T) {
		err := svc.RemoveCar(42)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestAddRental(t *testing.T) {
	t.Run("Success transitions the car", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		rental, err := svc.AddRental(domain.Rental{
			CarID:          1,
			CustomerName:   "Carol",
			ExpectedReturn: testNow.AddDate(0, 0, 3),
		})
		require.NoError(t, err)
		assert.Equal(t, 1001, rental.ID)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Equal(t, int64(3500), rental.DailyRateCents)

		car, _ := svc.GetCarByID(1)
		assert.Equal(t, domain.CarStatusRented, car.Status)
		assert.Equal(t, "Carol", car.CurrentRenter)
	})

	t.Run("Duplicate rental id", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()},
			[]domain.Rental{{ID: 1001, CarID: 9, Status: domain.RentalStatusCompleted}}, nil)
		_, err := svc.AddRental(domain.Rental{ID: 1001, CarID: 1, CustomerName: "X"})
		assert.True(t, domain.IsDuplicateID(err))
	})

	t.Run("Car not found", func(t *testing.T) {
		svc := newTestService(nil, nil, nil)
		_, err := svc.AddRental(domain.Rental{CarID: 5, CustomerName: "X"})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Car not available", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		_, err := svc.RentCar(1, "Alice")
		require.NoError(t, err)
		_, err = svc.AddRental(domain.Rental{CarID: 1, CustomerName: "X"})
		assert.True(t, domain.IsNotAvailable(err))
	})
}

func TestCompleteRental(t *testing.T) {
	t.Run("Explicit return date", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		_, err := svc.RentCar(1, "Alice")
		require.NoError(t, err)

		actual := testNow.AddDate(0, 0, 2)
		rental, err := svc.CompleteRental(1, actual)
		require.NoError(t, err)
		assert.Equal(t, actual, rental.ActualReturn)
		assert.Equal(t, int64(2*3500), rental.TotalCostCents)

		car, _ := svc.GetCarByID(1)
		assert.Equal(t, domain.CarStatusAvailable, car.Status)
		assert.Equal(t, "", car.CurrentRenter)
	})

	t.Run("Zero time falls back to expected return", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		_, err := svc.RentCar(1, "Alice")
		require.NoError(t, err)

		rental, err := svc.CompleteRental(1, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, rental.ExpectedReturn, rental.ActualReturn)
		assert.Equal(t, int64(7*3500), rental.TotalCostCents)
	})

	t.Run("No active rental", func(t *testing.T) {
		svc := newTestService([]domain.Car{corolla()}, nil, nil)
		_, err := svc.CompleteRental(1, time.Time{})
		assert.True(t, domain.IsNoActiveRental(err))
	})
}

func TestAddCustomer(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	alice := domain.Customer{
		ID: 1, Name: "Alice", LicenseNumber: "D111",
		Email: "alice@example.com", Phone: "555-0100", IsActive: true,
	}

	require.NoError(t, svc.AddCustomer(alice))

	got, ok := svc.GetCustomerByID(1)
	require.True(t, ok)
	assert.Equal(t, testNow, got.RegistrationDate)

	t.Run("Duplicate id", func(t *testing.T) {
		err := svc.AddCustomer(alice)
		assert.True(t, domain.IsDuplicateID(err))
	})

	t.Run("Invalid entity", func(t *testing.T) {
		bad := alice
		bad.ID = 2
		bad.Phone = ""
		err := svc.AddCustomer(bad)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestUpdateCar(t *testing.T) {
	svc := newTestService([]domain.Car{corolla()}, nil, nil)

	t.Run("Success", func(t *testing.T) {
		car, _ := svc.GetCarByID(1)
		car.Mileage = 15000
		require.NoError(t, svc.UpdateCar(car))
		got, _ := svc.GetCarByID(1)
		assert.Equal(t, 15000, got.Mileage)
	})

	t.Run("Not found", func(t *testing.T) {
		car := corolla()
		car.ID = 99
		err := svc.UpdateCar(car)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Rented without renter rejected", func(t *testing.T) {
		car, _ := svc.GetCarByID(1)
		car.Status = domain.CarStatusRented
		car.CurrentRenter = ""
		err := svc.UpdateCar(car)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Renter on non-rented car rejected", func(t *testing.T) {
		car, _ := svc.GetCarByID(1)
		car.CurrentRenter = "Stray"
		err := svc.UpdateCar(car)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestSearchQueries(t *testing.T) {
	cars := []domain.Car{corolla()}
	cars = append(cars, domain.Car{
		ID: 2, Make: "Toyota", Model: "Corolla Cross", Year: 2022, Type: "SUV",
		Status: domain.CarStatusRented, CurrentRenter: "Bob", DailyRateCents: 5000,
		LastMaintenance: testNow,
	}, domain.Car{
		ID: 3, Make: "Ford", Model: "Focus", Year: 2019, Type: "Hatchback",
		Status: domain.CarStatusRemoved, DailyRateCents: 3000,
		LastMaintenance: testNow,
	})
	svc := newTestService(cars, nil, nil)

	t.Run("SearchByModel is case-insensitive substring", func(t *testing.T) {
		assert.Len(t, svc.SearchByModel("corolla"), 2)
		assert.Len(t, svc.SearchByModel("CROSS"), 1)
		assert.Empty(t, svc.SearchByModel("civic"))
	})

	t.Run("SearchByStatus is case-insensitive exact", func(t *testing.T) {
		assert.Len(t, svc.SearchByStatus("rented"), 1)
		assert.Len(t, svc.SearchByStatus("REMOVED"), 1)
		assert.Empty(t, svc.SearchByStatus("rent"))
	})

	t.Run("Status lists", func(t *testing.T) {
		assert.Len(t, svc.ListAvailable(), 1)
		assert.Len(t, svc.ListRented(), 1)
	})
}

func TestListNeedingMaintenance(t *testing.T) {
	fresh := corolla()
	overdue := domain.Car{
		ID: 2, Make: "Ford", Model: "Focus", Year: 2019, Type: "Hatchback",
		Status: domain.CarStatusAvailable, DailyRateCents: 3000,
		LastMaintenance: testNow.AddDate(0, 0, -120),
	}
	worn := domain.Car{
		ID: 3, Make: "Kia", Model: "Rio", Year: 2021, Type: "Sedan",
		Status: domain.CarStatusAvailable, DailyRateCents: 2500,
		LastMaintenance: testNow, Mileage: 20000,
	}
	svc := newTestService([]domain.Car{fresh, overdue, worn}, nil, nil)

	due := svc.ListNeedingMaintenance()
	require.Len(t, due, 2)
	assert.Equal(t, 2, due[0].ID)
	assert.Equal(t, 3, due[1].ID)
}

func TestGetOverdueRentals(t *testing.T) {
	rentals := []domain.Rental{
		{ID: 1, CarID: 1, Status: domain.RentalStatusActive,
			StartDate: testNow.AddDate(0, 0, -10), ExpectedReturn: testNow.AddDate(0, 0, -3)},
		{ID: 2, CarID: 2, Status: domain.RentalStatusActive,
			StartDate: testNow, ExpectedReturn: testNow.AddDate(0, 0, 7)},
		{ID: 3, CarID: 3, Status: domain.RentalStatusCompleted,
			StartDate: testNow.AddDate(0, 0, -20), ExpectedReturn: testNow.AddDate(0, 0, -13)},
	}
	svc := newTestService(nil, rentals, nil)

	overdue := svc.GetOverdueRentals()
	require.Len(t, overdue, 1)
	assert.Equal(t, 1, overdue[0].ID)

	// Overdue is derived; the stored status is untouched.
	assert.Equal(t, domain.RentalStatusActive, svc.GetAllRentals()[0].Status)
}

func TestRevenueQueries(t *testing.T) {
	rentals := []domain.Rental{
		{ID: 1, CarID: 1, Status: domain.RentalStatusCompleted, TotalCostCents: 10000,
			StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)},
		{ID: 2, CarID: 2, Status: domain.RentalStatusCompleted, TotalCostCents: 7000,
			StartDate: time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)},
		{ID: 3, CarID: 3, Status: domain.RentalStatusCompleted, TotalCostCents: 5000,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
		{ID: 4, CarID: 4, Status: domain.RentalStatusActive,
			StartDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)},
	}
	svc := newTestService(nil, rentals, nil)

	assert.Equal(t, int64(22000), svc.GetTotalRevenueCents())

	byMonth := svc.GetRevenueByMonth()
	assert.Equal(t, map[string]int64{
		"2026-02": 17000,
		"2026-03": 5000,
	}, byMonth)
}

func TestStats(t *testing.T) {
	cars := []domain.Car{corolla()}
	cars = append(cars, domain.Car{
		ID: 2, Make: "Ford", Model: "Focus", Year: 2019, Type: "Hatchback",
		Status: domain.CarStatusRemoved, DailyRateCents: 3000, LastMaintenance: testNow,
	})
	svc := newTestService(cars, nil, nil)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.TotalCars)
	assert.Equal(t, 1, stats.AvailableCars)
	assert.Equal(t, 0, stats.RentedCars)
	// Removed cars still count toward their type.
	assert.Equal(t, map[string]int{"Sedan": 1, "Hatchback": 1}, stats.CarsByType)
}

// The end-to-end scenario from the product brief: rent the Corolla to
// Bob, return it the same day, bill exactly one day.
func TestRentReturnScenario(t *testing.T) {
	svc := newTestService([]domain.Car{corolla()}, nil, nil)

	rental, err := svc.RentCar(1, "Bob")
	require.NoError(t, err)

	car, _ := svc.GetCarByID(1)
	assert.Equal(t, domain.CarStatusRented, car.Status)
	assert.Equal(t, "Bob", car.CurrentRenter)
	assert.Equal(t, int64(3500), rental.DailyRateCents)
	assert.Equal(t, testNow.AddDate(0, 0, 7), rental.ExpectedReturn)

	completed, err := svc.ReturnCar(1)
	require.NoError(t, err)

	car, _ = svc.GetCarByID(1)
	assert.Equal(t, domain.CarStatusAvailable, car.Status)
	assert.Equal(t, domain.RentalStatusCompleted, completed.Status)
	assert.Equal(t, int64(3500), completed.TotalCostCents)
}
