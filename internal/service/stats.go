package service

import "fleettrack/internal/domain"

// Stats is a point-in-time summary of the fleet, recomputed on demand.
type Stats struct {
	TotalCars      int
	AvailableCars  int
	RentedCars     int
	OverdueRentals int
	CarsByType     map[string]int
}

// Stats assembles the statistics bundle backing the stats command.
func (s *FleetService) Stats() Stats {
	return Stats{
		TotalCars:      len(s.cars),
		AvailableCars:  len(s.ListAvailable()),
		RentedCars:     len(s.ListRented()),
		OverdueRentals: len(s.GetOverdueRentals()),
		CarsByType:     s.GetCarsByType(),
	}
}

// GetCarsByType counts every car, including removed ones, by its type
// string.
func (s *FleetService) GetCarsByType() map[string]int {
	byType := map[string]int{}
	for _, c := range s.cars {
		byType[c.Type]++
	}
	return byType
}

// GetTotalRevenueCents sums the cost of all completed rentals.
func (s *FleetService) GetTotalRevenueCents() int64 {
	var total int64
	for _, r := range s.rentals {
		if r.Status == domain.RentalStatusCompleted {
			total += r.TotalCostCents
		}
	}
	return total
}

// GetRevenueByMonth groups completed rentals by the calendar month of
// their start date and sums cost per group.
func (s *FleetService) GetRevenueByMonth() map[string]int64 {
	byMonth := map[string]int64{}
	for _, r := range s.rentals {
		if r.Status == domain.RentalStatusCompleted {
			byMonth[r.StartDate.Format("2006-01")] += r.TotalCostCents
		}
	}
	return byMonth
}
