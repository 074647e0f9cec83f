package csvstore

import (
	"strconv"
	"time"

	"fleettrack/internal/domain"
)

var rentalHeader = []string{
	"Id", "CarId", "CustomerName", "StartDate", "ExpectedReturn",
	"ActualReturn", "DailyRate", "TotalCost", "Status",
}

// LoadRentals reads the rental file. Id, CarId and the two rental dates
// are required per row; rows missing them are reported and skipped.
// ActualReturn and TotalCost are optional (empty for open rentals).
func LoadRentals(path string, sink RowErrorSink) ([]domain.Rental, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	rentals := make([]domain.Rental, 0, len(t.rows))
	for _, r := range t.rows {
		id, err := requireInt("rental id", t.field(r, "Id"))
		if err != nil {
			sink.RowError(r.line, err.Error())
			continue
		}
		carID, err := requireInt("car id", t.field(r, "CarId"))
		if err != nil {
			sink.RowError(r.line, err.Error())
			continue
		}
		start, err := domain.ParseDate(t.field(r, "StartDate"))
		if err != nil {
			sink.RowError(r.line, "start date: "+err.Error())
			continue
		}
		expected, err := domain.ParseDate(t.field(r, "ExpectedReturn"))
		if err != nil {
			sink.RowError(r.line, "expected return: "+err.Error())
			continue
		}
		rentals = append(rentals, domain.Rental{
			ID:             id,
			CarID:          carID,
			CustomerID:     intField(t.field(r, "CustomerId"), 0),
			CustomerName:   t.field(r, "CustomerName"),
			StartDate:      start,
			ExpectedReturn: expected,
			ActualReturn:   dateField(t.field(r, "ActualReturn"), time.Time{}),
			DailyRateCents: centsField(t.field(r, "DailyRate"), domain.DefaultDailyRateCents),
			TotalCostCents: centsField(t.field(r, "TotalCost"), 0),
			Status:         domain.ParseRentalStatus(t.field(r, "Status")),
		})
	}
	return rentals, nil
}

// SaveRentals rewrites the rental file in canonical order. ActualReturn
// and TotalCost serialize as empty tokens while the rental is open.
func SaveRentals(path string, rentals []domain.Rental) error {
	records := make([][]string, 0, len(rentals))
	for _, r := range rentals {
		totalCost := ""
		if r.Status == domain.RentalStatusCompleted {
			totalCost = domain.FormatCents(r.TotalCostCents)
		}
		records = append(records, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.CarID),
			r.CustomerName,
			domain.FormatDate(r.StartDate),
			domain.FormatDate(r.ExpectedReturn),
			domain.FormatDate(r.ActualReturn),
			domain.FormatCents(r.DailyRateCents),
			totalCost,
			string(r.Status),
		})
	}
	return writeRecords(path, rentalHeader, records)
}
