package csvstore

import (
	"strconv"
	"time"

	"fleettrack/internal/domain"
)

// carHeader is the canonical write order. Load resolves columns by name
// and accepts any order.
var carHeader = []string{
	"Id", "Make", "Model", "Year", "Type", "Status",
	"CurrentRenter", "LicensePlate", "Mileage", "DailyRate",
}

// LoadCars reads the car file. A missing file yields an empty fleet.
// Rows without a parseable id are reported to the sink and skipped;
// every other field falls back to its default on parse failure.
func LoadCars(path string, sink RowErrorSink) ([]domain.Car, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	cars := make([]domain.Car, 0, len(t.rows))
	for _, r := range t.rows {
		id, err := requireInt("car id", t.field(r, "Id"))
		if err != nil {
			sink.RowError(r.line, err.Error())
			continue
		}
		cars = append(cars, domain.Car{
			ID:              id,
			Make:            t.field(r, "Make"),
			Model:           t.field(r, "Model"),
			Year:            intField(t.field(r, "Year"), 0),
			Type:            t.field(r, "Type"),
			Status:          domain.ParseCarStatus(t.field(r, "Status")),
			CurrentRenter:   t.field(r, "CurrentRenter"),
			LicensePlate:    t.field(r, "LicensePlate"),
			Mileage:         intField(t.field(r, "Mileage"), 0),
			DailyRateCents:  centsField(t.field(r, "DailyRate"), domain.DefaultDailyRateCents),
			LastMaintenance: dateField(t.field(r, "LastMaintenance"), time.Now()),
		})
	}
	return cars, nil
}

// SaveCars rewrites the car file in canonical order.
func SaveCars(path string, cars []domain.Car) error {
	records := make([][]string, 0, len(cars))
	for _, c := range cars {
		records = append(records, []string{
			strconv.Itoa(c.ID),
			c.Make,
			c.Model,
			strconv.Itoa(c.Year),
			c.Type,
			string(c.Status),
			c.CurrentRenter,
			c.LicensePlate,
			strconv.Itoa(c.Mileage),
			domain.FormatCents(c.DailyRateCents),
		})
	}
	return writeRecords(path, carHeader, records)
}
