package csvstore

import (
	"strconv"
	"time"

	"fleettrack/internal/domain"
)

var customerHeader = []string{
	"Id", "Name", "LicenseNumber", "Email", "Phone", "RegistrationDate", "IsActive",
}

// LoadCustomers reads the customer file. A missing file yields an empty
// roster.
func LoadCustomers(path string, sink RowErrorSink) ([]domain.Customer, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(t.rows))
	for _, r := range t.rows {
		id, err := requireInt("customer id", t.field(r, "Id"))
		if err != nil {
			sink.RowError(r.line, err.Error())
			continue
		}
		customers = append(customers, domain.Customer{
			ID:               id,
			Name:             t.field(r, "Name"),
			LicenseNumber:    t.field(r, "LicenseNumber"),
			Email:            t.field(r, "Email"),
			Phone:            t.field(r, "Phone"),
			RegistrationDate: dateField(t.field(r, "RegistrationDate"), time.Now()),
			IsActive:         boolField(t.field(r, "IsActive"), true),
		})
	}
	return customers, nil
}

// SaveCustomers rewrites the customer file in canonical order.
func SaveCustomers(path string, customers []domain.Customer) error {
	records := make([][]string, 0, len(customers))
	for _, c := range customers {
		records = append(records, []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.LicenseNumber,
			c.Email,
			c.Phone,
			domain.FormatDate(c.RegistrationDate),
			strconv.FormatBool(c.IsActive),
		})
	}
	return writeRecords(path, customerHeader, records)
}
