// Package report renders fleet summaries as PDF documents.
package report

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"fleettrack/internal/domain"
	"fleettrack/internal/service"
)

// WriteFleetReport writes a one-page fleet and revenue summary to path.
func WriteFleetReport(path string, stats service.Stats, totalRevenueCents int64, revenueByMonth map[string]int64) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fleet Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLEET REPORT")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fleet")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Total cars      : %d", stats.TotalCars),
		fmt.Sprintf("Available       : %d", stats.AvailableCars),
		fmt.Sprintf("Rented          : %d", stats.RentedCars),
		fmt.Sprintf("Overdue rentals : %d", stats.OverdueRentals),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Cars by type")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, typ := range sortedKeys(stats.CarsByType) {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", typ, stats.CarsByType[typ]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Revenue")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Total: $"+domain.FormatCents(totalRevenueCents))
	pdf.Ln(8)
	for _, month := range sortedKeys(revenueByMonth) {
		pdf.Cell(0, 6, fmt.Sprintf("%s: $%s", month, domain.FormatCents(revenueByMonth[month])))
		pdf.Ln(6)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pdf.Output(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
