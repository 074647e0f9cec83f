// Package cli implements the interactive command shell. It is a thin
// wrapper: all state changes go through the fleet service, all
// persistence through the csvstore codec.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"fleettrack/internal/config"
	"fleettrack/internal/csvstore"
	"fleettrack/internal/domain"
	"fleettrack/internal/report"
	"fleettrack/internal/service"
)

type Shell struct {
	svc     *service.FleetService
	cfg     *config.Config
	scanner *bufio.Scanner
	out     io.Writer
}

func New(svc *service.FleetService, cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		svc:     svc,
		cfg:     cfg,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run executes the read-eval loop until exit/quit or end of input.
// Command failures are reported and the loop continues.
func (sh *Shell) Run() error {
	sh.printf("=== Fleet Rental Tracker ===\n")
	sh.printHelp()

	for {
		sh.printf("\nCommand> ")
		line, ok := sh.readLine()
		if !ok {
			return sh.saveAll()
		}
		if line == "" {
			continue
		}

		cmd, arg := splitCommand(line)
		done, err := sh.execute(cmd, arg)
		if err != nil {
			sh.printf("Error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func (sh *Shell) execute(cmd, arg string) (done bool, err error) {
	switch cmd {
	case "help":
		sh.printHelp()
	case "listall":
		sh.listCars(sh.svc.GetAllCars(), "All cars:")
	case "listavail", "listavailable":
		sh.listCars(sh.svc.ListAvailable(), "Available cars:")
	case "listrented":
		sh.listCars(sh.svc.ListRented(), "Currently rented cars:")
	case "listrentals":
		sh.listRentals(sh.svc.GetAllRentals(), "All rentals:")
	case "listoverdue":
		sh.listRentals(sh.svc.GetOverdueRentals(), "Overdue rentals:")
	case "listmaintenance":
		sh.listCars(sh.svc.ListNeedingMaintenance(), "Cars needing maintenance:")
	case "listcustomers":
		sh.listCustomers(sh.svc.GetAllCustomers())
	case "add":
		err = sh.addCar()
	case "addcustomer":
		err = sh.addCustomer()
	case "addrental":
		err = sh.addRental(arg)
	case "edit":
		err = sh.editCar(arg)
	case "remove":
		err = sh.removeCar(arg)
	case "rent":
		err = sh.rentCar(arg)
	case "return":
		err = sh.returnCar(arg)
	case "completerental":
		err = sh.completeRental(arg)
	case "search":
		err = sh.search(arg)
	case "searchstatus":
		sh.listCars(sh.svc.SearchByStatus(arg), fmt.Sprintf("Cars with status %q:", arg))
	case "stats":
		sh.showStats()
	case "revenue":
		sh.showRevenue()
	case "report":
		err = sh.writeReport()
	case "save":
		if err = sh.saveAll(); err == nil {
			sh.printf("Data saved to CSV files.\n")
		}
	case "exit", "quit":
		if err = sh.saveAll(); err != nil {
			return false, err
		}
		sh.printf("Data saved and exiting. Goodbye!\n")
		return true, nil
	default:
		sh.printf("Unknown command: %q. Type 'help' to see available commands.\n", cmd)
	}
	return false, err
}

func (sh *Shell) printHelp() {
	sh.printf(`
Available commands:
  help                   - show this help
  listall                - list all cars
  listavailable          - list only available cars
  listrented             - list currently rented cars
  listrentals            - list all rentals
  listoverdue            - list overdue rentals
  listmaintenance        - list cars needing maintenance
  listcustomers          - list all customers
  add                    - add a new car
  addcustomer            - add a new customer
  addrental <CarId> <Name> <Return yyyy-MM-dd> - add a rental
  edit <CarId>           - edit an existing car
  remove <CarId>         - flag car as removed
  rent <CarId> <Name>    - rent a car to a customer
  return <CarId>         - return a rented car
  completerental <CarId> [yyyy-MM-dd] - complete a rental
  search id <CarId>      - find car by ID
  search model <text>    - find cars by model substring
  search status <status> - find cars by status
  stats                  - show system statistics
  revenue                - show revenue information
  report                 - export a PDF fleet report
  save                   - save current data to CSV
  exit | quit            - save and quit
`)
}

func (sh *Shell) listCars(cars []domain.Car, header string) {
	sh.printf("\n%s\n", header)
	if len(cars) == 0 {
		sh.printf("No cars found.\n")
		return
	}
	for _, c := range cars {
		sh.printf("%s\n", c.DisplayInfo())
	}
}

func (sh *Shell) listRentals(rentals []domain.Rental, header string) {
	sh.printf("\n%s\n", header)
	if len(rentals) == 0 {
		sh.printf("No rentals found.\n")
		return
	}
	for _, r := range rentals {
		sh.printf("%s\n", r.DisplayInfo())
	}
}

func (sh *Shell) listCustomers(customers []domain.Customer) {
	sh.printf("\nAll customers:\n")
	if len(customers) == 0 {
		sh.printf("No customers found.\n")
		return
	}
	for _, c := range customers {
		sh.printf("%s\n", c.DisplayInfo())
	}
}

func (sh *Shell) addCar() error {
	id, err := sh.promptInt("New Id: ")
	if err != nil {
		return err
	}
	carMake, err := sh.promptRequired("Make: ")
	if err != nil {
		return err
	}
	model, err := sh.promptRequired("Model: ")
	if err != nil {
		return err
	}
	year, err := sh.promptInt("Year: ")
	if err != nil {
		return err
	}
	typ, err := sh.promptRequired("Type: ")
	if err != nil {
		return err
	}
	plate := sh.prompt("License Plate: ")
	rate := sh.cfg.Rental.DefaultDailyRateCents
	if s := sh.prompt("Daily Rate: "); s != "" {
		if cents, err := domain.ParseCents(s); err == nil {
			rate = cents
		}
	}

	car := domain.Car{
		ID:              id,
		Make:            carMake,
		Model:           model,
		Year:            year,
		Type:            typ,
		LicensePlate:    plate,
		DailyRateCents:  rate,
		Status:          domain.CarStatusAvailable,
		LastMaintenance: time.Now(),
	}
	if err := sh.svc.AddCar(car); err != nil {
		return err
	}
	sh.printf("Added car %d - %s %s (%d).\n", id, carMake, model, year)
	return nil
}

func (sh *Shell) addCustomer() error {
	id, err := sh.promptInt("Customer ID: ")
	if err != nil {
		return err
	}
	name, err := sh.promptRequired("Name: ")
	if err != nil {
		return err
	}
	license, err := sh.promptRequired("License Number: ")
	if err != nil {
		return err
	}
	email := sh.prompt("Email: ")
	phone := sh.prompt("Phone: ")

	customer := domain.Customer{
		ID:            id,
		Name:          name,
		LicenseNumber: license,
		Email:         email,
		Phone:         phone,
		IsActive:      true,
	}
	if err := sh.svc.AddCustomer(customer); err != nil {
		return err
	}
	sh.printf("Added customer %d - %s.\n", id, name)
	return nil
}

func (sh *Shell) addRental(arg string) error {
	parts := strings.Fields(arg)
	if len(parts) != 3 {
		return fmt.Errorf("usage: addrental <CarId> <CustomerName> <ExpectedReturn yyyy-MM-dd>")
	}
	carID, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("usage: addrental <CarId> <CustomerName> <ExpectedReturn yyyy-MM-dd>")
	}
	expected, err := domain.ParseDate(parts[2])
	if err != nil {
		return fmt.Errorf("invalid return date %q, expected yyyy-MM-dd", parts[2])
	}

	rental, err := sh.svc.AddRental(domain.Rental{
		CarID:          carID,
		CustomerName:   parts[1],
		ExpectedReturn: expected,
	})
	if err != nil {
		return err
	}
	sh.printf("Added rental %d: Car %d to %s until %s.\n",
		rental.ID, carID, parts[1], domain.FormatDate(expected))
	return nil
}

func (sh *Shell) editCar(arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("usage: edit <CarId>")
	}
	car, ok := sh.svc.GetCarByID(id)
	if !ok {
		return domain.NotFoundError{Entity: "car", ID: id}
	}

	sh.printf("Editing Car %d. Press Enter to keep current value.\n", id)
	if v := sh.prompt(fmt.Sprintf("Make (%s): ", car.Make)); v != "" {
		car.Make = v
	}
	if v := sh.prompt(fmt.Sprintf("Model (%s): ", car.Model)); v != "" {
		car.Model = v
	}
	if v := sh.prompt(fmt.Sprintf("Year (%d): ", car.Year)); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			car.Year = y
		}
	}
	if v := sh.prompt(fmt.Sprintf("Type (%s): ", car.Type)); v != "" {
		car.Type = v
	}
	if v := sh.prompt(fmt.Sprintf("License Plate (%s): ", car.LicensePlate)); v != "" {
		car.LicensePlate = v
	}
	if v := sh.prompt(fmt.Sprintf("Daily Rate (%s): ", domain.FormatCents(car.DailyRateCents))); v != "" {
		if cents, err := domain.ParseCents(v); err == nil {
			car.DailyRateCents = cents
		}
	}
	if v := sh.prompt(fmt.Sprintf("Mileage (%d): ", car.Mileage)); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			car.Mileage = m
		}
	}

	if err := sh.svc.UpdateCar(car); err != nil {
		return err
	}
	sh.printf("Car updated successfully.\n")
	return nil
}

func (sh *Shell) removeCar(arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("usage: remove <CarId>")
	}
	if err := sh.svc.RemoveCar(id); err != nil {
		return err
	}
	sh.printf("Car %d marked as removed.\n", id)
	return nil
}

func (sh *Shell) rentCar(arg string) error {
	parts := strings.SplitN(arg, " ", 2)
	if len(parts) != 2 {
		return fmt.Errorf("usage: rent <CarId> <RenterName>")
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("usage: rent <CarId> <RenterName>")
	}
	rental, err := sh.svc.RentCar(id, strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}
	sh.printf("Car %d rented to %s until %s (rental %d).\n",
		id, rental.CustomerName, domain.FormatDate(rental.ExpectedReturn), rental.ID)
	return nil
}

func (sh *Shell) returnCar(arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("usage: return <CarId>")
	}
	rental, err := sh.svc.ReturnCar(id)
	if err != nil {
		return err
	}
	sh.printf("Car %d returned. Total cost: $%s.\n", id, domain.FormatCents(rental.TotalCostCents))
	return nil
}

func (sh *Shell) completeRental(arg string) error {
	parts := strings.Fields(arg)
	if len(parts) < 1 {
		return fmt.Errorf("usage: completerental <CarId> [yyyy-MM-dd]")
	}
	carID, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("usage: completerental <CarId> [yyyy-MM-dd]")
	}
	var actualReturn time.Time
	if len(parts) > 1 {
		actualReturn, err = domain.ParseDate(parts[1])
		if err != nil {
			return fmt.Errorf("invalid return date %q, expected yyyy-MM-dd", parts[1])
		}
	}
	rental, err := sh.svc.CompleteRental(carID, actualReturn)
	if err != nil {
		return err
	}
	sh.printf("Completed rental %d for car %d. Total cost: $%s.\n",
		rental.ID, carID, domain.FormatCents(rental.TotalCostCents))
	return nil
}

func (sh *Shell) search(arg string) error {
	parts := strings.SplitN(arg, " ", 2)
	if len(parts) != 2 {
		return fmt.Errorf("usage: search id <CarId> | search model <text> | search status <status>")
	}
	switch strings.ToLower(parts[0]) {
	case "id":
		id, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("usage: search id <CarId>")
		}
		car, ok := sh.svc.GetCarByID(id)
		if !ok {
			sh.printf("No car with Id %d\n", id)
			return nil
		}
		sh.printf("%s\n", car.DisplayInfo())
	case "model":
		sh.listCars(sh.svc.SearchByModel(parts[1]), fmt.Sprintf("Cars matching model %q:", parts[1]))
	case "status":
		sh.listCars(sh.svc.SearchByStatus(parts[1]), fmt.Sprintf("Cars with status %q:", parts[1]))
	default:
		return fmt.Errorf("usage: search id <CarId> | search model <text> | search status <status>")
	}
	return nil
}

func (sh *Shell) showStats() {
	stats := sh.svc.Stats()
	sh.printf("\n=== System Statistics ===\n")
	sh.printf("Total Cars: %d\n", stats.TotalCars)
	sh.printf("Available Cars: %d\n", stats.AvailableCars)
	sh.printf("Rented Cars: %d\n", stats.RentedCars)
	sh.printf("Overdue Rentals: %d\n", stats.OverdueRentals)
	sh.printf("\nCars by Type:\n")
	for typ, count := range stats.CarsByType {
		sh.printf("  %s: %d\n", typ, count)
	}
}

func (sh *Shell) showRevenue() {
	sh.printf("\n=== Revenue Information ===\n")
	sh.printf("Total Revenue: $%s\n", domain.FormatCents(sh.svc.GetTotalRevenueCents()))
	sh.printf("\nRevenue by Month:\n")
	for month, cents := range sh.svc.GetRevenueByMonth() {
		sh.printf("  %s: $%s\n", month, domain.FormatCents(cents))
	}
}

func (sh *Shell) writeReport() error {
	path := sh.cfg.Report.OutputFile
	err := report.WriteFleetReport(path, sh.svc.Stats(),
		sh.svc.GetTotalRevenueCents(), sh.svc.GetRevenueByMonth())
	if err != nil {
		return err
	}
	sh.printf("Fleet report written to %s.\n", path)
	return nil
}

func (sh *Shell) saveAll() error {
	if err := csvstore.SaveCars(sh.cfg.Data.CarsFile, sh.svc.GetAllCars()); err != nil {
		return fmt.Errorf("saving cars: %w", err)
	}
	if err := csvstore.SaveRentals(sh.cfg.Data.RentalsFile, sh.svc.GetAllRentals()); err != nil {
		return fmt.Errorf("saving rentals: %w", err)
	}
	if err := csvstore.SaveCustomers(sh.cfg.Data.CustomersFile, sh.svc.GetAllCustomers()); err != nil {
		return fmt.Errorf("saving customers: %w", err)
	}
	return nil
}

func (sh *Shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) readLine() (string, bool) {
	if !sh.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.scanner.Text()), true
}

func (sh *Shell) prompt(label string) string {
	sh.printf("%s", label)
	line, _ := sh.readLine()
	return line
}

func (sh *Shell) promptRequired(label string) (string, error) {
	v := sh.prompt(label)
	if v == "" {
		return "", fmt.Errorf("%s cannot be empty", strings.TrimSuffix(strings.TrimSpace(label), ":"))
	}
	return v, nil
}

func (sh *Shell) promptInt(label string) (int, error) {
	v := sh.prompt(label)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return n, nil
}
