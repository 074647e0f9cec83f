package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fleettrack/internal/cli"
	"fleettrack/internal/config"
	"fleettrack/internal/csvstore"
	"fleettrack/internal/logger"
	"fleettrack/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env file for overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting fleet rental tracker",
		"cars_file", cfg.Data.CarsFile,
		"customers_file", cfg.Data.CustomersFile,
		"rentals_file", cfg.Data.RentalsFile)

	cars, err := csvstore.LoadCars(cfg.Data.CarsFile, csvstore.LogSink(cfg.Data.CarsFile))
	if err != nil {
		logger.Error("Failed to load cars", "error", err)
		log.Fatalf("Failed to load cars: %v", err)
	}
	rentals, err := csvstore.LoadRentals(cfg.Data.RentalsFile, csvstore.LogSink(cfg.Data.RentalsFile))
	if err != nil {
		logger.Error("Failed to load rentals", "error", err)
		log.Fatalf("Failed to load rentals: %v", err)
	}
	customers, err := csvstore.LoadCustomers(cfg.Data.CustomersFile, csvstore.LogSink(cfg.Data.CustomersFile))
	if err != nil {
		logger.Error("Failed to load customers", "error", err)
		log.Fatalf("Failed to load customers: %v", err)
	}
	logger.Info("Data loaded", "cars", len(cars), "rentals", len(rentals), "customers", len(customers))

	svc := service.NewFleetService(cars, rentals, customers, cfg.Rental.PeriodDays)

	shell := cli.New(svc, cfg, os.Stdin, os.Stdout)
	if err := shell.Run(); err != nil {
		logger.Error("Shell exited with error", "error", err)
		os.Exit(1)
	}
}
