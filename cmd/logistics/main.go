package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"transport-logistics/internal/adapters/csvstore"
	"transport-logistics/internal/adapters/report"
	"transport-logistics/internal/cli"
	"transport-logistics/internal/config"
	"transport-logistics/internal/services"
)

// main is the application composition root.
// It wires the CSV dataset store and plan writer behind ports and starts the
// interactive session.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfgPath := config.Get("CONFIG_PATH", "logistics.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	store := csvstore.NewStore(cfg.FleetPath, cfg.RoutesPath, cfg.ShipmentsPath)

	// Datasets present in the working directory are loaded on startup; missing
	// files start the session with empty collections.
	fleet, err := store.LoadFleet()
	if err != nil {
		log.Fatal(err)
	}
	routes, err := store.LoadRoutes()
	if err != nil {
		log.Fatal(err)
	}
	shipments, err := store.LoadShipments()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("datasets loaded vehicles=%d routes=%d shipments=%d", fleet.Len(), routes.Len(), shipments.Len())

	app := cli.NewApp(cli.Options{
		Fleet:     fleet,
		Routes:    routes,
		Shipments: shipments,
		Defaults: services.StrategyDefaults{
			AllowancePerHour: cfg.Strategy.AllowancePerHour,
			AvgSpeedKmh:      cfg.Strategy.AvgSpeedKmh,
		},
		Plans:    report.NewFileWriter(cfg.PlanPath),
		Datasets: store,
		Seeder:   store,
	}, os.Stdin, os.Stdout)

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
