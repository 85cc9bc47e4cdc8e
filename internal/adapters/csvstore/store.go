package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"transport-logistics/internal/domain"
)

// Store loads planning datasets from three CSV files.
//
// File formats (no header row):
//
//	fleet.csv:     vehicleId,type,vehicleName,driverName,capacity,mileage,rate
//	routes.csv:    routeId,source,destination,distance,toll
//	shipments.csv: shipmentId,weight,distance,toll,costPerKm
//
// A missing file yields an empty collection rather than an error so a fresh
// working directory starts with a usable, empty session. Malformed rows are
// skipped with a log line.
type Store struct {
	FleetPath     string
	RoutesPath    string
	ShipmentsPath string
}

func NewStore(fleetPath, routesPath, shipmentsPath string) *Store {
	return &Store{
		FleetPath:     fleetPath,
		RoutesPath:    routesPath,
		ShipmentsPath: shipmentsPath,
	}
}

func (s *Store) LoadFleet() (*domain.Fleet, error) {
	fleet := domain.NewFleet()
	err := readRows(s.FleetPath, 7, func(row []string) error {
		capacity, err := parseFloat(row[4])
		if err != nil {
			return fmt.Errorf("capacity: %w", err)
		}
		mileage, err := parseFloat(row[5])
		if err != nil {
			return fmt.Errorf("mileage: %w", err)
		}
		rate, err := parseFloat(row[6])
		if err != nil {
			return fmt.Errorf("rate: %w", err)
		}

		kind := domain.ParseVehicleKind(row[1])
		vehicle, err := domain.NewVehicle(strings.TrimSpace(row[0]), kind, strings.TrimSpace(row[2]), strings.TrimSpace(row[3]), capacity, mileage, rate)
		if err != nil {
			return err
		}

		fleet.Put(vehicle.ID, vehicle)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load fleet: %w", err)
	}
	return fleet, nil
}

func (s *Store) LoadRoutes() (*domain.Routes, error) {
	routes := domain.NewRoutes()
	err := readRows(s.RoutesPath, 5, func(row []string) error {
		distance, err := parseFloat(row[3])
		if err != nil {
			return fmt.Errorf("distance: %w", err)
		}
		toll, err := parseFloat(row[4])
		if err != nil {
			return fmt.Errorf("toll: %w", err)
		}

		route, err := domain.NewRoute(strings.TrimSpace(row[0]), strings.TrimSpace(row[1]), strings.TrimSpace(row[2]), distance, toll)
		if err != nil {
			return err
		}

		routes.Put(route.ID, route)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}
	return routes, nil
}

func (s *Store) LoadShipments() (*domain.Shipments, error) {
	shipments := domain.NewShipments()
	err := readRows(s.ShipmentsPath, 5, func(row []string) error {
		weight, err := parseFloat(row[1])
		if err != nil {
			return fmt.Errorf("weight: %w", err)
		}
		distance, err := parseFloat(row[2])
		if err != nil {
			return fmt.Errorf("distance: %w", err)
		}
		toll, err := parseFloat(row[3])
		if err != nil {
			return fmt.Errorf("toll: %w", err)
		}
		costPerKm, err := parseFloat(row[4])
		if err != nil {
			return fmt.Errorf("costPerKm: %w", err)
		}

		shipment, err := domain.NewShipment(strings.TrimSpace(row[0]), weight, distance, toll, costPerKm)
		if err != nil {
			return err
		}

		shipments.Put(shipment.ID, shipment)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load shipments: %w", err)
	}
	return shipments, nil
}

// readRows streams CSV records from path, handing each row of at least
// minFields columns to parse. Rows that are short or fail to parse are
// skipped, keeping one bad line from poisoning a whole dataset.
func readRows(path string, minFields int, parse func(row []string) error) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	line := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		line++

		if len(row) < minFields {
			log.Printf("csvstore: skip row file=%s line=%d fields=%d want>=%d", path, line, len(row), minFields)
			continue
		}
		if err := parse(row); err != nil {
			log.Printf("csvstore: skip row file=%s line=%d err=%v", path, line, err)
		}
	}
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
