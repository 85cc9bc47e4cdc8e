package ports

import "transport-logistics/internal/domain"

// Port: a boundary for loading the planning datasets from external storage.
type DatasetSource interface {
	// Load all vehicles available for assignment.
	LoadFleet() (*domain.Fleet, error)
	// Load all routes available for assignment.
	LoadRoutes() (*domain.Routes, error)
	// Load all shipments awaiting assignment.
	LoadShipments() (*domain.Shipments, error)
}

// Optional extension of DatasetSource that can seed demo dataset files for the
// source to load back.
type SampleSeeder interface {
	WriteSamples() error
}
