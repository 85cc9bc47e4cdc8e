package domain

import (
	"fmt"
	"strings"
)

// Represents a single load of goods to be assigned to a vehicle and route.
// DistanceKm and CostPerKmOverride support direct point-to-point quoting and
// are not consulted by the assignment planner, which prices against routes.
type Shipment struct {
	ID                string
	WeightKg          float64
	DistanceKm        float64
	Toll              float64
	CostPerKmOverride float64
}

func NewShipment(id string, weightKg, distanceKm, toll, costPerKmOverride float64) (*Shipment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("new shipment: id must be non-empty")
	}
	if weightKg < 0 {
		return nil, fmt.Errorf("new shipment %q: weight must be non-negative, got %.1f", id, weightKg)
	}
	if toll < 0 {
		return nil, fmt.Errorf("new shipment %q: toll must be non-negative, got %.2f", id, toll)
	}

	return &Shipment{
		ID:                id,
		WeightKg:          weightKg,
		DistanceKm:        distanceKm,
		Toll:              toll,
		CostPerKmOverride: costPerKmOverride,
	}, nil
}

// SimpleCost quotes the shipment directly from its own distance and per-km
// override, bypassing any vehicle or route pricing.
func (s *Shipment) SimpleCost() float64 {
	return s.DistanceKm * s.CostPerKmOverride
}

// EstimateTimeHours returns travel time for the shipment's direct distance at
// the given average speed.
func (s *Shipment) EstimateTimeHours(avgSpeedKmh float64) float64 {
	return s.DistanceKm / avgSpeedKmh
}
