package domain

import (
	"fmt"
	"strings"
)

// VehicleKind classifies fleet vehicles with different fuel-efficiency profiles.
type VehicleKind string

const (
	KindTruck VehicleKind = "truck"
	KindVan   VehicleKind = "van"
)

// efficiencyFactors scales a vehicle's rated mileage per kind before any fuel
// computation. Trucks burn more per rated km, vans slightly less.
var efficiencyFactors = map[VehicleKind]float64{
	KindTruck: 0.9,
	KindVan:   1.05,
}

// ParseVehicleKind maps free-form user input to a VehicleKind.
// Anything that is not "truck" is treated as a van.
func ParseVehicleKind(s string) VehicleKind {
	if strings.EqualFold(strings.TrimSpace(s), string(KindTruck)) {
		return KindTruck
	}
	return KindVan
}

// Represents a single fleet vehicle available for shipment assignment.
// A Vehicle is immutable after construction; the fleet collection owns it
// and keys it by ID.
type Vehicle struct {
	ID            string
	Name          string
	Driver        string
	Kind          VehicleKind
	CapacityKg    float64
	MileageKmPerL float64
	FuelRatePerL  float64
}

// NewVehicle validates the physical attributes at construction time so that
// downstream cost computations never divide by zero.
func NewVehicle(id string, kind VehicleKind, name, driver string, capacityKg, mileageKmPerL, fuelRatePerL float64) (*Vehicle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("new vehicle: id must be non-empty")
	}
	if capacityKg <= 0 {
		return nil, fmt.Errorf("new vehicle %q: capacity must be positive, got %.1f", id, capacityKg)
	}
	if mileageKmPerL <= 0 {
		return nil, fmt.Errorf("new vehicle %q: mileage must be positive, got %.2f", id, mileageKmPerL)
	}
	if fuelRatePerL < 0 {
		return nil, fmt.Errorf("new vehicle %q: fuel rate must be non-negative, got %.2f", id, fuelRatePerL)
	}

	return &Vehicle{
		ID:            id,
		Name:          name,
		Driver:        driver,
		Kind:          kind,
		CapacityKg:    capacityKg,
		MileageKmPerL: mileageKmPerL,
		FuelRatePerL:  fuelRatePerL,
	}, nil
}

// EfficiencyFactor returns the kind-specific multiplier applied to rated mileage.
func (v *Vehicle) EfficiencyFactor() float64 {
	if f, ok := efficiencyFactors[v.Kind]; ok {
		return f
	}
	return 1.0
}

// CanCarry reports whether the shipment's weight fits within the vehicle's capacity.
func (v *Vehicle) CanCarry(s *Shipment) bool {
	return s.WeightKg <= v.CapacityKg
}
