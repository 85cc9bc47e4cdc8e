package services

import "transport-logistics/internal/domain"

// CostStrategy prices an assignment of a shipment to a vehicle on a route.
// Implementations are pure functions of their three inputs and must return a
// non-negative monetary cost.
type CostStrategy interface {
	Cost(route *domain.Route, vehicle *domain.Vehicle, shipment *domain.Shipment) float64
}

// FuelCost prices an assignment on fuel spend alone, plus the fixed route and
// shipment tolls. Liters needed are derived from the route distance and the
// vehicle's rated mileage scaled by its kind efficiency factor.
type FuelCost struct{}

func (FuelCost) Cost(route *domain.Route, vehicle *domain.Vehicle, shipment *domain.Shipment) float64 {
	effectiveMileage := vehicle.MileageKmPerL * vehicle.EfficiencyFactor()
	liters := route.DistanceKm / effectiveMileage
	fuel := liters * vehicle.FuelRatePerL

	return fuel + shipment.Toll + route.Toll
}

// overweightPenalty is a fixed surcharge FuelAndTollCost applies to an
// assignment whose weight exceeds the vehicle's capacity. The planner rejects
// such pairs before pricing, so the penalty only fires when the strategy is
// invoked directly.
const overweightPenalty = 1000

// FuelAndTollCost extends FuelCost with a time-based driver allowance.
// Both parameters are fixed at construction, not per call.
type FuelAndTollCost struct {
	AllowancePerHour float64
	AvgSpeedKmh      float64
}

func (c FuelAndTollCost) Cost(route *domain.Route, vehicle *domain.Vehicle, shipment *domain.Shipment) float64 {
	total := FuelCost{}.Cost(route, vehicle, shipment)

	hours := route.DistanceKm / c.AvgSpeedKmh
	total += hours * c.AllowancePerHour

	if !vehicle.CanCarry(shipment) {
		total += overweightPenalty
	}

	return total
}
