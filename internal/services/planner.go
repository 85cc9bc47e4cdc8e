package services

import (
	"errors"
	"fmt"

	"transport-logistics/internal/domain"
)

// ErrNoFeasibleAssignment signals that no vehicle/route pair can serve the
// shipment. This is an expected planning outcome, not a fault.
var ErrNoFeasibleAssignment = errors.New("no feasible assignment")

// Planner evaluates assignment costs over in-memory fleet, route, and shipment
// collections using one cost strategy.
//
// The planner never mutates the collections; the surrounding application layer
// owns them and must not modify them while a planning call is in flight.
type Planner struct {
	fleet     *domain.Fleet
	routes    *domain.Routes
	shipments *domain.Shipments
	strategy  CostStrategy
}

func NewPlanner(fleet *domain.Fleet, routes *domain.Routes, shipments *domain.Shipments, strategy CostStrategy) *Planner {
	return &Planner{
		fleet:     fleet,
		routes:    routes,
		shipments: shipments,
		strategy:  strategy,
	}
}

// RouteCost prices one explicit (route, vehicle, shipment) triple.
//
// Absent ids fail with domain.ErrNotFound and an infeasible pairing fails with
// domain.ErrOverCapacity; otherwise the active strategy's cost is returned.
func (p *Planner) RouteCost(routeID, vehicleID, shipmentID string) (float64, error) {
	route, ok := p.routes.Get(routeID)
	if !ok {
		return 0, fmt.Errorf("route cost: route %q: %w", routeID, domain.ErrNotFound)
	}
	vehicle, ok := p.fleet.Get(vehicleID)
	if !ok {
		return 0, fmt.Errorf("route cost: vehicle %q: %w", vehicleID, domain.ErrNotFound)
	}
	shipment, ok := p.shipments.Get(shipmentID)
	if !ok {
		return 0, fmt.Errorf("route cost: shipment %q: %w", shipmentID, domain.ErrNotFound)
	}

	if !vehicle.CanCarry(shipment) {
		return 0, fmt.Errorf(
			"route cost: shipment %q (%.1f kg) on vehicle %q (%.1f kg): %w",
			shipmentID, shipment.WeightKg, vehicleID, vehicle.CapacityKg, domain.ErrOverCapacity,
		)
	}

	return p.strategy.Cost(route, vehicle, shipment), nil
}

// RouteCosts prices every route for one vehicle and shipment, keyed by route id.
// Candidates that fail lookup or feasibility are skipped, not reported.
func (p *Planner) RouteCosts(vehicleID, shipmentID string) map[string]float64 {
	costs := make(map[string]float64, p.routes.Len())
	for _, route := range p.routes.Items() {
		cost, err := p.RouteCost(route.ID, vehicleID, shipmentID)
		if err != nil {
			// Infeasible pairing, not a planner error.
			continue
		}
		costs[route.ID] = cost
	}
	return costs
}

// Optimize finds the cheapest feasible vehicle/route assignment for a shipment.
//
// Every fleet×route pair is priced; infeasible pairs are excluded before cost
// comparison. Ties on cost resolve to the earliest pair in collection insertion
// order (vehicles outer, routes inner), so identical inputs always reproduce
// the same result.
//
// The assigned vehicle is then re-resolved as the first vehicle in fleet order
// that can legally serve the winning route. That vehicle may differ from the
// one that produced the minimal cost when several vehicles fit the route.
func (p *Planner) Optimize(shipmentID string) (*domain.Assignment, error) {
	if _, ok := p.shipments.Get(shipmentID); !ok {
		return nil, fmt.Errorf("optimize: shipment %q: %w", shipmentID, domain.ErrNotFound)
	}

	var (
		bestRoute *domain.Route
		bestCost  float64
	)
	for _, vehicle := range p.fleet.Items() {
		for _, route := range p.routes.Items() {
			cost, err := p.RouteCost(route.ID, vehicle.ID, shipmentID)
			if err != nil {
				continue
			}
			if bestRoute == nil || cost < bestCost {
				bestRoute = route
				bestCost = cost
			}
		}
	}

	if bestRoute == nil {
		return nil, fmt.Errorf("optimize: shipment %q: %w", shipmentID, ErrNoFeasibleAssignment)
	}

	for _, vehicle := range p.fleet.Items() {
		if _, err := p.RouteCost(bestRoute.ID, vehicle.ID, shipmentID); err == nil {
			return &domain.Assignment{
				ShipmentID: shipmentID,
				VehicleID:  vehicle.ID,
				RouteID:    bestRoute.ID,
				Cost:       bestCost,
			}, nil
		}
	}

	// Unreachable when the scan above found a feasible pair.
	return nil, fmt.Errorf("optimize: shipment %q: %w", shipmentID, ErrNoFeasibleAssignment)
}
