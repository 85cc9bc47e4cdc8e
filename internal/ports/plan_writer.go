package ports

import "transport-logistics/internal/domain"

// Port: a boundary for persisting an optimized assignment as a report artifact.
type PlanWriter interface {
	// Render the assignment together with its route and shipment details.
	WritePlan(assignment *domain.Assignment, route *domain.Route, shipment *domain.Shipment) error
}
