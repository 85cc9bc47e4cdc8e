package domain

// Represents the outcome of one optimization pass: the cheapest feasible
// vehicle/route pairing found for a shipment. An Assignment is a transient
// value handed to the caller for reporting; it has no independent lifecycle
// and is never stored back into the collections.
type Assignment struct {
	ShipmentID string
	VehicleID  string
	RouteID    string
	Cost       float64
}
