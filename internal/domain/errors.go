package domain

import "errors"

var (
	// ErrNotFound signals that a referenced vehicle, route, or shipment id is
	// absent from its collection.
	ErrNotFound = errors.New("not found")

	// ErrOverCapacity signals that a shipment's weight exceeds the capacity of
	// an explicitly requested vehicle.
	ErrOverCapacity = errors.New("shipment weight exceeds vehicle capacity")
)
