package domain

import (
	"fmt"
	"strings"
)

// Represents a transport leg between two labeled locations with a precomputed
// distance and a fixed toll. Routes are flat records, not graph edges; identity
// is the ID alone, and all containers key routes by that ID.
type Route struct {
	ID          string
	Source      string
	Destination string
	DistanceKm  float64
	Toll        float64
}

func NewRoute(id, source, destination string, distanceKm, toll float64) (*Route, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("new route: id must be non-empty")
	}
	if distanceKm < 0 {
		return nil, fmt.Errorf("new route %q: distance must be non-negative, got %.1f", id, distanceKm)
	}
	if toll < 0 {
		return nil, fmt.Errorf("new route %q: toll must be non-negative, got %.2f", id, toll)
	}

	return &Route{
		ID:          id,
		Source:      source,
		Destination: destination,
		DistanceKm:  distanceKm,
		Toll:        toll,
	}, nil
}
