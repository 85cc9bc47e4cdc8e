package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	fleet := NewFleet()
	fleet.Put("V3", &Vehicle{ID: "V3"})
	fleet.Put("V1", &Vehicle{ID: "V1"})
	fleet.Put("V2", &Vehicle{ID: "V2"})

	assert.Equal(t, []string{"V3", "V1", "V2"}, fleet.IDs())

	items := fleet.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "V3", items[0].ID)
	assert.Equal(t, "V2", items[2].ID)
}

func TestCollectionPutReplacesInPlace(t *testing.T) {
	routes := NewRoutes()
	routes.Put("R1", &Route{ID: "R1", DistanceKm: 100})
	routes.Put("R2", &Route{ID: "R2", DistanceKm: 200})
	routes.Put("R1", &Route{ID: "R1", DistanceKm: 150})

	assert.Equal(t, []string{"R1", "R2"}, routes.IDs(), "replacement must keep the original position")
	assert.Equal(t, 2, routes.Len())

	r, ok := routes.Get("R1")
	require.True(t, ok)
	assert.Equal(t, 150.0, r.DistanceKm)
}

func TestCollectionGetMissing(t *testing.T) {
	shipments := NewShipments()
	_, ok := shipments.Get("S1")
	assert.False(t, ok)
	assert.Empty(t, shipments.IDs())
	assert.Empty(t, shipments.Items())
}
