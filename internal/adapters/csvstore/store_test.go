package csvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-logistics/internal/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(
		filepath.Join(dir, "fleet.csv"),
		filepath.Join(dir, "routes.csv"),
		filepath.Join(dir, "shipments.csv"),
	)
}

func TestLoadMissingFilesYieldEmptyCollections(t *testing.T) {
	store := tempStore(t)

	fleet, err := store.LoadFleet()
	require.NoError(t, err)
	assert.Equal(t, 0, fleet.Len())

	routes, err := store.LoadRoutes()
	require.NoError(t, err)
	assert.Equal(t, 0, routes.Len())

	shipments, err := store.LoadShipments()
	require.NoError(t, err)
	assert.Equal(t, 0, shipments.Len())
}

func TestWriteSamplesRoundTrip(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.WriteSamples())

	fleet, err := store.LoadFleet()
	require.NoError(t, err)
	require.Equal(t, []string{"V1", "V2", "V3"}, fleet.IDs())

	v1, ok := fleet.Get("V1")
	require.True(t, ok)
	assert.Equal(t, domain.KindTruck, v1.Kind)
	assert.Equal(t, "VolvoTruck", v1.Name)
	assert.Equal(t, "John", v1.Driver)
	assert.Equal(t, 5000.0, v1.CapacityKg)
	assert.Equal(t, 3.5, v1.MileageKmPerL)
	assert.Equal(t, 90.0, v1.FuelRatePerL)

	v2, ok := fleet.Get("V2")
	require.True(t, ok)
	assert.Equal(t, domain.KindVan, v2.Kind)

	routes, err := store.LoadRoutes()
	require.NoError(t, err)
	require.Equal(t, []string{"R1", "R2", "R3"}, routes.IDs())

	r1, ok := routes.Get("R1")
	require.True(t, ok)
	assert.Equal(t, "CityA", r1.Source)
	assert.Equal(t, "CityB", r1.Destination)
	assert.Equal(t, 300.0, r1.DistanceKm)
	assert.Equal(t, 50.0, r1.Toll)

	shipments, err := store.LoadShipments()
	require.NoError(t, err)
	require.Equal(t, []string{"S1"}, shipments.IDs())

	s1, _ := shipments.Get("S1")
	assert.Equal(t, 800.0, s1.WeightKg)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	store := tempStore(t)

	// short row, bad number, and a bad entity in between two good ones
	data := "R1,CityA,CityB,300,50\n" +
		"R2,CityA\n" +
		"R3,CityB,CityC,abc,20\n" +
		"R4,CityB,CityC,-5,20\n" +
		"R5,CityC,CityD,150,20\n"
	require.NoError(t, os.WriteFile(store.RoutesPath, []byte(data), 0o644))

	routes, err := store.LoadRoutes()
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R5"}, routes.IDs())
}

func TestLoadFleetUnknownTypeBecomesVan(t *testing.T) {
	store := tempStore(t)
	data := "V1,lorry,BigLorry,Sam,3000,5.0,80\n"
	require.NoError(t, os.WriteFile(store.FleetPath, []byte(data), 0o644))

	fleet, err := store.LoadFleet()
	require.NoError(t, err)

	v, ok := fleet.Get("V1")
	require.True(t, ok)
	assert.Equal(t, domain.KindVan, v.Kind)
}
