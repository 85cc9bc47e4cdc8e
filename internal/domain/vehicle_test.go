package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicleValidation(t *testing.T) {
	_, err := NewVehicle("", KindTruck, "n", "d", 100, 5, 10)
	assert.Error(t, err)

	_, err = NewVehicle("V1", KindTruck, "n", "d", 0, 5, 10)
	assert.Error(t, err, "zero capacity must be rejected")

	_, err = NewVehicle("V1", KindTruck, "n", "d", 100, 0, 10)
	assert.Error(t, err, "zero mileage must be rejected")

	_, err = NewVehicle("V1", KindTruck, "n", "d", 100, 5, -1)
	assert.Error(t, err, "negative fuel rate must be rejected")

	v, err := NewVehicle("V1", KindVan, "n", "d", 100, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, "V1", v.ID)
	assert.Equal(t, KindVan, v.Kind)
}

func TestEfficiencyFactor(t *testing.T) {
	truck := &Vehicle{Kind: KindTruck}
	van := &Vehicle{Kind: KindVan}
	unknown := &Vehicle{Kind: VehicleKind("bike")}

	assert.Equal(t, 0.9, truck.EfficiencyFactor())
	assert.Equal(t, 1.05, van.EfficiencyFactor())
	assert.Equal(t, 1.0, unknown.EfficiencyFactor())
}

func TestParseVehicleKind(t *testing.T) {
	assert.Equal(t, KindTruck, ParseVehicleKind("truck"))
	assert.Equal(t, KindTruck, ParseVehicleKind(" TRUCK "))
	assert.Equal(t, KindVan, ParseVehicleKind("van"))
	// anything unrecognized defaults to van
	assert.Equal(t, KindVan, ParseVehicleKind("lorry"))
}

func TestCanCarry(t *testing.T) {
	v := &Vehicle{ID: "V1", CapacityKg: 1000}

	assert.True(t, v.CanCarry(&Shipment{WeightKg: 999}))
	assert.True(t, v.CanCarry(&Shipment{WeightKg: 1000}), "weight equal to capacity is feasible")
	assert.False(t, v.CanCarry(&Shipment{WeightKg: 1000.1}))
}
