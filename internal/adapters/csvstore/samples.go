package csvstore

import (
	"fmt"
	"os"
)

// Demo dataset: three routes between sample cities, a mixed truck/van fleet,
// and one shipment that fits every vehicle.
const (
	sampleRoutes = `R1,CityA,CityB,300,50
R2,CityA,CityC,450,75
R3,CityB,CityC,150,20
`
	sampleFleet = `V1,truck,VolvoTruck,John,5000,3.5,90
V2,van,TataAce,Ramesh,1200,12.0,90
V3,truck,MahindraLoad,Anil,4000,4.5,90
`
	sampleShipments = `S1,800,300,0,0
`
)

// WriteSamples writes the demo CSV files to the store's configured paths,
// replacing any existing files.
func (s *Store) WriteSamples() error {
	files := []struct {
		path string
		data string
	}{
		{s.RoutesPath, sampleRoutes},
		{s.FleetPath, sampleFleet},
		{s.ShipmentsPath, sampleShipments},
	}

	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.data), 0o644); err != nil {
			return fmt.Errorf("write samples: %q: %w", f.path, err)
		}
	}

	return nil
}
