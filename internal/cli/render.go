package cli

import (
	"fmt"
	"io"

	"transport-logistics/internal/domain"
)

// Box rendering for console listings. Layout is fixed-width and stable so
// session transcripts diff cleanly.

func renderVehicle(w io.Writer, v *domain.Vehicle) {
	fmt.Fprintln(w, "+----------------------+")
	fmt.Fprintln(w, "|       Vehicle        |")
	fmt.Fprintln(w, "+----------------------+")
	fmt.Fprintf(w, "| vehicleId   : %s\n", v.ID)
	fmt.Fprintf(w, "| vehicleName : %s\n", v.Name)
	fmt.Fprintf(w, "| driverName  : %s\n", v.Driver)
	fmt.Fprintf(w, "| kind        : %s\n", v.Kind)
	fmt.Fprintf(w, "| capacity    : %.1f kg\n", v.CapacityKg)
	fmt.Fprintf(w, "| mileage     : %.2f km/l\n", v.MileageKmPerL)
	fmt.Fprintf(w, "| rate (L)    : %.2f\n", v.FuelRatePerL)
	fmt.Fprintln(w, "+----------------------+")
}

func renderRoute(w io.Writer, r *domain.Route) {
	fmt.Fprintln(w, "+----------------------+")
	fmt.Fprintln(w, "|        Route         |")
	fmt.Fprintln(w, "+----------------------+")
	fmt.Fprintf(w, "| routeId     : %s\n", r.ID)
	fmt.Fprintf(w, "| from -> to  : %s -> %s\n", r.Source, r.Destination)
	fmt.Fprintf(w, "| distance    : %.1f km\n", r.DistanceKm)
	fmt.Fprintf(w, "| toll        : %.2f\n", r.Toll)
	fmt.Fprintln(w, "+----------------------+")
}

func renderShipment(w io.Writer, s *domain.Shipment) {
	fmt.Fprintln(w, "+----------------------+")
	fmt.Fprintln(w, "|      Shipment        |")
	fmt.Fprintln(w, "+----------------------+")
	fmt.Fprintf(w, "| shipmentId  : %s\n", s.ID)
	fmt.Fprintf(w, "| weight      : %.1f kg\n", s.WeightKg)
	fmt.Fprintf(w, "| distance    : %.1f km\n", s.DistanceKm)
	fmt.Fprintf(w, "| toll        : %.2f\n", s.Toll)
	if s.CostPerKmOverride > 0 {
		fmt.Fprintf(w, "| costPerKm   : %.2f\n", s.CostPerKmOverride)
	}
	fmt.Fprintln(w, "+----------------------+")
}

func renderCost(w io.Writer, cost float64) {
	fmt.Fprintln(w, "+-----------------------------+")
	fmt.Fprintln(w, "|     LogisticsSystem         |")
	fmt.Fprintln(w, "+-----------------------------+")
	fmt.Fprintf(w, "| Optimized Cost : %.2f\n", cost)
	fmt.Fprintln(w, "+-----------------------------+")
}
