package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"transport-logistics/internal/domain"
)

// FileWriter renders an optimized assignment into a plain-text plan file.
// Each write replaces the previous plan and carries a fresh plan id so
// successive runs are distinguishable in logs and tickets.
type FileWriter struct {
	Path string

	// newID is swappable for tests.
	newID func() string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{Path: path, newID: uuid.NewString}
}

func (w *FileWriter) WritePlan(assignment *domain.Assignment, route *domain.Route, shipment *domain.Shipment) error {
	body := Render(w.newID(), assignment, route, shipment)
	if err := os.WriteFile(w.Path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write plan: %q: %w", w.Path, err)
	}
	return nil
}

// Render produces the plan report text.
// Field order: shipment, vehicle, route with endpoints, distance, cost, tolls.
func Render(planID string, assignment *domain.Assignment, route *domain.Route, shipment *domain.Shipment) string {
	var b strings.Builder

	b.WriteString("=== OPTIMIZED TRANSPORT PLAN ===\n")
	fmt.Fprintf(&b, "Plan ID          : %s\n", planID)
	fmt.Fprintf(&b, "Shipment ID      : %s\n", assignment.ShipmentID)
	fmt.Fprintf(&b, "Assigned Vehicle : %s\n", assignment.VehicleID)
	fmt.Fprintf(&b, "Route ID         : %s (%s -> %s)\n", route.ID, route.Source, route.Destination)
	fmt.Fprintf(&b, "Distance (km)    : %.2f\n", route.DistanceKm)
	fmt.Fprintf(&b, "Estimated Cost   : %.2f\n", assignment.Cost)
	fmt.Fprintf(&b, "Route Toll       : %.2f\n", route.Toll)
	fmt.Fprintf(&b, "Shipment Toll    : %.2f\n", shipment.Toll)
	b.WriteString("===============================\n")

	return b.String()
}
