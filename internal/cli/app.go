package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"transport-logistics/internal/domain"
	"transport-logistics/internal/platform/obs"
	"transport-logistics/internal/ports"
	"transport-logistics/internal/services"
)

// App drives the interactive menu session over the in-memory collections.
// It is a thin transport layer: all decision logic lives in services, and
// plan/dataset I/O goes through ports.
type App struct {
	fleet     *domain.Fleet
	routes    *domain.Routes
	shipments *domain.Shipments

	defaults services.StrategyDefaults
	plans    ports.PlanWriter
	datasets ports.DatasetSource
	seeder   ports.SampleSeeder

	in  *bufio.Scanner
	out io.Writer
}

// Options wires the application dependencies for NewApp.
type Options struct {
	Fleet     *domain.Fleet
	Routes    *domain.Routes
	Shipments *domain.Shipments
	Defaults  services.StrategyDefaults
	Plans     ports.PlanWriter
	Datasets  ports.DatasetSource
	Seeder    ports.SampleSeeder
}

func NewApp(opts Options, in io.Reader, out io.Writer) *App {
	return &App{
		fleet:     opts.Fleet,
		routes:    opts.Routes,
		shipments: opts.Shipments,
		defaults:  opts.Defaults,
		plans:     opts.Plans,
		datasets:  opts.Datasets,
		seeder:    opts.Seeder,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run executes the menu loop until the user exits or input ends.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "=== Transport Logistics System ===")

	for {
		a.printMenu()

		choice, ok := a.readLine()
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			a.addVehicle()
		case "2":
			a.addRoute()
		case "3":
			a.addShipment()
		case "4":
			a.listAll()
		case "5":
			err = a.computeCost()
		case "6":
			err = a.optimize()
		case "7":
			err = a.writeSamples()
		case "0":
			fmt.Fprintln(a.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Try again.")
		}

		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Menu:")
	fmt.Fprintln(a.out, "1. Add Vehicle")
	fmt.Fprintln(a.out, "2. Add Route")
	fmt.Fprintln(a.out, "3. Add Shipment")
	fmt.Fprintln(a.out, "4. List Vehicles / Routes / Shipments")
	fmt.Fprintln(a.out, "5. Compute Cost (route + vehicle + shipment)")
	fmt.Fprintln(a.out, "6. Optimize (find cheapest route/vehicle for a shipment) & write plan")
	fmt.Fprintln(a.out, "7. Create sample CSV files and reload datasets")
	fmt.Fprintln(a.out, "0. Exit")
	fmt.Fprint(a.out, "Enter choice: ")
}

func (a *App) addVehicle() {
	id := a.prompt("Vehicle ID: ")
	kind := domain.ParseVehicleKind(a.prompt("Type (truck/van): "))
	name := a.prompt("Vehicle Name: ")
	driver := a.prompt("Driver Name: ")
	capacity := a.promptFloat("Capacity (kg): ")
	mileage := a.promptFloat("Mileage (km per liter): ")
	rate := a.promptFloat("Fuel rate per liter: ")

	vehicle, err := domain.NewVehicle(id, kind, name, driver, capacity, mileage, rate)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.fleet.Put(vehicle.ID, vehicle)
	fmt.Fprintln(a.out, "Vehicle added.")
}

func (a *App) addRoute() {
	id := a.prompt("Route ID: ")
	source := a.prompt("Source: ")
	destination := a.prompt("Destination: ")
	distance := a.promptFloat("Distance (km): ")
	toll := a.promptFloat("Route toll (currency): ")

	route, err := domain.NewRoute(id, source, destination, distance, toll)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.routes.Put(route.ID, route)
	fmt.Fprintln(a.out, "Route added.")
}

func (a *App) addShipment() {
	id := a.prompt("Shipment ID: ")
	weight := a.promptFloat("Weight (kg): ")
	distance := a.promptFloat("Distance (km): ")
	toll := a.promptFloat("Shipment toll (currency): ")
	costPerKm := a.promptFloat("CostPerKm override (0 to skip): ")

	shipment, err := domain.NewShipment(id, weight, distance, toll, costPerKm)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.shipments.Put(shipment.ID, shipment)
	fmt.Fprintln(a.out, "Shipment added.")
}

func (a *App) listAll() {
	fmt.Fprintln(a.out, "\n--- Vehicles ---")
	if a.fleet.Len() == 0 {
		fmt.Fprintln(a.out, "[no vehicles]")
	}
	for _, v := range a.fleet.Items() {
		renderVehicle(a.out, v)
	}

	fmt.Fprintln(a.out, "\n--- Routes ---")
	if a.routes.Len() == 0 {
		fmt.Fprintln(a.out, "[no routes]")
	}
	for _, r := range a.routes.Items() {
		renderRoute(a.out, r)
	}

	fmt.Fprintln(a.out, "\n--- Shipments ---")
	if a.shipments.Len() == 0 {
		fmt.Fprintln(a.out, "[no shipments]")
	}
	for _, s := range a.shipments.Items() {
		renderShipment(a.out, s)
	}
}

func (a *App) computeCost() (err error) {
	defer obs.Time("compute_cost")(&err)

	routeID := a.prompt("Enter Route ID: ")
	vehicleID := a.prompt("Enter Vehicle ID: ")
	shipmentID := a.prompt("Enter Shipment ID: ")
	strategyName := a.prompt("Strategy (fuel / fuelandtoll): ")

	planner := a.newPlanner(strategyName)

	cost, err := planner.RouteCost(routeID, vehicleID, shipmentID)
	if err != nil {
		return fmt.Errorf("compute cost: %w", err)
	}

	fmt.Fprintf(a.out, "Computed Cost = %.2f\n", cost)
	return nil
}

func (a *App) optimize() (err error) {
	defer obs.Time("optimize")(&err)

	if a.shipments.Len() == 0 {
		fmt.Fprintln(a.out, "No shipments available to optimize.")
		return nil
	}

	shipmentID := a.prompt("Enter Shipment ID to optimize: ")
	shipment, ok := a.shipments.Get(shipmentID)
	if !ok {
		fmt.Fprintln(a.out, "Shipment not found.")
		return nil
	}

	if a.fleet.Len() == 0 || a.routes.Len() == 0 {
		fmt.Fprintln(a.out, "Need at least one vehicle and one route for optimization.")
		return nil
	}

	strategyName := a.prompt("Strategy (fuel / fuelandtoll): ")
	planner := a.newPlanner(strategyName)

	assignment, err := planner.Optimize(shipmentID)
	if errors.Is(err, services.ErrNoFeasibleAssignment) {
		fmt.Fprintln(a.out, "No valid route-vehicle combination found (maybe overweight).")
		return nil
	}
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	route, _ := a.routes.Get(assignment.RouteID)
	vehicle, _ := a.fleet.Get(assignment.VehicleID)

	if err := a.plans.WritePlan(assignment, route, shipment); err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	fmt.Fprintln(a.out, "Optimized plan written.")

	fmt.Fprintln(a.out, "\n=== Best Assignment ===")
	if vehicle != nil {
		renderVehicle(a.out, vehicle)
	}
	renderRoute(a.out, route)
	renderShipment(a.out, shipment)
	renderCost(a.out, assignment.Cost)

	return nil
}

// writeSamples seeds the demo CSV files and replaces the in-memory collections
// with their contents.
func (a *App) writeSamples() (err error) {
	defer obs.Time("write_samples")(&err)

	if err := a.seeder.WriteSamples(); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}

	fleet, err := a.datasets.LoadFleet()
	if err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	routes, err := a.datasets.LoadRoutes()
	if err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	shipments, err := a.datasets.LoadShipments()
	if err != nil {
		return fmt.Errorf("write samples: %w", err)
	}

	*a.fleet = *fleet
	*a.routes = *routes
	*a.shipments = *shipments

	fmt.Fprintln(a.out, "Sample CSV files created and loaded.")
	return nil
}

func (a *App) newPlanner(strategyName string) *services.Planner {
	strategy := services.NewStrategy(strategyName, a.defaults)
	return services.NewPlanner(a.fleet, a.routes, a.shipments, strategy)
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, _ := a.readLine()
	return line
}

// promptFloat re-asks on malformed numbers; empty input means zero.
func (a *App) promptFloat(label string) float64 {
	fmt.Fprint(a.out, label)
	for {
		line, ok := a.readLine()
		if !ok || line == "" {
			return 0
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f
		}
		fmt.Fprint(a.out, "Invalid number, try again: ")
	}
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}
