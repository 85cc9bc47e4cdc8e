package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds dataset file paths and strategy parameters for one session.
// Resolution order: environment variables win over the YAML file, which wins
// over built-in defaults.
type Config struct {
	FleetPath     string   `yaml:"fleet_path"`
	RoutesPath    string   `yaml:"routes_path"`
	ShipmentsPath string   `yaml:"shipments_path"`
	PlanPath      string   `yaml:"plan_path"`
	Strategy      Strategy `yaml:"strategy"`
}

// Strategy carries the fuel-and-toll construction parameters.
type Strategy struct {
	AllowancePerHour float64 `yaml:"allowance_per_hour"`
	AvgSpeedKmh      float64 `yaml:"avg_speed_kmh"`
}

func Default() Config {
	return Config{
		FleetPath:     "fleet.csv",
		RoutesPath:    "routes.csv",
		ShipmentsPath: "shipments.csv",
		PlanPath:      "plan.txt",
		Strategy: Strategy{
			AllowancePerHour: 100,
			AvgSpeedKmh:      50,
		},
	}
}

// Load reads the YAML config at path, then applies environment overrides.
// A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return cfg, fmt.Errorf("load config: %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	cfg.FleetPath = Get("FLEET_CSV", cfg.FleetPath)
	cfg.RoutesPath = Get("ROUTES_CSV", cfg.RoutesPath)
	cfg.ShipmentsPath = Get("SHIPMENTS_CSV", cfg.ShipmentsPath)
	cfg.PlanPath = Get("PLAN_PATH", cfg.PlanPath)
	cfg.Strategy.AllowancePerHour = getFloat("DRIVER_ALLOWANCE_PER_HOUR", cfg.Strategy.AllowancePerHour)
	cfg.Strategy.AvgSpeedKmh = getFloat("AVG_SPEED_KMH", cfg.Strategy.AvgSpeedKmh)

	return cfg, nil
}

// Get returns the environment variable's value, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
