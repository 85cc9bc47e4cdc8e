package services

import "strings"

// Recognized cost strategy names.
const (
	StrategyFuel        = "fuel"
	StrategyFuelAndToll = "fuelandtoll"
)

// Built-in strategy parameters used when configuration supplies none.
const (
	DefaultAllowancePerHour = 100
	DefaultAvgSpeedKmh      = 50
)

// StrategyDefaults carries the construction parameters for the fuel-and-toll
// strategy, typically resolved from configuration.
type StrategyDefaults struct {
	AllowancePerHour float64
	AvgSpeedKmh      float64
}

// NewStrategy maps a case-insensitive strategy name to a concrete CostStrategy.
// Unrecognized names select the fuel-only strategy; a wrong name degrades the
// cost model rather than failing the session.
func NewStrategy(name string, defaults StrategyDefaults) CostStrategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyFuelAndToll:
		allowance := defaults.AllowancePerHour
		if allowance == 0 {
			allowance = DefaultAllowancePerHour
		}
		speed := defaults.AvgSpeedKmh
		if speed == 0 {
			speed = DefaultAvgSpeedKmh
		}
		return FuelAndTollCost{AllowancePerHour: allowance, AvgSpeedKmh: speed}
	default:
		return FuelCost{}
	}
}
