// Package analytics computes fleet KPIs over an engine snapshot. It is
// read-only: the numbers here feed dashboards and never flow back into
// state.
package analytics

import (
	"math"

	"github.com/fleetops/fleet-dispatch/internal/engine"
	"github.com/fleetops/fleet-dispatch/internal/models"
)

// DashboardKPIs summarizes live fleet activity.
type DashboardKPIs struct {
	ActiveFleet    int     `json:"active_fleet"` // vehicles currently ON_TRIP
	InShop         int     `json:"in_shop"`
	TotalVehicles  int     `json:"total_vehicles"`
	UtilizationPct float64 `json:"utilization_rate"` // ActiveFleet / TotalVehicles, rounded
	PendingCargo   int     `json:"pending_cargo"`    // DRAFT and DISPATCHED trips
}

// FleetFinancials aggregates revenue and operating costs.
type FleetFinancials struct {
	FuelEfficiencyKMPerL float64 `json:"fuel_efficiency_km_per_l"` // total km over total fuel liters
	TotalRevenue         float64 `json:"total_revenue"`            // COMPLETED trips only
	MaintenanceCost      float64 `json:"maintenance_cost"`
	FuelCost             float64 `json:"fuel_cost"`
	OperatingCost        float64 `json:"operating_cost"`
}

// VehicleROI is the return-on-investment line for one vehicle, keyed by
// license plate for display.
type VehicleROI struct {
	LicensePlate string  `json:"license_plate"`
	NetProfit    float64 `json:"net_profit"`
	ROIPct       float64 `json:"roi"`
}

// Dashboard computes the command-center KPIs for a snapshot.
func Dashboard(snap engine.Snapshot) DashboardKPIs {
	k := DashboardKPIs{TotalVehicles: len(snap.Vehicles)}
	for _, v := range snap.Vehicles {
		switch v.Status {
		case models.VehicleOnTrip:
			k.ActiveFleet++
		case models.VehicleInShop:
			k.InShop++
		}
	}
	if k.TotalVehicles > 0 {
		k.UtilizationPct = math.Round(float64(k.ActiveFleet) / float64(k.TotalVehicles) * 100)
	}
	for _, t := range snap.Trips {
		if t.Status == models.TripDraft || t.Status == models.TripDispatched {
			k.PendingCargo++
		}
	}
	return k
}

// Financials computes fleet-wide revenue, costs and fuel efficiency.
// Efficiency is zero when no fuel has been logged.
func Financials(snap engine.Snapshot) FleetFinancials {
	var f FleetFinancials
	var totalLiters, totalKM float64
	for _, l := range snap.Logs {
		switch l.LogType {
		case models.LogFuel:
			f.FuelCost += l.Cost
			totalLiters += l.Liters
		case models.LogMaintenance:
			f.MaintenanceCost += l.Cost
		}
	}
	f.OperatingCost = f.MaintenanceCost + f.FuelCost
	for _, v := range snap.Vehicles {
		totalKM += v.OdometerKM
	}
	if totalLiters > 0 {
		f.FuelEfficiencyKMPerL = totalKM / totalLiters
	}
	for _, t := range snap.Trips {
		if t.Status == models.TripCompleted {
			f.TotalRevenue += t.ExpectedRevenue
		}
	}
	return f
}

// ROIByVehicle computes, per vehicle, net profit (completed-trip revenue
// minus logged fuel and maintenance costs) and ROI against the
// acquisition cost. Vehicles with a zero acquisition cost report 0 ROI.
func ROIByVehicle(snap engine.Snapshot) []VehicleROI {
	revenue := make(map[string]float64)
	for _, t := range snap.Trips {
		if t.Status == models.TripCompleted {
			revenue[t.VehicleID] += t.ExpectedRevenue
		}
	}
	costs := make(map[string]float64)
	for _, l := range snap.Logs {
		costs[l.VehicleID] += l.Cost
	}

	out := make([]VehicleROI, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		net := revenue[v.ID] - costs[v.ID]
		roi := 0.0
		if v.AcquisitionCost > 0 {
			roi = net / v.AcquisitionCost * 100
		}
		out = append(out, VehicleROI{LicensePlate: v.LicensePlate, NetProfit: net, ROIPct: roi})
	}
	return out
}
