package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-dispatch/internal/analytics"
	"github.com/fleetops/fleet-dispatch/internal/engine"
)

func main() {
	// Optional .env; real env vars win.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	// One engine per fleet; state lives for the process lifetime and is
	// reseeded from the fixed example data on every start.
	eng := engine.New(log)
	snap := eng.Seed()

	kpis := analytics.Dashboard(snap)
	log.WithFields(logrus.Fields{
		"active_fleet":  kpis.ActiveFleet,
		"in_shop":       kpis.InShop,
		"vehicles":      kpis.TotalVehicles,
		"utilization":   kpis.UtilizationPct,
		"pending_cargo": kpis.PendingCargo,
	}).Info("command center")

	fin := analytics.Financials(snap)
	log.WithFields(logrus.Fields{
		"revenue":        fin.TotalRevenue,
		"operating_cost": fin.OperatingCost,
		"km_per_l":       fin.FuelEfficiencyKMPerL,
	}).Info("financials")

	// Walk one trip through its lifecycle so a fresh checkout shows the
	// cascades working end to end.
	snap, err := eng.DispatchTrip(engine.DispatchInput{
		VehicleID:       "v-1",
		DriverID:        "d-1",
		CargoWeight:     950,
		ExpectedRevenue: 520,
		Origin:          "Warehouse A",
		Destination:     "Store 12",
	})
	if err != nil {
		log.WithError(err).Fatal("demo dispatch failed")
	}
	tripID := snap.Trips[len(snap.Trips)-1].ID

	if _, err := eng.CompleteTrip(tripID, 45180); err != nil {
		log.WithError(err).Fatal("demo completion failed")
	}

	for _, r := range analytics.ROIByVehicle(eng.Snapshot()) {
		log.WithFields(logrus.Fields{
			"plate":      r.LicensePlate,
			"net_profit": r.NetProfit,
			"roi_pct":    r.ROIPct,
		}).Info("vehicle roi")
	}
}
