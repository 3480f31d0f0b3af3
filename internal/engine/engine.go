// Package engine implements the fleet state and dispatch rule engine:
// the single mutation surface over the entity registry. Every
// operation validates first and writes second, so a returned error
// guarantees zero observable side effects, and each multi-entity
// cascade commits as one unit under the engine's lock.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-dispatch/internal/models"
	"github.com/fleetops/fleet-dispatch/internal/registry"
)

// Snapshot is the complete, consistent state of the fleet at a point
// in time. Mutating operations return one so observers can re-render
// without further queries. Logs are most recent first.
type Snapshot struct {
	Vehicles []models.Vehicle `json:"vehicles"`
	Drivers  []models.Driver  `json:"drivers"`
	Trips    []models.Trip    `json:"trips"`
	Logs     []models.Log     `json:"logs"`
}

// Engine owns the canonical fleet state. Construct one per fleet;
// there is no package-level instance. Operations serialize on an
// internal mutex so a reader never observes a half-applied cascade.
type Engine struct {
	mu  sync.Mutex
	reg *registry.Registry
	log *logrus.Logger
}

// New returns an engine over a fresh, empty registry.
func New(log *logrus.Logger) *Engine {
	return NewWithRegistry(registry.New(), log)
}

// NewWithRegistry returns an engine over the given registry. A nil
// logger falls back to the logrus standard logger.
func NewWithRegistry(reg *registry.Registry, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{reg: reg, log: log}
}

// Snapshot returns the current fleet state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Vehicles: e.reg.Vehicles(),
		Drivers:  e.reg.Drivers(),
		Trips:    e.reg.Trips(),
		Logs:     e.reg.Logs(),
	}
}

// AddVehicle creates a vehicle in AVAILABLE status with a fresh id.
func (e *Engine) AddVehicle(in VehicleInput) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := checkInput(in); err != nil {
		return Snapshot{}, err
	}
	v := e.reg.CreateVehicle(models.Vehicle{
		Model:           in.Model,
		LicensePlate:    in.LicensePlate,
		Type:            models.VehicleType(in.Type),
		Region:          in.Region,
		CapacityKG:      in.CapacityKG,
		OdometerKM:      in.OdometerKM,
		AcquisitionCost: in.AcquisitionCost,
		Status:          models.VehicleAvailable,
	})
	e.log.WithFields(logrus.Fields{
		"vehicle_id":    v.ID,
		"license_plate": v.LicensePlate,
		"type":          v.Type,
	}).Info("vehicle added")
	return e.snapshotLocked(), nil
}

// UpdateVehicleStatus overwrites a vehicle's status. The value must be
// a member of the vehicle status enumeration; unknown values are
// rejected and never stored.
func (e *Engine) UpdateVehicleStatus(id string, status string) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.reg.GetVehicle(id)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: vehicle %s", ErrNotFound, id)
	}
	s := models.VehicleStatus(status)
	if !s.Valid() {
		return Snapshot{}, fmt.Errorf("%w: %q is not a vehicle status", ErrInvalidStatus, status)
	}
	v.Status = s
	e.reg.PutVehicle(v)
	e.log.WithFields(logrus.Fields{"vehicle_id": id, "status": s}).Info("vehicle status updated")
	return e.snapshotLocked(), nil
}

// AddDriver creates a driver in ON_DUTY status with a fresh id.
func (e *Engine) AddDriver(in DriverInput) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := checkInput(in); err != nil {
		return Snapshot{}, err
	}
	d := e.reg.CreateDriver(models.Driver{
		Name:            in.Name,
		LicenseExpiry:   in.LicenseExpiry,
		LicenseCategory: models.VehicleType(in.LicenseCategory),
		SafetyScore:     in.SafetyScore,
		Status:          models.DriverOnDuty,
	})
	e.log.WithFields(logrus.Fields{
		"driver_id":        d.ID,
		"license_category": d.LicenseCategory,
	}).Info("driver added")
	return e.snapshotLocked(), nil
}

// DispatchTrip validates the proposed trip and, on success, commits
// the dispatch cascade: a new DISPATCHED trip plus both its vehicle
// and driver moved to ON_TRIP.
func (e *Engine) DispatchTrip(in DispatchInput) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, d, err := e.validateDispatch(in)
	if err != nil {
		return Snapshot{}, err
	}

	trip := e.reg.CreateTrip(models.Trip{
		VehicleID:       v.ID,
		DriverID:        d.ID,
		CargoWeight:     in.CargoWeight,
		ExpectedRevenue: in.ExpectedRevenue,
		Origin:          in.Origin,
		Destination:     in.Destination,
		Status:          models.TripDispatched,
	})
	v.Status = models.VehicleOnTrip
	e.reg.PutVehicle(v)
	d.Status = models.DriverOnTrip
	e.reg.PutDriver(d)

	e.log.WithFields(logrus.Fields{
		"trip_id":    trip.ID,
		"vehicle_id": v.ID,
		"driver_id":  d.ID,
		"cargo_kg":   in.CargoWeight,
	}).Info("trip dispatched")
	return e.snapshotLocked(), nil
}

// CompleteTrip commits the completion cascade: the trip moves to
// COMPLETED, its vehicle returns to AVAILABLE with the new odometer
// reading, and its driver returns to ON_DUTY. The reading must not be
// below the vehicle's current odometer.
func (e *Engine) CompleteTrip(id string, newOdometer float64) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.reg.GetTrip(id)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: trip %s", ErrNotFound, id)
	}
	if t.Status != models.TripDispatched {
		return Snapshot{}, fmt.Errorf("%w: trip %s is %s, not DISPATCHED", ErrInvalidStatus, id, t.Status)
	}
	v, ok := e.reg.GetVehicle(t.VehicleID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: vehicle %s", ErrNotFound, t.VehicleID)
	}
	d, ok := e.reg.GetDriver(t.DriverID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: driver %s", ErrNotFound, t.DriverID)
	}
	if newOdometer < v.OdometerKM {
		return Snapshot{}, fmt.Errorf(
			"%w: %gkm is below vehicle %s's current %gkm",
			ErrOdometerRegression, newOdometer, v.ID, v.OdometerKM)
	}

	t.Status = models.TripCompleted
	e.reg.PutTrip(t)
	v.Status = models.VehicleAvailable
	v.OdometerKM = newOdometer
	e.reg.PutVehicle(v)
	d.Status = models.DriverOnDuty
	e.reg.PutDriver(d)

	e.log.WithFields(logrus.Fields{
		"trip_id":     id,
		"vehicle_id":  v.ID,
		"odometer_km": newOdometer,
	}).Info("trip completed")
	return e.snapshotLocked(), nil
}

// AddLog appends a log entry at the head of the history. Recording a
// MAINTENANCE entry always pulls the vehicle from service: its status
// is forced to IN_SHOP whatever it held, ON_TRIP included.
func (e *Engine) AddLog(in LogInput) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := checkInput(in); err != nil {
		return Snapshot{}, err
	}
	v, ok := e.reg.GetVehicle(in.VehicleID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: vehicle %s", ErrNotFound, in.VehicleID)
	}

	logged := in.DateLogged
	if logged.IsZero() {
		logged = time.Now().UTC()
	}
	l := e.reg.CreateLog(models.Log{
		VehicleID:   v.ID,
		LogType:     models.LogType(in.LogType),
		Cost:        in.Cost,
		Liters:      in.Liters,
		Description: in.Description,
		DateLogged:  logged,
	})
	if l.LogType == models.LogMaintenance {
		v.Status = models.VehicleInShop
		e.reg.PutVehicle(v)
	}

	e.log.WithFields(logrus.Fields{
		"log_id":     l.ID,
		"vehicle_id": v.ID,
		"log_type":   l.LogType,
		"cost":       l.Cost,
	}).Info("log recorded")
	return e.snapshotLocked(), nil
}
