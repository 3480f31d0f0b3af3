// Package registry holds the canonical in-memory state for the four
// fleet entity kinds and generates their identifiers. It is a plain
// data store: business rules live in the engine package.
package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetops/fleet-dispatch/internal/models"
)

// Id prefixes, one per entity kind. Seed data keeps its original fixed
// ids ("v-1", "d-2", ...); freshly created entities get prefix + UUID.
const (
	VehiclePrefix = "v"
	DriverPrefix  = "d"
	TripPrefix    = "t"
	LogPrefix     = "l"
)

// IDFunc generates a fresh identifier for the given kind prefix.
type IDFunc func(prefix string) string

// UUIDGenerator is the default IDFunc. UUIDs stay unique under rapid
// successive calls, which a clock-derived scheme does not.
func UUIDGenerator(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// Registry stores vehicles, drivers, trips and logs keyed by id.
// Vehicles, drivers and trips iterate in insertion order; logs iterate
// most-recent-first. All accessors return copies, so callers can never
// mutate stored state except through Put/Create.
type Registry struct {
	vehicles map[string]models.Vehicle
	drivers  map[string]models.Driver
	trips    map[string]models.Trip
	logs     map[string]models.Log

	vehicleOrder []string
	driverOrder  []string
	tripOrder    []string
	logOrder     []string // newest first

	newID IDFunc
}

// New returns an empty registry using the UUID id generator.
func New() *Registry {
	return NewWithIDFunc(UUIDGenerator)
}

// NewWithIDFunc returns an empty registry with a custom id generator.
func NewWithIDFunc(idFn IDFunc) *Registry {
	return &Registry{
		vehicles: make(map[string]models.Vehicle),
		drivers:  make(map[string]models.Driver),
		trips:    make(map[string]models.Trip),
		logs:     make(map[string]models.Log),
		newID:    idFn,
	}
}

// CreateVehicle inserts v, assigning a fresh id unless one is preset
// (the seed path), and returns the stored copy.
func (r *Registry) CreateVehicle(v models.Vehicle) models.Vehicle {
	if v.ID == "" {
		v.ID = r.newID(VehiclePrefix)
	}
	r.vehicles[v.ID] = v
	r.vehicleOrder = append(r.vehicleOrder, v.ID)
	return v
}

// GetVehicle returns a copy of the vehicle with the given id.
func (r *Registry) GetVehicle(id string) (models.Vehicle, bool) {
	v, ok := r.vehicles[id]
	return v, ok
}

// PutVehicle replaces an existing vehicle. It reports false when the id
// is unknown; it never inserts.
func (r *Registry) PutVehicle(v models.Vehicle) bool {
	if _, ok := r.vehicles[v.ID]; !ok {
		return false
	}
	r.vehicles[v.ID] = v
	return true
}

// Vehicles returns all vehicles in insertion order.
func (r *Registry) Vehicles() []models.Vehicle {
	out := make([]models.Vehicle, 0, len(r.vehicleOrder))
	for _, id := range r.vehicleOrder {
		out = append(out, r.vehicles[id])
	}
	return out
}

// CreateDriver inserts d, assigning a fresh id unless one is preset,
// and returns the stored copy.
func (r *Registry) CreateDriver(d models.Driver) models.Driver {
	if d.ID == "" {
		d.ID = r.newID(DriverPrefix)
	}
	r.drivers[d.ID] = d
	r.driverOrder = append(r.driverOrder, d.ID)
	return d
}

// GetDriver returns a copy of the driver with the given id.
func (r *Registry) GetDriver(id string) (models.Driver, bool) {
	d, ok := r.drivers[id]
	return d, ok
}

// PutDriver replaces an existing driver. It reports false when the id
// is unknown; it never inserts.
func (r *Registry) PutDriver(d models.Driver) bool {
	if _, ok := r.drivers[d.ID]; !ok {
		return false
	}
	r.drivers[d.ID] = d
	return true
}

// Drivers returns all drivers in insertion order.
func (r *Registry) Drivers() []models.Driver {
	out := make([]models.Driver, 0, len(r.driverOrder))
	for _, id := range r.driverOrder {
		out = append(out, r.drivers[id])
	}
	return out
}

// CreateTrip inserts t, assigning a fresh id unless one is preset, and
// returns the stored copy.
func (r *Registry) CreateTrip(t models.Trip) models.Trip {
	if t.ID == "" {
		t.ID = r.newID(TripPrefix)
	}
	r.trips[t.ID] = t
	r.tripOrder = append(r.tripOrder, t.ID)
	return t
}

// GetTrip returns a copy of the trip with the given id.
func (r *Registry) GetTrip(id string) (models.Trip, bool) {
	t, ok := r.trips[id]
	return t, ok
}

// PutTrip replaces an existing trip. It reports false when the id is
// unknown; it never inserts.
func (r *Registry) PutTrip(t models.Trip) bool {
	if _, ok := r.trips[t.ID]; !ok {
		return false
	}
	r.trips[t.ID] = t
	return true
}

// Trips returns all trips in insertion order.
func (r *Registry) Trips() []models.Trip {
	out := make([]models.Trip, 0, len(r.tripOrder))
	for _, id := range r.tripOrder {
		out = append(out, r.trips[id])
	}
	return out
}

// CreateLog inserts l at the head of the visible history, assigning a
// fresh id unless one is preset, and returns the stored copy. Logs are
// append-only; there is no update path.
func (r *Registry) CreateLog(l models.Log) models.Log {
	if l.ID == "" {
		l.ID = r.newID(LogPrefix)
	}
	r.logs[l.ID] = l
	r.logOrder = append([]string{l.ID}, r.logOrder...)
	return l
}

// GetLog returns a copy of the log with the given id.
func (r *Registry) GetLog(id string) (models.Log, bool) {
	l, ok := r.logs[id]
	return l, ok
}

// Logs returns all logs, most recent first.
func (r *Registry) Logs() []models.Log {
	out := make([]models.Log, 0, len(r.logOrder))
	for _, id := range r.logOrder {
		out = append(out, r.logs[id])
	}
	return out
}

// OpenTripFor returns the DISPATCHED trip referencing the given vehicle
// id, if any. There is at most one for a consistent registry.
func (r *Registry) OpenTripFor(vehicleID string) (models.Trip, bool) {
	for _, id := range r.tripOrder {
		t := r.trips[id]
		if t.VehicleID == vehicleID && t.Status == models.TripDispatched {
			return t, true
		}
	}
	return models.Trip{}, false
}
