package models

// Each entity kind carries its own closed status enumeration. The sets
// deliberately do not overlap in type even where they share names
// (ON_TRIP, AVAILABLE), so a driver status can never be stored on a
// vehicle.

// VehicleStatus is the lifecycle state of a Vehicle.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "AVAILABLE"
	VehicleOnTrip    VehicleStatus = "ON_TRIP"
	VehicleInShop    VehicleStatus = "IN_SHOP"
	VehicleRetired   VehicleStatus = "RETIRED"
)

// Valid reports whether s is a member of the vehicle status enumeration.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleRetired:
		return true
	}
	return false
}

// DriverStatus is the lifecycle state of a Driver.
type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "ON_DUTY"
	DriverOffDuty   DriverStatus = "OFF_DUTY"
	DriverAvailable DriverStatus = "AVAILABLE"
	DriverOnTrip    DriverStatus = "ON_TRIP"
	DriverSuspended DriverStatus = "SUSPENDED"
)

// Valid reports whether s is a member of the driver status enumeration.
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverOnDuty, DriverOffDuty, DriverAvailable, DriverOnTrip, DriverSuspended:
		return true
	}
	return false
}

// Dispatchable reports whether a driver in this status may be assigned
// to a new trip. Matches the candidate filter the dispatch form applies.
func (s DriverStatus) Dispatchable() bool {
	return s == DriverOnDuty || s == DriverAvailable
}

// TripStatus is the lifecycle state of a Trip.
type TripStatus string

const (
	TripDraft      TripStatus = "DRAFT"
	TripDispatched TripStatus = "DISPATCHED"
	TripCompleted  TripStatus = "COMPLETED"
	TripCancelled  TripStatus = "CANCELLED"
)

// Valid reports whether s is a member of the trip status enumeration.
func (s TripStatus) Valid() bool {
	switch s {
	case TripDraft, TripDispatched, TripCompleted, TripCancelled:
		return true
	}
	return false
}

// Terminal reports whether the trip can no longer change.
func (s TripStatus) Terminal() bool {
	return s == TripCompleted || s == TripCancelled
}

// VehicleType classifies a vehicle; a driver's license category must
// match it for the pair to be dispatched together.
type VehicleType string

const (
	VehicleTypeTruck VehicleType = "TRUCK"
	VehicleTypeVan   VehicleType = "VAN"
	VehicleTypeBike  VehicleType = "BIKE"
)

// Valid reports whether t is a member of the vehicle type enumeration.
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		return true
	}
	return false
}

// LogType classifies an expense/maintenance log entry.
type LogType string

const (
	LogFuel        LogType = "FUEL"
	LogMaintenance LogType = "MAINTENANCE"
)

// Valid reports whether t is a member of the log type enumeration.
func (t LogType) Valid() bool {
	return t == LogFuel || t == LogMaintenance
}
