package engine

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fleetops/fleet-dispatch/internal/models"
)

// VehicleInput carries the caller-supplied fields for a new vehicle.
// Id and status are assigned by the engine.
type VehicleInput struct {
	Model           string  `json:"model" validate:"required"`
	LicensePlate    string  `json:"license_plate" validate:"required"`
	Type            string  `json:"type" validate:"required,oneof=TRUCK VAN BIKE"`
	Region          string  `json:"region" validate:"required"`
	CapacityKG      float64 `json:"capacity_kg" validate:"gte=0"`
	OdometerKM      float64 `json:"odometer_km" validate:"gte=0"`
	AcquisitionCost float64 `json:"acquisition_cost" validate:"gte=0"`
}

// DriverInput carries the caller-supplied fields for a new driver.
type DriverInput struct {
	Name            string    `json:"name" validate:"required"`
	LicenseExpiry   time.Time `json:"license_expiry" validate:"required"`
	LicenseCategory string    `json:"license_category" validate:"required,oneof=TRUCK VAN BIKE"`
	SafetyScore     float64   `json:"safety_score" validate:"gte=0,lte=100"`
}

// DispatchInput carries the caller-supplied fields for a new trip.
type DispatchInput struct {
	VehicleID       string  `json:"vehicle_id" validate:"required"`
	DriverID        string  `json:"driver_id" validate:"required"`
	CargoWeight     float64 `json:"cargo_weight" validate:"required,gt=0"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	Origin          string  `json:"origin" validate:"required"`
	Destination     string  `json:"destination" validate:"required"`
}

// LogInput carries the caller-supplied fields for a new log entry.
type LogInput struct {
	VehicleID   string    `json:"vehicle_id" validate:"required"`
	LogType     string    `json:"log_type" validate:"required,oneof=FUEL MAINTENANCE"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	Liters      float64   `json:"liters" validate:"gte=0"`
	Description string    `json:"description"`
	DateLogged  time.Time `json:"date_logged"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the wire-facing field name, not the Go one.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkInput runs the struct tags against in and maps the first
// violation onto an engine error kind. Fields are checked in
// declaration order, so at most one violation is ever reported.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrMissingField, fe.Field())
	case "oneof":
		return fmt.Errorf("%w: %s %q is not one of %s", ErrInvalidStatus, fe.Field(), fe.Value(), fe.Param())
	default:
		return fmt.Errorf("%w: %s (%v)", ErrInvalidField, fe.Field(), fe.Value())
	}
}

// validateDispatch decides whether a proposed trip may be created. It
// mutates nothing and reports the first failing rule only:
// missing fields, then unknown ids, then capacity, then license
// category, then vehicle/driver eligibility. The returned vehicle and
// driver are the registry copies the caller cascades over.
func (e *Engine) validateDispatch(in DispatchInput) (models.Vehicle, models.Driver, error) {
	if err := checkInput(in); err != nil {
		return models.Vehicle{}, models.Driver{}, err
	}
	v, ok := e.reg.GetVehicle(in.VehicleID)
	if !ok {
		return models.Vehicle{}, models.Driver{}, fmt.Errorf("%w: vehicle %s", ErrNotFound, in.VehicleID)
	}
	d, ok := e.reg.GetDriver(in.DriverID)
	if !ok {
		return models.Vehicle{}, models.Driver{}, fmt.Errorf("%w: driver %s", ErrNotFound, in.DriverID)
	}
	if in.CargoWeight > v.CapacityKG {
		return models.Vehicle{}, models.Driver{}, fmt.Errorf(
			"%w: cargo weight (%gkg) exceeds vehicle capacity (%gkg)",
			ErrCapacityExceeded, in.CargoWeight, v.CapacityKG)
	}
	if d.LicenseCategory != v.Type {
		return models.Vehicle{}, models.Driver{}, fmt.Errorf(
			"%w: driver license (%s) does not match vehicle type (%s)",
			ErrLicenseMismatch, d.LicenseCategory, v.Type)
	}
	if v.Status != models.VehicleAvailable {
		return models.Vehicle{}, models.Driver{}, fmt.Errorf(
			"%w: vehicle %s is %s, not AVAILABLE", ErrInvalidStatus, v.ID, v.Status)
	}
	if !d.Status.Dispatchable() {
		return models.Vehicle{}, models.Driver{}, fmt.Errorf(
			"%w: driver %s is %s and cannot take a trip", ErrInvalidStatus, d.ID, d.Status)
	}
	return v, d, nil
}
