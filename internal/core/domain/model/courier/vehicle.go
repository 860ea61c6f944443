package courier

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// VehicleType determines the average speed used for delivery estimates.
type VehicleType int

const (
	VehicleUnknown VehicleType = iota
	Bicycle
	Motorcycle
	Car
)

// getVehicleStrings returns a map of known vehicles to their wire names.
func getVehicleStrings() map[VehicleType]string {
	return map[VehicleType]string{
		Bicycle:    "BICYCLE",
		Motorcycle: "MOTORCYCLE",
		Car:        "CAR",
	}
}

// getVehicleSpeedsKmh returns urban averages, not top speeds.
func getVehicleSpeedsKmh() map[VehicleType]float64 {
	return map[VehicleType]float64{
		Bicycle:    15,
		Motorcycle: 30,
		Car:        25,
	}
}

// ParseVehicleType converts a wire name such as "motorcycle" into a VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for v, name := range getVehicleStrings() {
		if name == needle {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%q is not a known vehicle", s))
}

func (v VehicleType) Validate() error {
	if _, ok := getVehicleStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%d is not a known vehicle", v))
	}
	return nil
}

func (v VehicleType) String() string {
	if name, ok := getVehicleStrings()[v]; ok {
		return name
	}
	return "UNKNOWN"
}

// SpeedKmh returns the average speed of the vehicle, or 0 for an unknown vehicle.
func (v VehicleType) SpeedKmh() float64 {
	return getVehicleSpeedsKmh()[v]
}
