package courier

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Availability tells whether a courier can be offered new deliveries.
// Only AVAILABLE couriers see the pending board; a courier working a delivery is BUSY.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	Available
	Busy
	Offline
)

// getAvailabilityStrings returns a map of valid availabilities to their wire names.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Available: "AVAILABLE",
		Busy:      "BUSY",
		Offline:   "OFFLINE",
	}
}

func ParseAvailability(s string) (Availability, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for a, name := range getAvailabilityStrings() {
		if name == needle {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%q is not a known availability", s))
}

func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a known availability", a))
	}
	return nil
}

func (a Availability) String() string {
	if name, ok := getAvailabilityStrings()[a]; ok {
		return name
	}
	return "UNKNOWN"
}
