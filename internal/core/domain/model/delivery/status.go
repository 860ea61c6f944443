package delivery

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// A delivery moves strictly forward through its states, one step at a time.
//
// State transitions:
//
//	PENDING ──> ACCEPTED ──> PICKED_UP ──> DELIVERED
//
// The string form is the upper-case name used on the wire and in the
// deliveries.status column.
//
// Example:
//
//	status, err := delivery.ParseStatus("picked_up")
//	if err != nil {
//	    return err
//	}
//	next, ok := status.Next() // DELIVERED, true
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status. The delivery waits for a courier to accept it.
	Pending

	// Accepted means a courier has claimed the delivery and is heading to the restaurant.
	Accepted

	// PickedUp means the courier has collected the order.
	PickedUp

	// Delivered is final. No further transitions are allowed.
	Delivered
)

// getStatusStrings returns a map of valid Status values to their wire names.
// Unknown is excluded so lookups double as validation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
	}
}

// ParseStatus converts a wire name into a Status. Matching ignores case and
// surrounding whitespace.
//
// Parameters:
//   - s: status name, e.g. "PICKED_UP"
//
// Returns:
//   - Status: the parsed status
//   - error: ErrValueIsInvalid if s names no delivery status
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that s is one of Pending, Accepted, PickedUp or Delivered.
// It is used on values restored from the database.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
//
// Example:
//
//	fmt.Println(delivery.PickedUp) // Output: "PICKED_UP"
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Next returns the only status reachable from s.
// The boolean is false for Delivered and Unknown.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Accepted, true
	case Accepted:
		return PickedUp, true
	case PickedUp:
		return Delivered, true
	case Unknown, Delivered:
	}
	return Unknown, false
}

// CanTransitionTo reports whether to is the next status after s.
func (s Status) CanTransitionTo(to Status) bool {
	next, ok := s.Next()
	return ok && next == to
}

// IsActive reports whether a courier is currently working the delivery.
func (s Status) IsActive() bool {
	return s == Accepted || s == PickedUp
}
