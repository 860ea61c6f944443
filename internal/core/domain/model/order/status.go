package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PENDING ──> PREPARING ──> READY ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │
//	   └────────────┴──> CANCELLED
//
// Which role may request which target is decided by RoleMayRequest; the table here
// only says which edges exist.
//
// Example:
//
//	to, err := order.ParseStatus("ready")
//	if err != nil {
//	    return err
//	}
//	if !o.Status().CanTransitionTo(to) {
//	    // InvalidTransition
//	}
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	// Pending is the initial status; the restaurant has not accepted the order yet.
	Pending
	// Preparing means the restaurant accepted the order and is cooking.
	Preparing
	// Ready means the food waits for a courier. A Delivery exists from here on.
	Ready
	// OutForDelivery means the courier picked the order up.
	OutForDelivery
	// Delivered is final.
	Delivered
	// Cancelled is final. Only PENDING and PREPARING orders can be cancelled.
	Cancelled
)

// getStatusStrings returns a map of every Status value to its wire name.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getTransitions returns the allowed outgoing edges of each status.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Pending:        {Preparing, Cancelled},
		Preparing:      {Ready, Cancelled},
		Ready:          {OutForDelivery},
		OutForDelivery: {Delivered},
	}
}

// ParseStatus converts the persisted / wire name of a status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name, e.g. "OUT_FOR_DELIVERY".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows s -> to.
// Self-transitions are never allowed.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}
