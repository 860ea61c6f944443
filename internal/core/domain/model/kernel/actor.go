package kernel

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Role is the kind of participant acting on an order or delivery.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleRestaurant
	RoleCourier
)

// getRoleStrings returns a map of known roles to the lower-case names used by the gateway headers.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer:   "customer",
		RoleRestaurant: "restaurant",
		RoleCourier:    "courier",
	}
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// ParseRole accepts the lower-case role names used by the gateway headers.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for r, name := range getRoleStrings() {
		if name == needle {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Actor is the authenticated caller. ID is the user id for customers and restaurant
// owners and the courier id for couriers. The HTTP adapter derives a courier's id from
// the user id the gateway sends.
type Actor struct {
	Role Role
	ID   UUID
}

// NewActor validates role and id and builds an Actor.
//
// Returns:
//   - Actor: the caller
//   - error: ErrValueIsInvalid for an unknown role, or the id validation error
func NewActor(role Role, id UUID) (Actor, error) {
	if _, ok := getRoleStrings()[role]; !ok {
		return Actor{}, errs.NewValueIsInvalidError("role")
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{Role: role, ID: id}, nil
}

func (a Actor) String() string {
	return a.Role.String() + ":" + a.ID.String()
}
