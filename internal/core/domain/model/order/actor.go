package order

import "fooddelivery/internal/core/domain/model/kernel"

// getRoleTargets lists the statuses each role may request.
func getRoleTargets() map[kernel.Role][]Status {
	//nolint:exhaustive // unknown role may request nothing
	return map[kernel.Role][]Status{
		kernel.RoleRestaurant: {Preparing, Ready, Cancelled},
		kernel.RoleCourier:    {OutForDelivery, Delivered},
		kernel.RoleCustomer:   {Cancelled},
	}
}

// RoleMayRequest reports whether role is permitted to move an order into to.
func RoleMayRequest(role kernel.Role, to Status) bool {
	for _, s := range getRoleTargets()[role] {
		if s == to {
			return true
		}
	}
	return false
}

func defaultCancellationReason(role kernel.Role) string {
	if role == kernel.RoleRestaurant {
		return "Rejected by restaurant"
	}
	return "Cancelled by customer"
}
