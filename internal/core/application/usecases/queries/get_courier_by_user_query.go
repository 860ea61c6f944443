package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCourierByUserQueryIsNotConstructed = errors.New(
	"GetCourierByUserQuery must be created via NewGetCourierByUserQuery constructor",
)

// GetCourierByUserQuery looks up the delivery-person profile registered for a user.
type GetCourierByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourierByUserQuery(userID kernel.UUID) (GetCourierByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCourierByUserQuery{}, err
	}
	return GetCourierByUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierByUserQueryIsNotConstructed)
}

func (q GetCourierByUserQuery) UserID() kernel.UUID { return q.userID }

type GetCourierByUserQueryHandler struct {
	couriers ports.CourierRepository
}

func NewGetCourierByUserQueryHandler(couriers ports.CourierRepository) GetCourierByUserQueryHandler {
	return GetCourierByUserQueryHandler{couriers: couriers}
}

// Handle returns the courier owned by the user, or a NotFound error when the user
// never registered as a courier.
func (h GetCourierByUserQueryHandler) Handle(ctx context.Context, query GetCourierByUserQuery) (*courier.Courier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.couriers.GetByUserID(ctx, query.UserID())
}
