package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCourierByUserQueryHandler(t *testing.T) {
	couriers := new(MockCourierRepository)
	handler := queries.NewGetCourierByUserQueryHandler(couriers)
	c := courierAt(t, courier.Bicycle, nil)
	couriers.On("GetByUserID", mock.Anything, c.UserID()).Return(c, nil)

	query, err := queries.NewGetCourierByUserQuery(c.UserID())
	require.NoError(t, err)

	got, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Same(t, c, got)
	couriers.AssertExpectations(t)
}

func TestGetCourierByUserQueryHandler_UnregisteredUser(t *testing.T) {
	couriers := new(MockCourierRepository)
	handler := queries.NewGetCourierByUserQueryHandler(couriers)
	userID := kernel.NewUUID()
	couriers.On("GetByUserID", mock.Anything, userID).
		Return((*courier.Courier)(nil), errs.NewObjectNotFoundError("courier", userID))

	query, err := queries.NewGetCourierByUserQuery(userID)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetCourierByUserQuery_ZeroValueIsRejected(t *testing.T) {
	_, err := queries.NewGetCourierByUserQuery(kernel.UUID{})
	require.Error(t, err)

	_, err = queries.NewGetCourierByUserQueryHandler(new(MockCourierRepository)).
		Handle(t.Context(), queries.GetCourierByUserQuery{})
	require.ErrorIs(t, err, queries.ErrGetCourierByUserQueryIsNotConstructed)
}
