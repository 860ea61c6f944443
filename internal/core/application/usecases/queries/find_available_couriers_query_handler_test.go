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

func TestFindAvailableCouriersQueryHandler_NearestFirstWithinRadius(t *testing.T) {
	couriers := new(MockCourierRepository)
	catalogReader := new(MockCatalogReader)
	handler := queries.NewFindAvailableCouriersQueryHandler(couriers, catalogReader)

	restaurantID := kernel.NewUUID()
	origin := location(t, -23.5505, -46.6333)
	near := location(t, -23.5520, -46.6340)
	farther := location(t, -23.5700, -46.6500)
	outside := location(t, -22.9068, -43.1729)

	far := courierAt(t, courier.Car, &farther)
	nearest := courierAt(t, courier.Bicycle, &near)
	rio := courierAt(t, courier.Motorcycle, &outside)

	catalogReader.On("GetRestaurant", mock.Anything, restaurantID).
		Return(restaurantAt(restaurantID, kernel.NewUUID(), origin), nil)
	couriers.On("ListAvailableWithLocation", mock.Anything).
		Return([]*courier.Courier{far, rio, nearest}, nil)

	q, err := queries.NewFindAvailableCouriersQuery(restaurantID, 0)
	require.NoError(t, err)
	assert.Zero(t, q.RadiusKm())

	got, err := handler.Handle(t.Context(), q)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, nearest.ID(), got[0].Courier.ID())
	assert.Equal(t, far.ID(), got[1].Courier.ID())
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestFindAvailableCouriersQuery_RejectsNegativeRadius(t *testing.T) {
	_, err := queries.NewFindAvailableCouriersQuery(kernel.NewUUID(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFindAvailableCouriersQueryHandler_UnknownRestaurant(t *testing.T) {
	couriers := new(MockCourierRepository)
	catalogReader := new(MockCatalogReader)
	handler := queries.NewFindAvailableCouriersQueryHandler(couriers, catalogReader)
	id := kernel.NewUUID()
	catalogReader.On("GetRestaurant", mock.Anything, id).
		Return(restaurantAt(kernel.UUID{}, kernel.UUID{}, kernel.Location{}), errs.NewObjectNotFoundError("restaurant", id))

	q, err := queries.NewFindAvailableCouriersQuery(id, 5)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), q)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	couriers.AssertNotCalled(t, "ListAvailableWithLocation", mock.Anything)
}

func TestFindAvailableCouriersQueryHandler_ConfiguredDefaultRadius(t *testing.T) {
	couriers := new(MockCourierRepository)
	catalogReader := new(MockCatalogReader)
	handler := queries.NewFindAvailableCouriersQueryHandler(couriers, catalogReader).WithDefaultRadius(1)
	restaurantID := kernel.NewUUID()
	origin := location(t, -23.5505, -46.6333)
	farther := location(t, -23.5700, -46.6500)
	beyondOneKm := courierAt(t, courier.Car, &farther)

	catalogReader.On("GetRestaurant", mock.Anything, restaurantID).
		Return(restaurantAt(restaurantID, kernel.NewUUID(), origin), nil)
	couriers.On("ListAvailableWithLocation", mock.Anything).
		Return([]*courier.Courier{beyondOneKm}, nil)

	q, err := queries.NewFindAvailableCouriersQuery(restaurantID, 0)
	require.NoError(t, err)

	got, err := handler.Handle(t.Context(), q)

	require.NoError(t, err)
	assert.Empty(t, got)
}
