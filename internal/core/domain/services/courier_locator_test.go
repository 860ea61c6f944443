package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierLocator_FindAvailableNearby(t *testing.T) {
	origin := location(t, 0, 0)
	near := location(t, 0.01, 0) // ~1.1 km
	mid := location(t, 0.05, 0)  // ~5.6 km
	far := location(t, 0.3, 0)   // ~33 km
	locator := services.NewCourierLocator()

	t.Run("sorts available couriers nearest first", func(t *testing.T) {
		cMid := availableCourier(t, courier.Car, &mid)
		cNear := availableCourier(t, courier.Bicycle, &near)
		cFar := availableCourier(t, courier.Motorcycle, &far)

		result, err := locator.FindAvailableNearby(origin, []*courier.Courier{cMid, cFar, cNear}, 0)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.True(t, result[0].Courier.IsEqual(cNear))
		assert.True(t, result[1].Courier.IsEqual(cMid))
		assert.Less(t, result[0].DistanceKm, result[1].DistanceKm)
	})

	t.Run("skips busy couriers and unknown positions", func(t *testing.T) {
		busy := availableCourier(t, courier.Car, &near)
		require.NoError(t, busy.Occupy())
		noPosition := availableCourier(t, courier.Car, nil)

		result, err := locator.FindAvailableNearby(origin, []*courier.Courier{busy, noPosition}, 0)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("honours an explicit radius", func(t *testing.T) {
		cNear := availableCourier(t, courier.Car, &near)
		cMid := availableCourier(t, courier.Car, &mid)

		result, err := locator.FindAvailableNearby(origin, []*courier.Courier{cNear, cMid}, 2)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, result[0].Courier.IsEqual(cNear))
	})

	t.Run("fails on an unconstructed courier", func(t *testing.T) {
		_, err := locator.FindAvailableNearby(origin, []*courier.Courier{{}}, 0)

		require.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})
}
