package courier_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailable(t *testing.T, vehicle courier.VehicleType) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), vehicle, 0)
	require.NoError(t, err)
	require.NoError(t, c.GoOnline())
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("registers offline with the default radius", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), courier.Motorcycle, 0)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, courier.Offline, c.Availability())
		assert.InDelta(t, courier.DefaultDeliveryRadiusKm, c.DeliveryRadiusKm(), 1e-9)
		assert.Nil(t, c.Location())
		assert.Zero(t, c.TotalDeliveries())
	})

	t.Run("aggregates validation errors", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, kernel.UUID{}, courier.VehicleUnknown, -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCourier_Validate_ZeroValue(t *testing.T) {
	var c *courier.Courier
	require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	require.ErrorIs(t, (&courier.Courier{}).Validate(), courier.ErrCourierIsNotConstructed)
}

func TestCourier_Availability(t *testing.T) {
	t.Run("occupy and release", func(t *testing.T) {
		c := newAvailable(t, courier.Bicycle)

		require.NoError(t, c.Occupy())
		assert.Equal(t, courier.Busy, c.Availability())

		require.NoError(t, c.Release())
		assert.Equal(t, courier.Available, c.Availability())
		assert.Equal(t, 1, c.TotalDeliveries())
	})

	t.Run("busy courier cannot be occupied again", func(t *testing.T) {
		c := newAvailable(t, courier.Bicycle)
		require.NoError(t, c.Occupy())

		err := c.Occupy()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "courier is not available")
	})

	t.Run("offline courier cannot be occupied", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), courier.Car, 5)
		require.NoError(t, err)

		require.ErrorIs(t, c.Occupy(), errs.ErrPreconditionFailed)
	})

	t.Run("release requires busy", func(t *testing.T) {
		c := newAvailable(t, courier.Car)

		require.ErrorIs(t, c.Release(), errs.ErrPreconditionFailed)
		assert.Zero(t, c.TotalDeliveries())
	})

	t.Run("busy courier cannot go offline", func(t *testing.T) {
		c := newAvailable(t, courier.Car)
		require.NoError(t, c.Occupy())

		require.ErrorIs(t, c.GoOffline(), errs.ErrPreconditionFailed)
		require.ErrorIs(t, c.GoOnline(), errs.ErrPreconditionFailed)
	})

	t.Run("online and offline are idempotent", func(t *testing.T) {
		c := newAvailable(t, courier.Car)

		require.NoError(t, c.GoOnline())
		require.NoError(t, c.GoOffline())
		require.NoError(t, c.GoOffline())
		assert.Equal(t, courier.Offline, c.Availability())
	})
}

func TestCourier_Distance(t *testing.T) {
	c := newAvailable(t, courier.Bicycle)
	target, _ := kernel.NewLocation(0, 1)

	_, known, err := c.DistanceKmTo(target)
	require.NoError(t, err)
	assert.False(t, known)

	origin, _ := kernel.NewLocation(0, 0)
	require.NoError(t, c.MoveTo(origin))

	d, known, err := c.DistanceKmTo(target)
	require.NoError(t, err)
	assert.True(t, known)
	assert.InDelta(t, 111.19, d, 0.01)
}

func TestCourier_MinutesToCover(t *testing.T) {
	tests := []struct {
		vehicle courier.VehicleType
		want    int
	}{
		{courier.Bicycle, 50},    // 10 km at 15 km/h = 40 min
		{courier.Car, 34},        // 24 min
		{courier.Motorcycle, 30}, // 20 min
	}

	for _, tt := range tests {
		t.Run(tt.vehicle.String(), func(t *testing.T) {
			c := newAvailable(t, tt.vehicle)

			got, err := c.MinutesToCover(10)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	c := newAvailable(t, courier.Car)
	_, err := c.MinutesToCover(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestRestoreCourier(t *testing.T) {
	loc, _ := kernel.NewLocation(1, 2)

	c, err := courier.RestoreCourier(courier.RestoreParams{
		ID:               kernel.NewUUID(),
		UserID:           kernel.NewUUID(),
		Availability:     courier.Busy,
		Vehicle:          courier.Motorcycle,
		Location:         &loc,
		DeliveryRadiusKm: 7,
		TotalDeliveries:  12,
		Rating:           4.8,
	})

	require.NoError(t, err)
	assert.Equal(t, courier.Busy, c.Availability())
	assert.Equal(t, 12, c.TotalDeliveries())
	assert.InDelta(t, 4.8, c.Rating(), 1e-9)

	_, err = courier.RestoreCourier(courier.RestoreParams{
		ID: kernel.NewUUID(), UserID: kernel.NewUUID(), Vehicle: courier.Car, DeliveryRadiusKm: 1, Rating: 6,
	})
	require.Error(t, err)
}

func TestParseVehicleAndAvailability(t *testing.T) {
	v, err := courier.ParseVehicleType("motorcycle")
	require.NoError(t, err)
	assert.Equal(t, courier.Motorcycle, v)
	assert.InDelta(t, 30, v.SpeedKmh(), 1e-9)

	_, err = courier.ParseVehicleType("SCOOTER")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	a, err := courier.ParseAvailability("BUSY")
	require.NoError(t, err)
	assert.Equal(t, courier.Busy, a)
}
