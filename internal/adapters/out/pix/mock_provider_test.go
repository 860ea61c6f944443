package pix

import (
	"encoding/base64"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderAt(now *time.Time) *MockProvider {
	p := NewMockProvider("pix@example.com")
	p.now = func() time.Time { return *now }
	return p
}

func TestMockProvider_GenerateQrCode(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	p := newProviderAt(&now)
	orderID := kernel.NewUUID()

	charge, err := p.GenerateQrCode(t.Context(), 7000, orderID, 5)

	require.NoError(t, err)
	assert.Contains(t, charge.Code, orderID.String())
	assert.Equal(t, "pix@example.com", charge.PixKey)
	assert.Equal(t, now.Add(5*time.Minute), charge.ExpiresAt)

	png, err := base64.StdEncoding.DecodeString(charge.QRCodeImage)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestMockProvider_ReusesOpenChargeOfOrder(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	p := newProviderAt(&now)
	orderID := kernel.NewUUID()

	first, err := p.GenerateQrCode(t.Context(), 7000, orderID, 5)
	require.NoError(t, err)
	again, err := p.GenerateQrCode(t.Context(), 7000, orderID, 5)
	require.NoError(t, err)
	assert.Equal(t, first.Code, again.Code)

	other, err := p.GenerateQrCode(t.Context(), 8000, orderID, 5)
	require.NoError(t, err)
	assert.NotEqual(t, first.Code, other.Code)
}

func TestMockProvider_StatusLifecycle(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	p := newProviderAt(&now)

	paid, err := p.GenerateQrCode(t.Context(), 1000, kernel.NewUUID(), 5)
	require.NoError(t, err)
	expiring, err := p.GenerateQrCode(t.Context(), 1000, kernel.NewUUID(), 5)
	require.NoError(t, err)

	status, err := p.CheckPaymentStatus(t.Context(), paid.Code)
	require.NoError(t, err)
	assert.Equal(t, ports.PixStatusPending, status)

	require.NoError(t, p.MarkPaid(paid.Code))
	now = now.Add(10 * time.Minute)

	status, err = p.CheckPaymentStatus(t.Context(), paid.Code)
	require.NoError(t, err)
	assert.Equal(t, ports.PixStatusPaid, status)

	status, err = p.CheckPaymentStatus(t.Context(), expiring.Code)
	require.NoError(t, err)
	assert.Equal(t, ports.PixStatusExpired, status)
	require.ErrorIs(t, p.MarkPaid(expiring.Code), errs.ErrPreconditionFailed)
}

func TestMockProvider_Rejections(t *testing.T) {
	p := NewMockProvider("key")

	_, err := p.GenerateQrCode(t.Context(), 0, kernel.NewUUID(), 5)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = p.GenerateQrCode(t.Context(), 100, kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = p.CheckPaymentStatus(t.Context(), "unknown")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
