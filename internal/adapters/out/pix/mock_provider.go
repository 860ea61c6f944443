// Package pix holds an in-memory PIX provider for local runs and tests. Charges live in
// process memory; MarkPaid simulates the customer paying a QR code.
package pix

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSizePx = 256

type charge struct {
	ports.PixCharge
	orderID kernel.UUID
	amount  int64
	paid    bool
}

// MockProvider is an in-memory PIX provider. Charges expire after the requested window
// and are settled with MarkPaid. It keeps one open charge per order.
//
// Example:
//
//	provider := pix.NewMockProvider("pix@fooddelivery.local")
//	charge, _ := provider.GenerateQrCode(ctx, 4590, orderID, 30)
//	_ = provider.MarkPaid(charge.Code)
//	status, _ := provider.CheckPaymentStatus(ctx, charge.Code) // PAID
type MockProvider struct {
	mu      sync.RWMutex
	pixKey  string
	charges map[string]*charge
	byOrder map[kernel.UUID]string
	now     func() time.Time
}

var _ ports.PixProvider = (*MockProvider)(nil)

// NewMockProvider creates a provider that issues charges to pixKey.
func NewMockProvider(pixKey string) *MockProvider {
	return &MockProvider{
		pixKey:  pixKey,
		charges: make(map[string]*charge),
		byOrder: make(map[kernel.UUID]string),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GenerateQrCode returns the open charge of the order when one exists for the same amount,
// otherwise it issues a new one.
func (p *MockProvider) GenerateQrCode(
	ctx context.Context,
	amount int64,
	orderID kernel.UUID,
	expiresInMinutes int,
) (ports.PixCharge, error) {
	if err := ctx.Err(); err != nil {
		return ports.PixCharge{}, err
	}
	if amount <= 0 {
		return ports.PixCharge{}, errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}
	if expiresInMinutes <= 0 {
		return ports.PixCharge{}, errs.NewValueIsOutOfRangeError("expiresInMinutes", expiresInMinutes, 1, nil)
	}

	now := p.now()

	p.mu.RLock()
	if code, ok := p.byOrder[orderID]; ok {
		existing := p.charges[code]
		if existing.amount == amount && !existing.paid && now.Before(existing.ExpiresAt) {
			p.mu.RUnlock()
			return existing.PixCharge, nil
		}
	}
	p.mu.RUnlock()

	code := payload(p.pixKey, orderID, amount)
	png, err := qrcode.Encode(code, qrcode.Medium, qrCodeSizePx)
	if err != nil {
		return ports.PixCharge{}, fmt.Errorf("render qr code: %w", err)
	}

	issued := &charge{
		PixCharge: ports.PixCharge{
			Code:        code,
			QRCodeImage: base64.StdEncoding.EncodeToString(png),
			PixKey:      p.pixKey,
			ExpiresAt:   now.Add(time.Duration(expiresInMinutes) * time.Minute),
		},
		orderID: orderID,
		amount:  amount,
	}

	p.mu.Lock()
	p.charges[code] = issued
	p.byOrder[orderID] = code
	p.mu.Unlock()

	return issued.PixCharge, nil
}

// CheckPaymentStatus reports PENDING, PAID or EXPIRED for a charge.
//
// Returns:
//   - ErrObjectNotFound for a code this provider never issued
func (p *MockProvider) CheckPaymentStatus(ctx context.Context, code string) (ports.PixPaymentStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	c, ok := p.charges[code]
	switch {
	case !ok:
		return "", errs.NewObjectNotFoundError("pixCode", code)
	case c.paid:
		return ports.PixStatusPaid, nil
	case !p.now().Before(c.ExpiresAt):
		return ports.PixStatusExpired, nil
	default:
		return ports.PixStatusPending, nil
	}
}

// MarkPaid settles an open charge. Expired charges cannot be paid.
func (p *MockProvider) MarkPaid(code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.charges[code]
	if !ok {
		return errs.NewObjectNotFoundError("pixCode", code)
	}
	if !c.paid && !p.now().Before(c.ExpiresAt) {
		return errs.NewPreconditionFailedError("pixCode", "charge expired")
	}
	c.paid = true
	return nil
}

// payload is a copy-and-paste PIX string: key, transaction id and amount in cents.
func payload(pixKey string, orderID kernel.UUID, amount int64) string {
	txID := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")
	return fmt.Sprintf("PIX:%s:%s:%s:%d", pixKey, orderID.String(), txID[:16], amount)
}
