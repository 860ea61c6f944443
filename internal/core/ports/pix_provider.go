package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// PixCharge is an issued PIX QR code. QRCodeImage is a base64 encoded PNG.
type PixCharge struct {
	Code        string
	QRCodeImage string
	PixKey      string
	ExpiresAt   time.Time
}

// PixPaymentStatus is the provider-side state of a PIX charge.
type PixPaymentStatus string

const (
	PixStatusPending PixPaymentStatus = "PENDING"
	PixStatusPaid    PixPaymentStatus = "PAID"
	PixStatusExpired PixPaymentStatus = "EXPIRED"
)

// PixProvider issues and polls PIX charges. Failures abort the calling operation;
// nothing is retried.
type PixProvider interface {
	// GenerateQrCode issues a charge of amount minor units for orderID, valid for expiresInMinutes.
	GenerateQrCode(ctx context.Context, amount int64, orderID kernel.UUID, expiresInMinutes int) (PixCharge, error)

	// CheckPaymentStatus reports whether the charge identified by code was paid.
	CheckPaymentStatus(ctx context.Context, code string) (PixPaymentStatus, error)
}
