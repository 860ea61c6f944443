package order

import (
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// PaymentType discriminates the Payment variants.
type PaymentType int

const (
	PaymentUnknown PaymentType = iota
	PaymentStoredCard
	PaymentPix
	PaymentCash
)

// getPaymentTypeStrings returns a map of supported payment types to their wire names.
func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentStoredCard: "STORED_CARD",
		PaymentPix:        "PIX",
		PaymentCash:       "CASH",
	}
}

// String returns the wire name of the payment type, or "UNKNOWN".
func (t PaymentType) String() string {
	if s, ok := getPaymentTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParsePaymentType converts a wire name such as "pix" into a PaymentType.
//
// Returns:
//   - PaymentType: the parsed type
//   - error: ErrValueIsInvalid for unsupported payment methods
func ParsePaymentType(s string) (PaymentType, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range getPaymentTypeStrings() {
		if name == needle {
			return t, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a supported payment method", s))
}

// Payment is a sealed union: StoredCardPayment, PixPayment or CashPayment.
type Payment interface {
	Type() PaymentType
	validate(total int64) error
}

// StoredCardPayment charges a card the customer saved earlier.
type StoredCardPayment struct {
	PaymentMethodID kernel.UUID
}

func (StoredCardPayment) Type() PaymentType { return PaymentStoredCard }

func (p StoredCardPayment) validate(int64) error {
	if p.PaymentMethodID.IsZero() {
		return errs.NewValueIsRequiredError("paymentMethodId")
	}
	return nil
}

// PixPayment holds the QR code issued by the PIX provider. QRCodeImage is a base64 PNG.
type PixPayment struct {
	Code        string
	QRCodeImage string
	PixKey      string
	ExpiresAt   time.Time
}

func (PixPayment) Type() PaymentType { return PaymentPix }

func (p PixPayment) validate(int64) error {
	if strings.TrimSpace(p.Code) == "" {
		return errs.NewValueIsRequiredError("pixCode")
	}
	return nil
}

// CashPayment is paid on delivery. ChangeFor, when set, is the note the customer will hand over.
type CashPayment struct {
	ChangeFor *int64
}

func (CashPayment) Type() PaymentType { return PaymentCash }

func (p CashPayment) validate(total int64) error {
	if p.ChangeFor != nil && *p.ChangeFor < total {
		return errs.NewValueIsInvalidErrorWithCause("changeFor",
			fmt.Errorf("change for %d is less than the order total %d", *p.ChangeFor, total))
	}
	return nil
}
