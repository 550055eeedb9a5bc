package entity

// PaymentType enumerates the payment providers an account can register.
type PaymentType string

const (
	PaymentTypePayPal     PaymentType = "PAYPAL"
	PaymentTypeApplePay   PaymentType = "APPLE_PAY"
	PaymentTypeGooglePay  PaymentType = "GOOGLE_PAY"
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
)

// ValidPaymentType reports whether the given value names a supported provider.
func ValidPaymentType(value string) bool {
	switch PaymentType(value) {
	case PaymentTypePayPal, PaymentTypeApplePay, PaymentTypeGooglePay, PaymentTypeCreditCard:
		return true
	}

	return false
}

// PaymentMethod is a payment provider registered by an account.
type PaymentMethod struct {
	ID     int64
	UserID int64
	Type   PaymentType
}
