package models

import "time"

// Payment methods and outcomes.
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPayPal     = "paypal"

	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// Payment records one adjudication attempt against an order. Amount is
// always the order's frozen total. TransactionID is set iff the attempt
// succeeded; FailureReason iff it failed.
type Payment struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID       string    `json:"order_id" gorm:"index;type:varchar(36)"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=credit_card paypal"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transaction_id"`
	CardLastFour  string    `json:"card_last_four,omitempty" gorm:"type:varchar(4)"`
	PayPalEmail   string    `json:"paypal_email,omitempty" gorm:"type:varchar(255)"`
	FailureReason *string   `json:"failure_reason"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsSuccessful reports whether the payment attempt succeeded.
func (p *Payment) IsSuccessful() bool {
	return p.Status == PaymentStatusSuccess
}
