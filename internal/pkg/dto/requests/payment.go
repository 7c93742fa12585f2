package requests

// PaymentRequest amounts are in whole rupees; the gateway bridge converts to
// paise before hitting Razorpay.
type PaymentRequest struct {
	Amount   int    `json:"amount" validate:"gt=0"`
	Currency string `json:"currency" validate:"required"`
	Receipt  string `json:"receipt" validate:"required"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}
