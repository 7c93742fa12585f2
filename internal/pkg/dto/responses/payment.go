package responses

// RazorpayOrder mirrors the fields of the gateway's order entity that the
// service reads back.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type CreateOrderResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}
