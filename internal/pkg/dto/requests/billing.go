package requests

type BillingInfo struct {
	InvoiceNumber string `json:"invoice_number" validate:"required"`
}
