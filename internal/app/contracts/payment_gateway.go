package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (*responses.RazorpayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
