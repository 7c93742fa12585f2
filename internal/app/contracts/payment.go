package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, request *requests.PaymentRequest) (*responses.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, request *requests.VerifyPaymentRequest) error
}
