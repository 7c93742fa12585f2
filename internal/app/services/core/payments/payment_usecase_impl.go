package payments

import (
	"context"
	"errors"
	"sync"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	PaymentGateway contracts.PaymentGatewayService
	Log            *zap.Logger
}

func NewPaymentUsecase(paymentGateway contracts.PaymentGatewayService, logger *zap.Logger) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentGateway: paymentGateway,
			Log:            logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateOrder(ctx context.Context, request *requests.PaymentRequest) (*responses.CreateOrderResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("amount", request.Amount),
		zap.String("currency", request.Currency),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// Razorpay takes amounts in paise.
	order, err := uc.PaymentGateway.CreateOrder(ctx, request.Amount*100, request.Currency, request.Receipt)
	if err != nil {
		return nil, err
	}

	return &responses.CreateOrderResponse{
		Success:  true,
		OrderID:  order.ID,
		Amount:   request.Amount,
		Currency: request.Currency,
	}, nil
}

func (uc *paymentUsecase) VerifyPayment(ctx context.Context, request *requests.VerifyPaymentRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("order_id", request.RazorpayOrderID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	if !uc.PaymentGateway.VerifySignature(request.RazorpayOrderID, request.RazorpayPaymentID, request.RazorpaySignature) {
		return exceptions.ErrPaymentSignatureInvalid(errors.New("signature mismatch"))
	}
	return nil
}
