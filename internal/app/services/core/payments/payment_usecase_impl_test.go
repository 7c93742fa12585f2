package payments

import (
	"context"
	"testing"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentGateway struct {
	lastAmountPaise int
	lastCurrency    string
	lastReceipt     string
	order           *responses.RazorpayOrder
	signatureValid  bool
}

func (f *fakePaymentGateway) CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (*responses.RazorpayOrder, error) {
	f.lastAmountPaise = amountPaise
	f.lastCurrency = currency
	f.lastReceipt = receipt
	return f.order, nil
}

func (f *fakePaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return f.signatureValid
}

func TestCreateOrder_ConvertsRupeesToPaise(t *testing.T) {
	gateway := &fakePaymentGateway{
		order: &responses.RazorpayOrder{ID: "order_123", Amount: 10000, Currency: "INR"},
	}
	uc := &paymentUsecase{PaymentGateway: gateway, Log: zap.NewNop()}

	response, err := uc.CreateOrder(context.Background(), &requests.PaymentRequest{
		Amount:   100,
		Currency: "INR",
		Receipt:  "rcpt-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 10000, gateway.lastAmountPaise)
	assert.Equal(t, "INR", gateway.lastCurrency)
	assert.Equal(t, "rcpt-1", gateway.lastReceipt)
	// The response echoes the original amount in rupees.
	assert.Equal(t, 100, response.Amount)
	assert.Equal(t, "order_123", response.OrderID)
	assert.True(t, response.Success)
}

func TestVerifyPayment(t *testing.T) {
	request := &requests.VerifyPaymentRequest{
		RazorpayOrderID:   "order_123",
		RazorpayPaymentID: "pay_456",
		RazorpaySignature: "deadbeef",
	}

	t.Run("valid signature", func(t *testing.T) {
		uc := &paymentUsecase{PaymentGateway: &fakePaymentGateway{signatureValid: true}, Log: zap.NewNop()}
		assert.NoError(t, uc.VerifyPayment(context.Background(), request))
	})

	t.Run("invalid signature", func(t *testing.T) {
		uc := &paymentUsecase{PaymentGateway: &fakePaymentGateway{}, Log: zap.NewNop()}

		err := uc.VerifyPayment(context.Background(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
