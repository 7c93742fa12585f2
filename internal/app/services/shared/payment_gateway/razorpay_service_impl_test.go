package payment_gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(baseUrl string) *razorpayService {
	return &razorpayService{
		BaseUrl:    baseUrl,
		KeyID:      "rzp_test_key",
		KeySecret:  "rzp_test_secret",
		HttpClient: &http.Client{Timeout: 5 * time.Second},
		Log:        zap.NewNop(),
	}
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", username)
		assert.Equal(t, "rzp_test_secret", password)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(50000), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.Equal(t, float64(1), payload["payment_capture"])

		fmt.Fprint(w, `{"id": "order_123", "amount": 50000, "currency": "INR", "receipt": "rcpt-1", "status": "created"}`)
	}))
	defer server.Close()

	service := newTestService(server.URL)

	order, err := service.CreateOrder(context.Background(), 50000, "INR", "rcpt-1")

	require.NoError(t, err)
	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, 50000, order.Amount)
}

func TestCreateOrder_GatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"description": "amount too small"}}`)
	}))
	defer server.Close()

	service := newTestService(server.URL)

	_, err := service.CreateOrder(context.Background(), 1, "INR", "rcpt-1")
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	service := newTestService("http://unused")

	mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
	mac.Write([]byte("order_123|pay_456"))
	valid := hex.EncodeToString(mac.Sum(nil))

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, service.VerifySignature("order_123", "pay_456", valid))
	})

	t.Run("tampered signature", func(t *testing.T) {
		assert.False(t, service.VerifySignature("order_123", "pay_456", "deadbeef"))
	})

	t.Run("wrong payment id", func(t *testing.T) {
		assert.False(t, service.VerifySignature("order_123", "pay_789", valid))
	})
}
