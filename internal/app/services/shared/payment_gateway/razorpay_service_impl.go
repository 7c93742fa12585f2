package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	razorpayServiceInstance contracts.PaymentGatewayService
	onceRazorpayService     sync.Once
)

type razorpayService struct {
	BaseUrl    string
	KeyID      string
	KeySecret  string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceRazorpayService.Do(func() {
		razorpayServiceInstance = &razorpayService{
			BaseUrl:    internalConfig.Razorpay.BaseUrl,
			KeyID:      internalConfig.Razorpay.KeyID,
			KeySecret:  internalConfig.Razorpay.KeySecret,
			HttpClient: &http.Client{Timeout: 30 * time.Second},
			Log:        logger,
		}
	})
	return razorpayServiceInstance
}

func (s *razorpayService) CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (*responses.RazorpayOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("amount_paise", amountPaise),
		zap.String("currency", currency),
	)

	payload := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+"/orders", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(s.KeyID, s.KeySecret)

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment gateway")
	}
	if resp.StatusCode != constvars.StatusOK {
		s.Log.Error("razorpayService.CreateOrder gateway rejected order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPaymentOrderCreate(fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(body)))
	}

	var order responses.RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment gateway")
	}
	return &order, nil
}

// VerifySignature checks the gateway callback signature, an HMAC-SHA256 of
// "<order_id>|<payment_id>" keyed with the secret.
func (s *razorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
