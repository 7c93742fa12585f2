package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// expirySkew renews the token this long before the identity service says it
// expires, so in-flight requests never carry a token about to lapse.
const expirySkew = 60 * time.Second

var (
	tokenProviderInstance contracts.TokenProvider
	onceTokenProvider     sync.Once
)

type tokenProvider struct {
	tokenUrl     string
	clientID     string
	clientSecret string
	scope        string
	httpClient   *http.Client
	Log          *zap.Logger

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewTokenProvider(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.TokenProvider {
	onceTokenProvider.Do(func() {
		tokenUrl := internalConfig.Identity.TokenUrl
		if tokenUrl == "" {
			tokenUrl = fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", internalConfig.Identity.TenantID)
		}
		tokenProviderInstance = &tokenProvider{
			tokenUrl:     tokenUrl,
			clientID:     internalConfig.Identity.ClientID,
			clientSecret: internalConfig.Identity.ClientSecret,
			scope:        internalConfig.Identity.Scope,
			httpClient:   &http.Client{Timeout: 30 * time.Second},
			Log:          logger,
		}
	})
	return tokenProviderInstance
}

func (p *tokenProvider) AccessToken(ctx context.Context) (string, error) {
	p.mu.RLock()
	if p.token != "" && time.Now().Before(p.expiresAt) {
		defer p.mu.RUnlock()
		return p.token, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if p.token != "" && time.Now().Before(p.expiresAt) {
		return p.token, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("scope", p.scope)

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.tokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	response, err := p.httpClient.Do(request)
	if err != nil {
		p.Log.Error("tokenProvider.AccessToken error sending token request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrIdentityToken(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", exceptions.ErrIdentityToken(err)
	}
	if response.StatusCode != constvars.StatusOK {
		p.Log.Error("tokenProvider.AccessToken identity service rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return "", exceptions.ErrIdentityToken(fmt.Errorf("token endpoint returned %d: %s", response.StatusCode, string(body)))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "identity token endpoint")
	}

	p.token = result.AccessToken
	p.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - expirySkew)

	p.Log.Info("tokenProvider.AccessToken refreshed token",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("expires_in", result.ExpiresIn),
	)
	return p.token, nil
}
