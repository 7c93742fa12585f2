package fhir

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	fhirGatewayInstance contracts.FhirGateway
	onceFhirGateway     sync.Once
)

type fhirGateway struct {
	BaseUrl       string
	TokenProvider contracts.TokenProvider
	HttpClient    *http.Client
	Log           *zap.Logger
}

func NewFhirGateway(baseUrl string, tokenProvider contracts.TokenProvider, logger *zap.Logger) contracts.FhirGateway {
	onceFhirGateway.Do(func() {
		fhirGatewayInstance = &fhirGateway{
			BaseUrl:       baseUrl,
			TokenProvider: tokenProvider,
			HttpClient:    &http.Client{Timeout: 30 * time.Second},
			Log:           logger,
		}
	})
	return fhirGatewayInstance
}

// do sends one authenticated FHIR request and returns the response body and
// status. Upstream errors are not retried.
func (c *fhirGateway) do(ctx context.Context, method, requestUrl string, body []byte) ([]byte, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestUrl, reader)
	if err != nil {
		c.Log.Error("fhirGateway.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set("Accept", constvars.MIMEApplicationFHIRJSON)

	token, err := c.TokenProvider.AccessToken(ctx)
	if err != nil {
		return nil, 0, err
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("fhirGateway.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, exceptions.ErrDecodeResponse(err, "FHIR server")
	}
	return responseBody, resp.StatusCode, nil
}

// upstreamError extracts the OperationOutcome diagnostics when the server
// sends one, falling back to the raw body.
func (c *fhirGateway) upstreamError(ctx context.Context, statusCode int, body []byte, resourceType string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	detail := string(body)
	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(body, &outcome); err == nil && len(outcome.Issue) > 0 && outcome.Issue[0].Diagnostics != "" {
		detail = outcome.Issue[0].Diagnostics
	}

	c.Log.Error("fhirGateway upstream error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
	)
	return exceptions.ErrFHIRUpstream(statusCode, detail, resourceType)
}

func (c *fhirGateway) CreateResource(ctx context.Context, resourceType string, resource, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("fhirGateway.CreateResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)

	requestJSON, err := json.Marshal(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	body, statusCode, err := c.do(ctx, constvars.MethodPost, fmt.Sprintf("%s/%s", c.BaseUrl, resourceType), requestJSON)
	if err != nil {
		return err
	}
	if statusCode != constvars.StatusOK && statusCode != constvars.StatusCreated {
		return c.upstreamError(ctx, statusCode, body, resourceType)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return exceptions.ErrDecodeResponse(err, resourceType)
		}
	}
	return nil
}

func (c *fhirGateway) UpdateResource(ctx context.Context, resourceType, resourceID string, resource, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("fhirGateway.UpdateResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)

	requestJSON, err := json.Marshal(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	body, statusCode, err := c.do(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, resourceID), requestJSON)
	if err != nil {
		return err
	}
	if statusCode != constvars.StatusOK && statusCode != constvars.StatusCreated {
		return c.upstreamError(ctx, statusCode, body, resourceType)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return exceptions.ErrDecodeResponse(err, resourceType)
		}
	}
	return nil
}

func (c *fhirGateway) DeleteResource(ctx context.Context, resourceType, resourceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("fhirGateway.DeleteResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)

	body, statusCode, err := c.do(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, resourceID), nil)
	if err != nil {
		return err
	}
	if statusCode != constvars.StatusOK && statusCode != constvars.StatusNoContent {
		return c.upstreamError(ctx, statusCode, body, resourceType)
	}
	return nil
}

func (c *fhirGateway) SearchBundle(ctx context.Context, resourceType string, query url.Values) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("fhirGateway.SearchBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingQueryKey, query.Encode()),
	)

	searchUrl := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	if len(query) > 0 {
		searchUrl += "?" + query.Encode()
	}

	body, statusCode, err := c.do(ctx, constvars.MethodGet, searchUrl, nil)
	if err != nil {
		return nil, err
	}
	if statusCode != constvars.StatusOK {
		return nil, c.upstreamError(ctx, statusCode, body, resourceType)
	}

	var bundle fhir_dto.Bundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	return &bundle, nil
}

// SearchResources drains every page of the search by following the bundle's
// next link until the server stops sending one.
func (c *fhirGateway) SearchResources(ctx context.Context, resourceType string, query url.Values) ([]json.RawMessage, error) {
	bundle, err := c.SearchBundle(ctx, resourceType, query)
	if err != nil {
		return nil, err
	}

	resources := make([]json.RawMessage, 0, len(bundle.Entry))
	for {
		for _, entry := range bundle.Entry {
			if entry.Resource != nil {
				resources = append(resources, entry.Resource)
			}
		}

		nextUrl := nextLink(bundle)
		if nextUrl == "" {
			return resources, nil
		}

		body, statusCode, err := c.do(ctx, constvars.MethodGet, nextUrl, nil)
		if err != nil {
			return nil, err
		}
		if statusCode != constvars.StatusOK {
			return nil, c.upstreamError(ctx, statusCode, body, resourceType)
		}

		next := &fhir_dto.Bundle{}
		if err := json.Unmarshal(body, next); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, resourceType)
		}
		bundle = next
	}
}

func (c *fhirGateway) PostTransaction(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("fhirGateway.PostTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("entries", len(bundle.Entry)),
	)

	requestJSON, err := json.Marshal(bundle)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, statusCode, err := c.do(ctx, constvars.MethodPost, c.BaseUrl, requestJSON)
	if err != nil {
		return nil, err
	}
	if statusCode != constvars.StatusOK {
		return nil, c.upstreamError(ctx, statusCode, body, constvars.ResourceBundle)
	}

	var response fhir_dto.Bundle
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
	}
	return &response, nil
}

func nextLink(bundle *fhir_dto.Bundle) string {
	for _, link := range bundle.Link {
		if link.Relation == constvars.BundleLinkRelNext {
			return link.URL
		}
	}
	return ""
}
