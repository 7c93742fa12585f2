package consents

import (
	"context"
	"net/url"
	"testing"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFhirGateway struct {
	searchResults []json.RawMessage
	lastQuery     url.Values
}

func (f *fakeFhirGateway) CreateResource(ctx context.Context, resourceType string, resource, out interface{}) error {
	return nil
}

func (f *fakeFhirGateway) UpdateResource(ctx context.Context, resourceType, resourceID string, resource, out interface{}) error {
	return nil
}

func (f *fakeFhirGateway) DeleteResource(ctx context.Context, resourceType, resourceID string) error {
	return nil
}

func (f *fakeFhirGateway) SearchResources(ctx context.Context, resourceType string, query url.Values) ([]json.RawMessage, error) {
	f.lastQuery = query
	return f.searchResults, nil
}

func (f *fakeFhirGateway) SearchBundle(ctx context.Context, resourceType string, query url.Values) (*fhir_dto.Bundle, error) {
	return &fhir_dto.Bundle{}, nil
}

func (f *fakeFhirGateway) PostTransaction(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.Bundle, error) {
	return &fhir_dto.Bundle{}, nil
}

func rawConsent(t *testing.T, id, tagCode, dateTime string) json.RawMessage {
	t.Helper()
	consent := fhir_dto.Consent{
		ResourceType: constvars.ResourceConsent,
		ID:           id,
		Meta:         consentTag(tagCode),
		DateTime:     dateTime,
	}
	raw, err := json.Marshal(consent)
	require.NoError(t, err)
	return raw
}

func TestFindLatestConsentFormStatus(t *testing.T) {
	gateway := &fakeFhirGateway{
		searchResults: []json.RawMessage{
			rawConsent(t, "consent-old", constvars.ConsentTagFormStatus, "2025-05-01T10:00:00Z"),
			rawConsent(t, "consent-new", constvars.ConsentTagFormStatus, "2025-06-01T10:00:00Z"),
			rawConsent(t, "consent-form", constvars.ConsentTagFormData, "2025-07-01T10:00:00Z"),
		},
	}
	uc := &consentUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	latest, err := uc.FindLatestConsentFormStatus(context.Background(), "UHID001")

	require.NoError(t, err)
	assert.Equal(t, "consent-new", latest.ID)
	assert.Equal(t, constvars.IdentifierSystemUHID+"|UHID001", gateway.lastQuery.Get("identifier"))
}

func TestFindLatestConsentFormData_NoMatchingTag(t *testing.T) {
	gateway := &fakeFhirGateway{
		searchResults: []json.RawMessage{
			rawConsent(t, "consent-status", constvars.ConsentTagFormStatus, "2025-06-01T10:00:00Z"),
		},
	}
	uc := &consentUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	_, err := uc.FindLatestConsentFormData(context.Background(), "UHID001")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestFindLatestConsentFormStatus_NoConsents(t *testing.T) {
	gateway := &fakeFhirGateway{}
	uc := &consentUsecase{FhirGateway: gateway, Log: zap.NewNop()}

	_, err := uc.FindLatestConsentFormStatus(context.Background(), "UHID001")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestConsentFormStatusResource_StatusMapping(t *testing.T) {
	assert.Equal(t, constvars.ConsentStatusActive, statusFromCode(1))
	assert.Equal(t, constvars.ConsentStatusRejected, statusFromCode(2))
	assert.Equal(t, constvars.ConsentStatusDraft, statusFromCode(0))
	assert.Equal(t, constvars.ConsentStatusDraft, statusFromCode(99))
}
