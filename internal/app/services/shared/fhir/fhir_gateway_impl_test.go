package fhir

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticTokenProvider struct {
	token string
}

func (p *staticTokenProvider) AccessToken(ctx context.Context) (string, error) {
	return p.token, nil
}

func newTestGateway(baseUrl string) *fhirGateway {
	return &fhirGateway{
		BaseUrl:       baseUrl,
		TokenProvider: &staticTokenProvider{token: "test-token"},
		HttpClient:    &http.Client{Timeout: 5 * time.Second},
		Log:           zap.NewNop(),
	}
}

func TestSearchResources_DrainsAllPages(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/fhir+json")

		switch r.URL.Path {
		case "/MedicationRequest":
			fmt.Fprintf(w, `{
				"resourceType": "Bundle",
				"type": "searchset",
				"link": [{"relation": "next", "url": "%s/page2"}],
				"entry": [
					{"resource": {"resourceType": "MedicationRequest", "id": "m1"}},
					{"resource": {"resourceType": "MedicationRequest", "id": "m2"}}
				]
			}`, server.URL)
		case "/page2":
			fmt.Fprint(w, `{
				"resourceType": "Bundle",
				"type": "searchset",
				"entry": [{"resource": {"resourceType": "MedicationRequest", "id": "m3"}}]
			}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	query := url.Values{}
	query.Set("subject", "Patient/UH123")
	resources, err := gateway.SearchResources(context.Background(), "MedicationRequest", query)

	require.NoError(t, err)
	assert.Len(t, resources, 3)
}

func TestSearchBundle_UpstreamErrorUsesDiagnostics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{
			"resourceType": "OperationOutcome",
			"issue": [{"severity": "error", "code": "invalid", "diagnostics": "unknown search parameter"}]
		}`)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	_, err := gateway.SearchBundle(context.Background(), "Procedure", url.Values{})

	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	assert.Contains(t, customErr.ClientMessage, "unknown search parameter")
}

func TestPostTransaction_SendsBundleToRoot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		fmt.Fprint(w, `{"resourceType": "Bundle", "type": "transaction-response"}`)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	bundle := &fhir_dto.TransactionBundle{
		ResourceType: "Bundle",
		Type:         "transaction",
		Entry: []fhir_dto.TransactionEntry{
			{
				Resource: map[string]string{"resourceType": "Procedure"},
				Request:  fhir_dto.TransactionRequest{Method: "POST", URL: "Procedure"},
			},
		},
	}

	response, err := gateway.PostTransaction(context.Background(), bundle)

	require.NoError(t, err)
	assert.Equal(t, "transaction-response", response.Type)
}

func TestDeleteResource_AcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Task/t1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	err := gateway.DeleteResource(context.Background(), "Task", "t1")
	assert.NoError(t, err)
}
