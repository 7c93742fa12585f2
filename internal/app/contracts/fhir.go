package contracts

import (
	"context"
	"net/url"

	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

// FhirGateway is the single client for the upstream FHIR server. Search
// results are fully drained across pagination links before returning.
type FhirGateway interface {
	CreateResource(ctx context.Context, resourceType string, resource, out interface{}) error
	UpdateResource(ctx context.Context, resourceType, resourceID string, resource, out interface{}) error
	DeleteResource(ctx context.Context, resourceType, resourceID string) error
	SearchResources(ctx context.Context, resourceType string, query url.Values) ([]json.RawMessage, error)
	SearchBundle(ctx context.Context, resourceType string, query url.Values) (*fhir_dto.Bundle, error)
	PostTransaction(ctx context.Context, bundle *fhir_dto.TransactionBundle) (*fhir_dto.Bundle, error)
}

type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}
