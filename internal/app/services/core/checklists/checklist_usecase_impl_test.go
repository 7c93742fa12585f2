package checklists

import (
	"context"
	"net/url"
	"testing"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
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

	updatedIDs []string
	deletedIDs []string
}

func (f *fakeFhirGateway) CreateResource(ctx context.Context, resourceType string, resource, out interface{}) error {
	return nil
}

func (f *fakeFhirGateway) UpdateResource(ctx context.Context, resourceType, resourceID string, resource, out interface{}) error {
	f.updatedIDs = append(f.updatedIDs, resourceID)
	return nil
}

func (f *fakeFhirGateway) DeleteResource(ctx context.Context, resourceType, resourceID string) error {
	f.deletedIDs = append(f.deletedIDs, resourceID)
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

func rawDocument(t *testing.T, id, name string) json.RawMessage {
	t.Helper()
	doc := fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		ID:           id,
		Status:       "current",
		Type:         &fhir_dto.CodeableConcept{Text: name},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestDeleteDocuments(t *testing.T) {
	t.Run("no matching document deletes nothing", func(t *testing.T) {
		gateway := &fakeFhirGateway{}
		uc := &checklistUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		_, err := uc.DeleteDocuments(context.Background(), "UHID001", "Blood Work Report")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, gateway.deletedIDs)
	})

	t.Run("deletes every match and reports names and ids", func(t *testing.T) {
		gateway := &fakeFhirGateway{
			searchResults: []json.RawMessage{
				rawDocument(t, "doc-1", "Blood Work Report"),
				rawDocument(t, "doc-2", "Blood Work Report"),
			},
		}
		uc := &checklistUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		deleted, err := uc.DeleteDocuments(context.Background(), "UHID001", "Blood Work Report")

		require.NoError(t, err)
		require.Len(t, deleted, 2)
		assert.Equal(t, "doc-1", deleted[0].DocumentID)
		assert.Equal(t, "Blood Work Report", deleted[0].DocumentName)
		assert.Equal(t, []string{"doc-1", "doc-2"}, gateway.deletedIDs)
		assert.Equal(t, "Blood Work Report", gateway.lastQuery.Get("type:text"))
	})
}

func TestUpdateSingleDocument(t *testing.T) {
	entry := &requests.DocumentEntry{
		DocumentName:      "ECG Report",
		DocumentLink:      "https://files.hospital.com/ecg.pdf",
		AssignedBy:        "Dr. Rao",
		AssignedTimestamp: "2025-06-01T09:00:00",
		UpdatedBy:         "Nurse Joshi",
		UpdatedTimestamp:  "2025-06-02T11:00:00",
	}

	t.Run("no matching document updates nothing", func(t *testing.T) {
		gateway := &fakeFhirGateway{}
		uc := &checklistUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		err := uc.UpdateSingleDocument(context.Background(), "UHID001", entry)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, gateway.updatedIDs)
	})

	t.Run("first match wins", func(t *testing.T) {
		gateway := &fakeFhirGateway{
			searchResults: []json.RawMessage{
				rawDocument(t, "doc-1", "ECG Report"),
				rawDocument(t, "doc-2", "ECG Report"),
			},
		}
		uc := &checklistUsecase{FhirGateway: gateway, Log: zap.NewNop()}

		err := uc.UpdateSingleDocument(context.Background(), "UHID001", entry)

		require.NoError(t, err)
		assert.Equal(t, []string{"doc-1"}, gateway.updatedIDs)
	})
}
