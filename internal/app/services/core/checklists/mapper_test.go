package checklists

import (
	"testing"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentReferenceResource(t *testing.T) {
	entry := &requests.DocumentEntry{
		DocumentName:      "Blood Work Report",
		DocumentLink:      "https://files.hospital.com/blood-work.pdf",
		AssignedBy:        "Dr. Rao",
		AssignedTimestamp: "2025-06-01T09:00:00",
		UpdatedBy:         "Nurse Joshi",
		UpdatedTimestamp:  "2025-06-02T11:00:00",
	}

	doc := DocumentReferenceResource("UHID001", "", entry)

	assert.Equal(t, "current", doc.Status)
	assert.Equal(t, "Blood Work Report", doc.Type.Text)
	assert.Equal(t, "Patient/UHID001", doc.Subject.Reference)
	require.Len(t, doc.Content, 1)
	assert.Equal(t, "https://files.hospital.com/blood-work.pdf", doc.Content[0].Attachment.URL)
	// Unvalidated documents carry N/A placeholders, not extensions.
	assert.Equal(t, "N/A", doc.Authenticator.Display)
	assert.Empty(t, doc.Extension)
}

func TestDocumentReferenceResource_ValidatedDocument(t *testing.T) {
	entry := &requests.DocumentEntry{
		DocumentName:        "ECG Report",
		AssignedBy:          "Dr. Rao",
		ValidatedBy:         "Dr. Menon",
		ValidationTimestamp: "2025-06-03T14:30:00",
	}

	doc := DocumentReferenceResource("UHID001", "doc-9", entry)

	assert.Equal(t, "doc-9", doc.ID)
	require.Len(t, doc.Extension, 2)
	assert.Equal(t, "Dr. Menon", doc.Extension[0].ValueString)
	assert.Equal(t, "2025-06-03T14:30:00", doc.Extension[1].ValueDateTime)
}

func TestSimplifyDocument(t *testing.T) {
	t.Run("prefers extensions", func(t *testing.T) {
		doc := &fhir_dto.DocumentReference{
			Type:          &fhir_dto.CodeableConcept{Text: "ECG Report"},
			Author:        []fhir_dto.Reference{{Display: "Dr. Rao"}},
			Authenticator: &fhir_dto.Reference{Display: "N/A"},
			Extension: []fhir_dto.Extension{
				{URL: extValidatedBy, ValueString: "Dr. Menon"},
				{URL: extValidationTimestamp, ValueDateTime: "2025-06-03T14:30:00"},
			},
		}

		simplified := SimplifyDocument(doc)

		assert.Equal(t, "Dr. Menon", simplified.ValidatedBy)
		assert.Equal(t, "2025-06-03T14:30:00", simplified.ValidationTimestamp)
	})

	t.Run("falls back to context period and authenticator", func(t *testing.T) {
		doc := &fhir_dto.DocumentReference{
			Type:          &fhir_dto.CodeableConcept{Text: "ECG Report"},
			Authenticator: &fhir_dto.Reference{Display: "Dr. Menon"},
			Context: &fhir_dto.DocumentReferenceContext{
				Period: &fhir_dto.Period{End: "2025-06-04T10:00:00"},
			},
		}

		simplified := SimplifyDocument(doc)

		assert.Equal(t, "Dr. Menon", simplified.ValidatedBy)
		assert.Equal(t, "2025-06-04T10:00:00", simplified.ValidationTimestamp)
	})

	t.Run("last resort is meta lastUpdated and author", func(t *testing.T) {
		doc := &fhir_dto.DocumentReference{
			Description: "Discharge Summary",
			Author:      []fhir_dto.Reference{{Display: "Dr. Rao"}},
			Meta:        &fhir_dto.Meta{LastUpdated: "2025-06-05T08:00:00Z"},
		}

		simplified := SimplifyDocument(doc)

		assert.Equal(t, "Discharge Summary", simplified.DocumentName)
		assert.Equal(t, "Dr. Rao", simplified.ValidatedBy)
		assert.Equal(t, "2025-06-05T08:00:00Z", simplified.ValidationTimestamp)
		assert.Equal(t, "2025-06-05T08:00:00Z", simplified.UpdatedTimestamp)
	})
}
