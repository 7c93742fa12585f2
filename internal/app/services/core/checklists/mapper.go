package checklists

import (
	"fmt"
	"strings"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"
)

const (
	extValidationTimestamp = "http://example.org/fhir/StructureDefinition/validation-timestamp"
	extValidatedBy         = "http://example.org/fhir/StructureDefinition/validated-by"
)

// DocumentReferenceResource maps one checklist document. resourceID is empty
// on create and carries the existing id on update.
func DocumentReferenceResource(uhid, resourceID string, entry *requests.DocumentEntry) *fhir_dto.DocumentReference {
	doc := &fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		ID:           resourceID,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status:        "current",
		Type:          &fhir_dto.CodeableConcept{Text: entry.DocumentName},
		Subject:       &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		Author:        []fhir_dto.Reference{{Display: entry.AssignedBy}},
		Authenticator: &fhir_dto.Reference{Display: utils.OrNA(entry.ValidatedBy)},
		Custodian:     &fhir_dto.Reference{Display: entry.UpdatedBy},
		Date:          entry.UpdatedTimestamp,
		Description:   fmt.Sprintf("Validation Timestamp: %s", utils.OrNA(entry.ValidationTimestamp)),
		Content: []fhir_dto.DocumentReferenceContent{
			{
				Attachment: fhir_dto.Attachment{
					URL:      utils.OrNA(entry.DocumentLink),
					Title:    entry.DocumentName,
					Creation: entry.AssignedTimestamp,
				},
			},
		},
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceDocumentReference},
		},
	}

	if entry.ValidatedBy != "" {
		doc.Extension = append(doc.Extension, fhir_dto.Extension{URL: extValidatedBy, ValueString: entry.ValidatedBy})
	}
	if entry.ValidationTimestamp != "" {
		doc.Extension = append(doc.Extension, fhir_dto.Extension{URL: extValidationTimestamp, ValueDateTime: entry.ValidationTimestamp})
	}
	return doc
}

func ChecklistTransactionBundle(uhid string, checklist *requests.PreOpChecklist) *fhir_dto.TransactionBundle {
	entries := make([]fhir_dto.TransactionEntry, 0, len(checklist.Documents))
	for i := range checklist.Documents {
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: DocumentReferenceResource(uhid, "", &checklist.Documents[i]),
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceDocumentReference},
		})
	}
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}
}

// extensionValue finds the first extension matching the exact URL or the URL
// suffix and returns whichever value field is set.
func extensionValue(extensions []fhir_dto.Extension, exactUrl, urlSuffix string) string {
	for _, ext := range extensions {
		if (exactUrl != "" && ext.URL == exactUrl) || (urlSuffix != "" && strings.HasSuffix(ext.URL, urlSuffix)) {
			if ext.ValueDateTime != "" {
				return ext.ValueDateTime
			}
			if ext.ValueString != "" {
				return ext.ValueString
			}
			if ext.ValueUrl != "" {
				return ext.ValueUrl
			}
		}
	}
	return ""
}

// SimplifyDocument flattens a DocumentReference into the checklist shape,
// preferring the writer's extensions and falling back to standard fields.
func SimplifyDocument(doc *fhir_dto.DocumentReference) responses.ChecklistDocument {
	var attachment fhir_dto.Attachment
	if len(doc.Content) > 0 {
		attachment = doc.Content[0].Attachment
	}

	validationTimestamp := extensionValue(doc.Extension, extValidationTimestamp, "validation-timestamp")
	if validationTimestamp == "" && doc.Context != nil && doc.Context.Period != nil {
		validationTimestamp = doc.Context.Period.End
	}
	if validationTimestamp == "" && doc.Meta != nil {
		validationTimestamp = doc.Meta.LastUpdated
	}

	validatedBy := extensionValue(doc.Extension, extValidatedBy, "validated-by")
	if validatedBy == "" && doc.Authenticator != nil {
		validatedBy = doc.Authenticator.Display
	}
	if validatedBy == "" && len(doc.Author) > 0 {
		validatedBy = doc.Author[0].Display
	}

	documentName := ""
	if doc.Type != nil {
		documentName = doc.Type.Text
	}
	if documentName == "" {
		documentName = doc.Description
	}

	assignedBy := ""
	if len(doc.Author) > 0 {
		assignedBy = doc.Author[0].Display
	}

	updatedBy := ""
	if doc.Custodian != nil {
		updatedBy = doc.Custodian.Display
	}

	updatedTimestamp := doc.Date
	if updatedTimestamp == "" && doc.Meta != nil {
		updatedTimestamp = doc.Meta.LastUpdated
	}

	return responses.ChecklistDocument{
		DocumentName:        documentName,
		DocumentLink:        attachment.URL,
		AssignedBy:          assignedBy,
		AssignedTimestamp:   attachment.Creation,
		ValidatedBy:         validatedBy,
		ValidationTimestamp: validationTimestamp,
		UpdatedBy:           updatedBy,
		UpdatedTimestamp:    updatedTimestamp,
	}
}
