package surgeries

import (
	"fmt"
	"time"

	"carebridge-service/internal/app/services/core/patients"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"
)

const (
	snomedSystem               = "http://snomed.info/sct"
	snomedSurgicalProcedure    = "387713003"
	surgicalProcedureDisplayed = "Surgical procedure"
)

func ProcedureResource(uhid string, surgery requests.SurgeryDetails, now time.Time) *fhir_dto.Procedure {
	return &fhir_dto.Procedure{
		ResourceType: constvars.ResourceProcedure,
		ID:           surgery.SurgeryID,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status: "completed",
		Category: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: snomedSystem, Code: snomedSurgicalProcedure, Display: surgicalProcedureDisplayed},
			},
		},
		Code:              &fhir_dto.CodeableConcept{Text: surgery.SurgeryType},
		Subject:           &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		PerformedDateTime: now.Format(time.RFC3339),
		Note: []fhir_dto.Annotation{
			{Text: fmt.Sprintf("Video: %s", utils.OrNA(surgery.VideoLink))},
			{Text: fmt.Sprintf("Content: %s", utils.OrNA(surgery.ContentLink))},
		},
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceProcedure},
		},
	}
}

// SurgeryTransactionBundle wraps the Patient plus one Procedure per surgery
// into a single atomic transaction.
func SurgeryTransactionBundle(uhid string, surgeries []requests.SurgeryDetails, now time.Time) *fhir_dto.TransactionBundle {
	entries := []fhir_dto.TransactionEntry{
		{
			Resource: patients.PatientResource(uhid),
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourcePatient},
		},
	}
	for _, surgery := range surgeries {
		entries = append(entries, fhir_dto.TransactionEntry{
			Resource: ProcedureResource(uhid, surgery, now),
			Request:  fhir_dto.TransactionRequest{Method: constvars.MethodPost, URL: constvars.ResourceProcedure},
		})
	}
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry:        entries,
	}
}
