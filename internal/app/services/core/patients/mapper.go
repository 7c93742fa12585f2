package patients

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/fhir_dto"
)

// PatientResource builds the canonical Patient for a UHID. The resource id is
// the UHID itself so every other resource kind can join on Patient/{uhid}.
func PatientResource(uhid string) *fhir_dto.Patient {
	return &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           uhid,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Active: true,
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourcePatient},
		},
	}
}

func PatientTransactionBundle(uhid string) *fhir_dto.TransactionBundle {
	return &fhir_dto.TransactionBundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.BundleTypeTransaction,
		Entry: []fhir_dto.TransactionEntry{
			{
				Resource: PatientResource(uhid),
				Request: fhir_dto.TransactionRequest{
					Method: constvars.MethodPost,
					URL:    constvars.ResourcePatient,
				},
			},
		},
	}
}
