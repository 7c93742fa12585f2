package billing

import (
	"fmt"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"
)

func AccountResource(uhid string, info *requests.BillingInfo) *fhir_dto.Account {
	return &fhir_dto.Account{
		ResourceType: constvars.ResourceAccount,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
			{System: constvars.IdentifierSystemInvoice, Value: info.InvoiceNumber},
		},
		Status:  "active",
		Name:    fmt.Sprintf("Invoice %s", info.InvoiceNumber),
		Subject: []fhir_dto.Reference{{Reference: constvars.ResourcePatient + "/" + uhid}},
		Meta: &fhir_dto.Meta{
			Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceAccount},
		},
	}
}

// InvoiceNumbers pulls every invoice identifier off an Account.
func InvoiceNumbers(account *fhir_dto.Account) []string {
	invoices := make([]string, 0, 1)
	for _, identifier := range account.Identifier {
		if identifier.System == constvars.IdentifierSystemInvoice {
			invoices = append(invoices, identifier.Value)
		}
	}
	return invoices
}
