package consents

import (
	"time"

	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

const (
	consentScopeSystem   = "http://terminology.hl7.org/CodeSystem/consentscope"
	consentScopePrivacy  = "patient-privacy"
	consentCategoryText  = "Surgical Consent"
	consentPolicyRule    = "Hospital Terms & Conditions"
	extensionBase        = "https://hospital.com/fhir/StructureDefinition"
	extApproval          = extensionBase + "/approval"
	extApprovalTimestamp = extensionBase + "/approval-timestamp"
	extValidationStamp   = extensionBase + "/validation-timestamp"
	extPatientName       = extensionBase + "/patient-name"
	extDateOfBirth       = extensionBase + "/date-of-birth"
	extRegistrationNo    = extensionBase + "/hospital-registration-number"
	extFormData          = extensionBase + "/form-data"
)

// statusFromCode maps the app's numeric lifecycle code onto the FHIR Consent
// status vocabulary. Unknown codes fall back to draft rather than failing.
func statusFromCode(code int) string {
	switch code {
	case 1:
		return constvars.ConsentStatusActive
	case 2:
		return constvars.ConsentStatusRejected
	default:
		return constvars.ConsentStatusDraft
	}
}

func provisionFromValidation(code int) string {
	if code == 1 {
		return constvars.ConsentProvisionPermit
	}
	return constvars.ConsentProvisionDeny
}

func consentTag(code string) *fhir_dto.Meta {
	return &fhir_dto.Meta{
		Profile: []string{constvars.FhirBaseProfile + "/" + constvars.ResourceConsent},
		Tag: []fhir_dto.Coding{
			{System: constvars.ConsentTagSystem, Code: code},
		},
	}
}

func ConsentFormStatusResource(uhid string, form *requests.ConsentFormStatus) *fhir_dto.Consent {
	approval := form.Approval
	return &fhir_dto.Consent{
		ResourceType: constvars.ResourceConsent,
		Meta:         consentTag(constvars.ConsentTagFormStatus),
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status: statusFromCode(form.Status),
		Scope: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{System: consentScopeSystem, Code: consentScopePrivacy}},
		},
		Category:   []fhir_dto.CodeableConcept{{Text: consentCategoryText}},
		Patient:    &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		DateTime:   form.StatusTimestamp,
		PolicyRule: &fhir_dto.CodeableConcept{Text: consentPolicyRule},
		SourceAttachment: &fhir_dto.Attachment{
			URL:      form.DocumentURL,
			Creation: form.DocumentCreation,
		},
		Provision: &fhir_dto.ConsentProvision{
			Type: provisionFromValidation(form.Validation),
		},
		Extension: []fhir_dto.Extension{
			{URL: extApproval, ValueInteger: &approval},
			{URL: extApprovalTimestamp, ValueDateTime: form.ApprovalTimestamp},
			{URL: extValidationStamp, ValueDateTime: form.ValidationTimestamp},
		},
	}
}

// ConsentFormDataResource carries the structured form. Headline fields get
// their own extensions; the full payload rides along as JSON so the app can
// rehydrate the form without lossy FHIR round-trips.
func ConsentFormDataResource(uhid string, form *requests.ConsentFormData, now time.Time) (*fhir_dto.Consent, error) {
	formJSON, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}

	return &fhir_dto.Consent{
		ResourceType: constvars.ResourceConsent,
		Meta:         consentTag(constvars.ConsentTagFormData),
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status: constvars.ConsentStatusActive,
		Scope: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{System: consentScopeSystem, Code: consentScopePrivacy}},
		},
		Category:   []fhir_dto.CodeableConcept{{Text: consentCategoryText}},
		Patient:    &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
		DateTime:   now.Format(time.RFC3339),
		PolicyRule: &fhir_dto.CodeableConcept{Text: consentPolicyRule},
		Extension: []fhir_dto.Extension{
			{URL: extPatientName, ValueString: form.BasicDetails.FirstName + " " + form.BasicDetails.LastName},
			{URL: extDateOfBirth, ValueString: form.BasicDetails.DateOfBirth},
			{URL: extRegistrationNo, ValueString: form.BasicDetails.HospitalRegistrationNumber},
			{URL: extFormData, ValueString: string(formJSON)},
		},
	}, nil
}

// HasTag reports whether the consent carries the given internal tag code.
func HasTag(consent *fhir_dto.Consent, code string) bool {
	if consent.Meta == nil {
		return false
	}
	for _, tag := range consent.Meta.Tag {
		if tag.Code == code {
			return true
		}
	}
	return false
}
